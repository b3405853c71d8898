package web

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quadtile/quadtile/internal/logging"
)

// debounceWindow is how long to wait for further events before reloading,
// so editors that write in several steps trigger one reload, not five.
const debounceWindow = 100 * time.Millisecond

// watch starts a goroutine that reloads the tree when the configured file
// changes. The parent directory is watched rather than the file itself:
// editors that save by rename replace the inode, and a watch on the old
// inode would go silent after the first save.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.cfg.Path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.cfg.Path)
	logging.Info("watching for changes", "path", target)

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(debounceWindow)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				logging.Debug("file event", "op", event.Op.String(), "path", event.Name)
				timer.Reset(debounceWindow)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error("watcher error", "error", err)

			case <-timer.C:
				s.reload()
			}
		}
	}()
	return nil
}

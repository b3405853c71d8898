// Command quadtile is the CLI for the quadtile region-quadtree toolkit.
// It renders quadtree files to images, prints structure summaries, checks
// round-trip identity, and serves a live view in the browser.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/quadtile/quadtile/core/listlit"
	"github.com/quadtile/quadtile/core/quadtree"
	"github.com/quadtile/quadtile/core/render"
	"github.com/quadtile/quadtile/internal/logging"
	"github.com/quadtile/quadtile/internal/web"
)

const version = "0.1.0"

// CLI defines the command-line interface for quadtile.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`

	Render  RenderCmd  `cmd:"" help:"Render a quadtree file to an image"`
	Info    InfoCmd    `cmd:"" help:"Print a structure summary for a quadtree file"`
	Verify  VerifyCmd  `cmd:"" help:"Round-trip a quadtree file and check identity"`
	View    ViewCmd    `cmd:"" help:"Serve a live browser view of a quadtree file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// RenderCmd renders a quadtree file with one of the registered backends.
type RenderCmd struct {
	Path    string `arg:"" help:"Path to quadtree file" type:"existingfile"`
	Format  string `help:"Output format" enum:"svg,png,text" default:"svg"`
	Out     string `help:"Output file (default: stdout)" short:"o" type:"path"`
	Size    int    `help:"Side length of the rendered square" default:"400"`
	Empty   string `help:"Fill for empty leaves" default:"#d3d3d3"`
	Filled  string `help:"Fill for filled leaves" default:"#000000"`
	Outline string `help:"Stroke around leaf squares" default:"#000000"`
}

func (c *RenderCmd) Run() error {
	root, err := quadtree.FromFile(c.Path)
	if err != nil {
		return err
	}

	backend, err := render.New(c.Format, render.Options{
		Empty:   c.Empty,
		Filled:  c.Filled,
		Outline: c.Outline,
	})
	if err != nil {
		return err
	}

	out, err := backend.Render(root, quadtree.Rect{Size: c.Size})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", c.Path, err)
	}

	if c.Out == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(c.Out, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}
	logging.Info("rendered", "path", c.Path, "format", c.Format, "out", c.Out, "bytes", len(out))
	return nil
}

// InfoCmd prints a structure summary for a quadtree file.
type InfoCmd struct {
	Path string `arg:"" help:"Path to quadtree file" type:"existingfile"`
	JSON bool   `help:"Output as JSON"`
}

// treeInfo is the JSON shape of the summary.
type treeInfo struct {
	Path        string         `json:"path"`
	Depth       int            `json:"depth"`
	Stats       quadtree.Stats `json:"stats"`
	Fingerprint string         `json:"fingerprint"`
}

func (c *InfoCmd) Run() error {
	root, err := quadtree.FromFile(c.Path)
	if err != nil {
		return err
	}

	info := treeInfo{
		Path:        c.Path,
		Depth:       root.Depth(),
		Stats:       root.Stats(),
		Fingerprint: quadtree.Fingerprint(root),
	}

	if c.JSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Tree: %s\n", info.Path)
	fmt.Printf("  Depth: %d\n", info.Depth)
	fmt.Printf("  Nodes: %d\n", info.Stats.Nodes)
	fmt.Printf("  Leaves: %d\n", info.Stats.Leaves)
	fmt.Printf("  Filled: %d\n", info.Stats.Filled)
	fmt.Printf("  Fingerprint: %s\n", info.Fingerprint)
	return nil
}

// VerifyCmd round-trips a quadtree file through its canonical encoding and
// checks that the reconstruction is identical.
type VerifyCmd struct {
	Path string `arg:"" help:"Path to quadtree file" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	root, err := quadtree.FromFile(c.Path)
	if err != nil {
		return err
	}

	encoded := listlit.Encode(root.Value())
	rebuilt, err := quadtree.FromList(encoded)
	if err != nil {
		fmt.Printf("  [FAIL] re-parse: %v\n", err)
		return fmt.Errorf("round-trip failed for %s", c.Path)
	}

	failures := 0
	if !quadtree.Equal(root, rebuilt) {
		fmt.Println("  [FAIL] structure: rebuilt tree differs")
		failures++
	} else {
		fmt.Println("  [OK] structure identical")
	}

	origPrint := quadtree.Fingerprint(root)
	rebuiltPrint := quadtree.Fingerprint(rebuilt)
	if origPrint != rebuiltPrint {
		fmt.Printf("  [FAIL] fingerprint: %s != %s\n", origPrint, rebuiltPrint)
		failures++
	} else {
		fmt.Printf("  [OK] fingerprint %s\n", origPrint)
	}

	if failures > 0 {
		return fmt.Errorf("round-trip failed for %s", c.Path)
	}
	fmt.Println("Verification passed!")
	return nil
}

// ViewCmd serves a live browser view of a quadtree file.
type ViewCmd struct {
	Path string `arg:"" help:"Path to quadtree file" type:"existingfile"`
	Addr string `help:"Listen address" default:":8080"`
	Size int    `help:"Side length of the rendered square" default:"400"`
}

func (c *ViewCmd) Run() error {
	server, err := web.New(web.Config{
		Addr: c.Addr,
		Path: c.Path,
		Size: c.Size,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Start(ctx)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("quadtile version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("quadtile"),
		kong.Description("quadtile - region-quadtree rendering toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

package listlit

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/quadtile/quadtile/core/errors"
)

// literalGrammar is the participle grammar for nested-list literals.
// Examples: "0", "[1,0,0,1]", "[[1,0,0,1],0,1,0]"
//
//nolint:govet // participle grammar tags are not standard struct tags
type literalGrammar struct {
	Root *element `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type element struct {
	Group *group `  @@`
	Int   *int   `| @Int`
}

// group allows zero elements so empty brackets surface as a shape
// violation during construction rather than a syntax error here.
//
//nolint:govet // participle grammar tags are not standard struct tags
type group struct {
	Items []*element `"[" ( @@ ( "," @@ )* )? "]"`
}

// literalLexer defines the lexer for nested-list literals.
// Note: Int admits a sign so out-of-range leaves like -1 parse and get
// rejected with a precise message during construction.
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Punct", Pattern: `[\[\],]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// literalParser is the participle parser for nested-list literals.
var literalParser = participle.MustBuild[literalGrammar](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a nested-list literal string. Surrounding whitespace is
// ignored; anything after a complete literal is an error.
func Parse(s string) (*Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errors.NewParse("", "empty literal", nil)
	}

	parsed, err := literalParser.ParseString("", trimmed)
	if err != nil {
		return nil, errors.NewParse("", err.Error(), err)
	}

	return parsed.Root.value(), nil
}

// value converts the parse tree into the exported Value form.
func (e *element) value() *Value {
	if e.Group != nil {
		items := make([]*Value, 0, len(e.Group.Items))
		for _, item := range e.Group.Items {
			items = append(items, item.value())
		}
		return &Value{Kind: KindGroup, Items: items}
	}
	return &Value{Kind: KindInt, Int: *e.Int}
}

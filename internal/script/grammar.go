package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/philipparndt/goroof/internal/measurement"
)

// ScriptLexer tokenizes pitch literals and replay scripts
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[/:,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Script is a sequence of session commands
type Script struct {
	Commands []*Command `@@*`
}

// Command is one line of a replay script
type Command struct {
	Pos lexer.Position

	Click  *Coord     `  "click" @@`
	Right  *Coord     `| "right" @@`
	Length *float64   `| "length" @Number`
	Cancel bool       `| @"cancel"`
	Mode   string     `| "mode" @("create" | "edit")`
	Label  string     `| "label" @Ident`
	Pitch  *PitchExpr `| "pitch" @@`
	Report bool       `| @"report"`
}

// Coord is an x y pair, optionally comma separated
type Coord struct {
	X float64 `@Number ","?`
	Y float64 `@Number`
}

// PitchExpr is rise/run, also written rise:run
type PitchExpr struct {
	Rise float64 `@Number`
	Run  float64 `("/" | ":") @Number`
}

// Pitch converts the expression to a validated measurement.Pitch
func (p *PitchExpr) Pitch() (measurement.Pitch, error) {
	pitch := measurement.Pitch{Rise: p.Rise, Run: p.Run}
	if err := pitch.Validate(); err != nil {
		return measurement.Pitch{}, err
	}
	return pitch, nil
}

var (
	scriptParser = participle.MustBuild[Script](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	pitchParser = participle.MustBuild[PitchExpr](
		participle.Lexer(ScriptLexer),
		participle.Elide("Whitespace"),
	)
)

// ParsePitch parses a pitch literal such as "6/12" or "6:12"
func ParsePitch(input string) (measurement.Pitch, error) {
	expr, err := pitchParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return measurement.Pitch{}, fmt.Errorf("parse pitch %q: %w", input, err)
	}
	return expr.Pitch()
}

// Parse parses a replay script from a reader
func Parse(r io.Reader) (*Script, error) {
	script, err := scriptParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return script, nil
}

// ParseString parses a replay script from a string
func ParseString(input string) (*Script, error) {
	script, err := scriptParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return script, nil
}

// ParseFile parses a replay script from a file path
func ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

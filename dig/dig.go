// Package dig measures the lagoon described by a dig plan: a closed
// trench traced by straight digs, whose area including the trench itself is
// shoelace area plus half the boundary plus one.
package dig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/gridwalk/geometry"
	"github.com/katalvlaran/gridwalk/grid"
)

// ErrParse is returned for malformed plans or colour codes.
var ErrParse = errors.New("dig: malformed plan")

// Instruction is one straight dig.
type Instruction struct {
	Dir    grid.Direction
	Meters int64
	Colour string // six hex digits, without '#'
}

// plan mirrors the text format "R 6 (#70c710)".
type plan struct {
	Steps []*step `parser:"@@*"`
}

type step struct {
	Dir    string `parser:"@Dir"`
	Meters int64  `parser:"@Int"`
	Colour string `parser:"'(' @Colour ')'"`
}

var (
	planLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Colour", Pattern: `#[0-9a-fA-F]{6}`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Dir", Pattern: `[UDLR]`},
		{Name: "Punct", Pattern: `[()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	planParser = participle.MustBuild[plan](
		participle.Lexer(planLexer),
		participle.Elide("Whitespace"),
	)
)

var letters = map[string]grid.Direction{
	"U": grid.North,
	"R": grid.East,
	"D": grid.South,
	"L": grid.West,
}

// ParsePlan reads one instruction per line.
func ParsePlan(lines []string) ([]Instruction, error) {
	p, err := planParser.ParseString("plan", strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	out := make([]Instruction, 0, len(p.Steps))
	for _, s := range p.Steps {
		out = append(out, Instruction{
			Dir:    letters[s.Dir],
			Meters: s.Meters,
			Colour: strings.TrimPrefix(s.Colour, "#"),
		})
	}
	return out, nil
}

// hexHeadings maps the last colour digit to a heading.
var hexHeadings = [...]grid.Direction{grid.East, grid.South, grid.West, grid.North}

// Decode reinterprets the colour code: the first five hex digits are the
// distance, the last one the heading (0=R, 1=D, 2=L, 3=U).
func (in Instruction) Decode() (Instruction, error) {
	if len(in.Colour) != 6 {
		return Instruction{}, fmt.Errorf("%w: colour %q", ErrParse, in.Colour)
	}
	meters, err := strconv.ParseInt(in.Colour[:5], 16, 64)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: colour %q: %v", ErrParse, in.Colour, err)
	}
	h := in.Colour[5] - '0'
	if int(h) >= len(hexHeadings) {
		return Instruction{}, fmt.Errorf("%w: colour %q heading digit", ErrParse, in.Colour)
	}
	return Instruction{Dir: hexHeadings[h], Meters: meters, Colour: in.Colour}, nil
}

// DecodeAll applies Decode to every instruction.
func DecodeAll(plan []Instruction) ([]Instruction, error) {
	out := make([]Instruction, len(plan))
	for i, in := range plan {
		d, err := in.Decode()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// Lagoon returns the number of cubic metres dug out: the trench plus the
// interior it encloses. An empty plan, or one that does not end where it
// started, is rejected with ErrParse.
func Lagoon(plan []Instruction) (int64, error) {
	if len(plan) == 0 {
		return 0, fmt.Errorf("%w: empty plan", ErrParse)
	}
	vertices := make([]geometry.Pt[int64], 0, len(plan))
	var cur geometry.Pt[int64]
	for _, in := range plan {
		dr, dc := in.Dir.Delta()
		cur = geometry.Pt[int64]{
			Row: cur.Row + int64(dr)*in.Meters,
			Col: cur.Col + int64(dc)*in.Meters,
		}
		vertices = append(vertices, cur)
	}
	if cur != (geometry.Pt[int64]{}) {
		return 0, fmt.Errorf("%w: trench ends at %d,%d instead of the origin", ErrParse, cur.Row, cur.Col)
	}
	area := geometry.Shoelace(vertices)
	return geometry.Total(area, geometry.Perimeter(vertices)), nil
}

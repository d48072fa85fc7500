// Package almanac follows seeds through a chain of range remapping
// stages (seed → soil → ... → location) and finds the lowest location.
//
// Each stage is a list of rules "dst src len": values in [src, src+len)
// move to dst+(v-src); everything else passes through unchanged. Seed
// ranges are pushed through whole, split at rule boundaries, so the cost
// depends on the number of rules and fragments, never on range widths.
package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrParse is returned for malformed almanac text or odd seed-range lists.
var ErrParse = errors.New("almanac: malformed input")

// Almanac is a parsed seed list plus its ordered mapping stages.
type Almanac struct {
	Seeds  []int64  `parser:"'seeds' ':' @Int+"`
	Stages []*Stage `parser:"@@*"`
}

// Stage is one "<from>-to-<to> map:" block.
type Stage struct {
	From  string  `parser:"@Ident '-' 'to' '-'"`
	To    string  `parser:"@Ident 'map' ':'"`
	Rules []*Rule `parser:"@@*"`
}

// Rule moves [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst int64 `parser:"@Int"`
	Src int64 `parser:"@Int"`
	Len int64 `parser:"@Int"`
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int64
}

func (r Range) empty() bool { return r.Start >= r.End }

var parser = participle.MustBuild[Almanac]()

// Parse reads an almanac from its text lines.
func Parse(lines []string) (*Almanac, error) {
	a, err := parser.ParseString("almanac", strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i := 1; i < len(a.Stages); i++ {
		if a.Stages[i].From != a.Stages[i-1].To {
			return nil, fmt.Errorf("%w: stage %q follows %q", ErrParse,
				a.Stages[i].From+"-to-"+a.Stages[i].To, a.Stages[i-1].To)
		}
	}
	return a, nil
}

// Map sends a single value through the stage.
func (s *Stage) Map(v int64) int64 {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// MapRanges sends every range through the stage, splitting at rule
// boundaries. The output covers exactly as many values as the input.
func (s *Stage) MapRanges(in []Range) []Range {
	var out []Range
	pending := in
	for _, r := range s.Rules {
		srcEnd := r.Src + r.Len
		var rest []Range
		for _, p := range pending {
			before := Range{p.Start, min(p.End, r.Src)}
			overlap := Range{max(p.Start, r.Src), min(p.End, srcEnd)}
			after := Range{max(p.Start, srcEnd), p.End}
			if !overlap.empty() {
				shift := r.Dst - r.Src
				out = append(out, Range{overlap.Start + shift, overlap.End + shift})
			}
			for _, piece := range [...]Range{before, after} {
				if !piece.empty() {
					rest = append(rest, piece)
				}
			}
		}
		pending = rest
	}
	return merge(append(out, pending...))
}

// merge sorts ranges and coalesces overlapping or touching ones.
func merge(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	slices.SortFunc(rs, func(a, b Range) int { return cmp.Compare(a.Start, b.Start) })
	out := []Range{rs[0]}
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Location sends one seed through every stage.
func (a *Almanac) Location(seed int64) int64 {
	v := seed
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// Lowest returns the smallest location over the given seeds.
func (a *Almanac) Lowest(seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", ErrParse)
	}
	best := a.Location(seeds[0])
	for _, s := range seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed numbers do not pair up", ErrParse, len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Range{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// LowestRange returns the smallest location reachable from any value in
// ranges.
func (a *Almanac) LowestRange(ranges []Range) (int64, error) {
	cur := merge(slices.Clone(ranges))
	if len(cur) == 0 {
		return 0, fmt.Errorf("%w: no seed ranges", ErrParse)
	}
	for _, s := range a.Stages {
		cur = s.MapRanges(cur)
	}
	return cur[0].Start, nil
}

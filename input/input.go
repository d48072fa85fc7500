// Package input reads puzzle files: whole files as trimmed line slices and
// lines as whitespace-separated integers.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrParse is returned by Ints for a field that is not an integer.
var ErrParse = errors.New("input: malformed number")

// ReadLines returns every line of r without line terminators. Trailing
// blank lines are dropped; blank lines in the middle are kept since some
// formats use them as section separators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Lines opens path and reads it with ReadLines.
func Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}

// Ints parses every whitespace-separated field of line as a base-10 integer.
func Ints(line string) ([]int64, error) {
	fields := strings.Fields(line)
	out := make([]int64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q", ErrParse, i, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// Path returns the conventional location of a day's input under dir:
// dir/day<N>/input.txt.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d", day), "input.txt")
}

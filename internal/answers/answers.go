// Package answers records known puzzle answers and checks solutions
// against them.
package answers

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// Pair holds the answers to both parts of a day. A nil part is unknown.
type Pair struct {
	Part1 *int `yaml:"part1,omitempty"`
	Part2 *int `yaml:"part2,omitempty"`
}

func Known(part1, part2 int) Pair {
	return Pair{Part1: &part1, Part2: &part2}
}

// Book maps day keys such as "day3" to answers.
type Book map[string]Pair

func dayKey(day int) string {
	return fmt.Sprintf("day%d", day)
}

// Load reads a YAML answer book. A missing file yields an empty book.
func Load(fsys billy.Basic, path string) (Book, error) {
	if path == "" {
		return Book{}, nil
	}
	data, err := util.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read answers at %s: %w", path, err)
	}
	book := Book{}
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("cannot parse answers at %s: %w", path, err)
	}
	return book, nil
}

type MismatchError struct {
	Day      int
	Part     int
	Expected int
	Got      int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("day %d part %d: got %d, expected %d", e.Day, e.Part, e.Got, e.Expected)
}

func (b Book) Lookup(day int) (Pair, bool) {
	p, found := b[dayKey(day)]
	return p, found
}

func (b Book) Record(day int, p Pair) {
	b[dayKey(day)] = p
}

// Check compares solved answers with the recorded ones. Unknown days and
// parts always pass.
func (b Book) Check(day int, part1, part2 int) error {
	want, found := b.Lookup(day)
	if !found {
		return nil
	}
	if want.Part1 != nil && *want.Part1 != part1 {
		return &MismatchError{Day: day, Part: 1, Expected: *want.Part1, Got: part1}
	}
	if want.Part2 != nil && *want.Part2 != part2 {
		return &MismatchError{Day: day, Part: 2, Expected: *want.Part2, Got: part2}
	}
	return nil
}

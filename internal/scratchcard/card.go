// Package scratchcard scores scratch cards and plays out the copies they win.
package scratchcard

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
)

var errCardShape = errors.New(`expected "Card <id>: <winners> | <numbers>"`)

var cardRe = regexp.MustCompile(`^\s*Card\s+(\d+):([\d\s]+)\|([\d\s]+)$`)

// ParseError reports a line that is not a valid card.
type ParseError struct {
	Line   string
	LineNo int // 1-based, 0 when the line was parsed on its own
	Err    error
}

func (e *ParseError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("cannot parse card on line %d %q: %s", e.LineNo, e.Line, e.Err)
	}
	return fmt.Sprintf("cannot parse card %q: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type numberSet map[int]struct{}

type Card struct {
	id      int
	winners numberSet
	numbers numberSet
}

func NewCard(id int, winners, numbers []int) Card {
	return Card{
		id:      id,
		winners: toSet(winners),
		numbers: toSet(numbers),
	}
}

func toSet(values []int) numberSet {
	set := make(numberSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func ParseCard(line string) (Card, error) {
	m := cardRe.FindStringSubmatch(line)
	if m == nil {
		return Card{}, &ParseError{Line: line, Err: errCardShape}
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Card{}, &ParseError{Line: line, Err: fmt.Errorf("bad card id: %w", err)}
	}
	winners, err := parseNumbers(m[2])
	if err != nil {
		return Card{}, &ParseError{Line: line, Err: fmt.Errorf("winning numbers: %w", err)}
	}
	numbers, err := parseNumbers(m[3])
	if err != nil {
		return Card{}, &ParseError{Line: line, Err: fmt.Errorf("drawn numbers: %w", err)}
	}
	return NewCard(id, winners, numbers), nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("empty list")
	}
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (c Card) ID() int {
	return c.id
}

// WinningNumbers returns the drawn numbers that are also winners, ascending.
func (c Card) WinningNumbers() []int {
	result := make([]int, 0, len(c.numbers))
	for n := range c.numbers {
		if _, found := c.winners[n]; found {
			result = append(result, n)
		}
	}
	slices.Sort(result)
	return result
}

func (c Card) Matches() int {
	return len(c.WinningNumbers())
}

// Score is 1 for the first match, doubled for each match after it.
func (c Card) Score() int {
	k := c.Matches()
	if k == 0 {
		return 0
	}
	return 1 << (k - 1)
}

func TotalScore(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Score()
	}
	return sum
}

// ParseCards parses one card per line, skipping blank lines. The first
// malformed line aborts parsing.
func ParseCards(text string) ([]Card, error) {
	cards := make([]Card, 0)
	for i, line := range input.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		card, err := ParseCard(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.LineNo = i + 1
			}
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseCardsLenient parses what it can and returns the rejected lines
// separately.
func ParseCardsLenient(text string) ([]Card, []*ParseError) {
	cards := make([]Card, 0)
	var rejected []*ParseError
	for i, line := range input.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		card, err := ParseCard(line)
		if err != nil {
			perr := err.(*ParseError)
			perr.LineNo = i + 1
			rejected = append(rejected, perr)
			continue
		}
		cards = append(cards, card)
	}
	return cards, rejected
}

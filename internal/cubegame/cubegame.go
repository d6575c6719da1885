// Package cubegame evaluates games of colored cubes drawn from a bag.
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = map[string]Color{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func ParseColor(s string) (Color, error) {
	c, found := colorNames[strings.ToLower(s)]
	if !found {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// Cubes counts cubes per color.
type Cubes map[Color]int

// DefaultLimits is the bag content games are checked against.
var DefaultLimits = Cubes{Red: 12, Green: 13, Blue: 14}

type Game struct {
	ID      int
	Reveals []Cubes
}

type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse game %q: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func ParseGame(line string) (Game, error) {
	fail := func(err error) (Game, error) {
		return Game{}, &ParseError{Line: line, Err: err}
	}

	tag, data, found := strings.Cut(line, ":")
	if !found {
		return fail(errors.New("missing ':'"))
	}
	name, idStr, found := strings.Cut(strings.TrimSpace(tag), " ")
	if !found || name != "Game" {
		return fail(errors.New(`expected "Game <id>"`))
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return fail(fmt.Errorf("bad game id: %w", err))
	}

	game := Game{ID: id}
	for _, reveal := range strings.Split(data, ";") {
		cubes := make(Cubes)
		for _, part := range strings.Split(reveal, ",") {
			countStr, colorStr, found := strings.Cut(strings.TrimSpace(part), " ")
			if !found {
				return fail(fmt.Errorf("expected \"<count> <color>\", got %q", part))
			}
			count, err := strconv.Atoi(countStr)
			if err != nil {
				return fail(fmt.Errorf("bad count: %w", err))
			}
			color, err := ParseColor(strings.TrimSpace(colorStr))
			if err != nil {
				return fail(err)
			}
			cubes[color] += count
		}
		game.Reveals = append(game.Reveals, cubes)
	}
	return game, nil
}

func ParseGames(text string) ([]Game, error) {
	games := make([]Game, 0)
	for _, line := range input.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Possible reports whether no reveal shows more cubes of a color than limits
// allow. Colors missing from limits allow none.
func (g Game) Possible(limits Cubes) bool {
	for _, reveal := range g.Reveals {
		for color, count := range reveal {
			if count > limits[color] {
				return false
			}
		}
	}
	return true
}

// MinimumCubes is the smallest bag content that makes the game possible.
func (g Game) MinimumCubes() Cubes {
	minRequired := make(Cubes)
	for _, reveal := range g.Reveals {
		for color, count := range reveal {
			if count > minRequired[color] {
				minRequired[color] = count
			}
		}
	}
	return minRequired
}

func (c Cubes) Power() int {
	power := 1
	for _, n := range c {
		power *= n
	}
	return power
}

// PossibleIDSum adds up the ids of the games possible with limits.
func PossibleIDSum(games []Game, limits Cubes) int {
	sum := 0
	for _, g := range games {
		if g.Possible(limits) {
			sum += g.ID
		}
	}
	return sum
}

func PowerSum(games []Game) int {
	sum := 0
	for _, g := range games {
		sum += g.MinimumCubes().Power()
	}
	return sum
}

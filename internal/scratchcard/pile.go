package scratchcard

import (
	"errors"
	"fmt"
)

var ErrNonContiguousIDs = errors.New("card ids must be exactly 1..N")

// Pile holds cards ordered by id; cards[i] has id i+1.
type Pile struct {
	cards []Card
}

func NewPile(cards []Card) (*Pile, error) {
	ordered := make([]Card, len(cards))
	seen := make([]bool, len(cards))
	for _, c := range cards {
		if c.id < 1 || c.id > len(cards) || seen[c.id-1] {
			return nil, fmt.Errorf("card %d: %w", c.id, ErrNonContiguousIDs)
		}
		seen[c.id-1] = true
		ordered[c.id-1] = c
	}
	return &Pile{cards: ordered}, nil
}

func ParsePile(text string) (*Pile, error) {
	cards, err := ParseCards(text)
	if err != nil {
		return nil, err
	}
	return NewPile(cards)
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Card(id int) (Card, bool) {
	if id < 1 || id > len(p.cards) {
		return Card{}, false
	}
	return p.cards[id-1], true
}

// Copies returns how many instances of each card are held once every win has
// been paid out. A card with k matches adds one copy of each of the next k
// cards per instance of itself; wins past the last card are dropped.
func (p *Pile) Copies() []int {
	copies := make([]int, len(p.cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, card := range p.cards {
		wins := card.Matches()
		for j := i + 1; j <= i+wins && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

// Play returns the total number of cards held at the end.
func (p *Pile) Play() int {
	total := 0
	for _, n := range p.Copies() {
		total += n
	}
	return total
}

package scratchcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleCards = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`

func TestExampleScores(t *testing.T) {
	cards, err := ParseCards(exampleCards)
	require.NoError(t, err)
	require.Len(t, cards, 6)

	scores := make([]int, 0, len(cards))
	for _, c := range cards {
		scores = append(scores, c.Score())
	}
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, scores)
	assert.Equal(t, 13, TotalScore(cards))
}

func TestWinningNumbers(t *testing.T) {
	card, err := ParseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, 1, card.ID())
	assert.Equal(t, []int{17, 48, 83, 86}, card.WinningNumbers())
	assert.Equal(t, 4, card.Matches())
}

func TestDuplicateNumbersCollapse(t *testing.T) {
	card, err := ParseCard("Card 7: 5 5 5 | 5 5 1")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, card.WinningNumbers())
	assert.Equal(t, 1, card.Score())
}

func TestParseWideSpacing(t *testing.T) {
	card, err := ParseCard("Card   12:  1  2 |  3  1  ")
	require.NoError(t, err)
	assert.Equal(t, 12, card.ID())
	assert.Equal(t, []int{1}, card.WinningNumbers())
}

func TestParseCardErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "missing pipe", line: "Card 1: 41 48 83 86 17 83 86"},
		{name: "missing colon", line: "Card 1 41 48 | 83 86"},
		{name: "missing prefix", line: "1: 41 48 | 83 86"},
		{name: "wrong prefix", line: "Game 1: 41 48 | 83 86"},
		{name: "non numeric winner", line: "Card 1: 41 x8 | 83 86"},
		{name: "non numeric number", line: "Card 1: 41 48 | 83 -6"},
		{name: "no winners", line: "Card 1:   | 83 86"},
		{name: "no numbers", line: "Card 1: 41 48 |   "},
		{name: "empty", line: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card, err := ParseCard(tc.line)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.line, perr.Line)
			assert.Zero(t, card.ID())
		})
	}
}

func TestParseCardsAbortsOnBadLine(t *testing.T) {
	text := "Card 1: 1 | 1\nCard 2: 1 2 3\nCard 3: 1 | 2"
	cards, err := ParseCards(text)
	assert.Nil(t, cards)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.LineNo)
	assert.Equal(t, "Card 2: 1 2 3", perr.Line)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseCardsSkipsBlankLines(t *testing.T) {
	cards, err := ParseCards("Card 1: 1 | 1\n\nCard 2: 2 | 3\n")
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestParseCardsLenient(t *testing.T) {
	text := "Card 1: 1 | 1\nnot a card\nCard 2: 2 | 3"
	cards, rejected := ParseCardsLenient(text)
	require.Len(t, cards, 2)
	require.Len(t, rejected, 1)
	assert.Equal(t, 2, rejected[0].LineNo)
	assert.Equal(t, "not a card", rejected[0].Line)
}

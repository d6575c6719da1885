package input

import (
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFile(t *testing.T) {
	assert.Equal(t, "day03.txt", DayFile(3))
	assert.Equal(t, "day12.txt", DayFile(12))
}

func TestReadInput(t *testing.T) {
	memFS := memfs.New()
	require.NoError(t, util.WriteFile(memFS, "day04.txt", []byte("Card 1: 1 | 1\n"), 0o600))

	loader := NewLoader(memFS, nil)
	text, err := loader.Read(DayFile(4))
	require.NoError(t, err)
	assert.Equal(t, "Card 1: 1 | 1\n", text)
}

func TestReadAbsentInput(t *testing.T) {
	loader := NewLoader(memfs.New(), nil)
	_, err := loader.Read("hello/this/is/patrick")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "hello/this/is/patrick")
}

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single", text: "abc", want: []string{"abc"}},
		{name: "trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "only newline", text: "\n", want: []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lines(tc.text))
		})
	}
}

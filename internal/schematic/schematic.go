// Package schematic scans engine schematics for part numbers and gears.
//
// A schematic is a grid of characters where '.' is empty space, runs of
// digits form numbers and any other character is a symbol.
package schematic

import "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"

type Schematic struct {
	rows [][]rune
}

// Token is a maximal run of digits within one row, spanning [Start, End).
type Token struct {
	Value int
	Row   int
	Start int
	End   int
}

type Symbol struct {
	Char rune
	Row  int
	Col  int
}

// Gear holds the two numbers adjacent to a '*'.
type Gear struct {
	A, B int
}

func (g Gear) Ratio() int {
	return g.A * g.B
}

// New keeps the rows as given. Rows of different length are allowed, cells
// missing from a short row read as absent.
func New(text string) *Schematic {
	lines := input.Lines(text)
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(line))
	}
	return &Schematic{rows: rows}
}

// CharAt reports the character at (col, row), or false if there is none.
func (s *Schematic) CharAt(col, row int) (rune, bool) {
	if row < 0 || row >= len(s.rows) {
		return 0, false
	}
	line := s.rows[row]
	if col < 0 || col >= len(line) {
		return 0, false
	}
	return line[col], true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return !isDigit(r) && r != '.'
}

func (s *Schematic) rowTokens(row int) []Token {
	if row < 0 || row >= len(s.rows) {
		return nil
	}
	line := s.rows[row]
	tokens := make([]Token, 0)
	for col := 0; col < len(line); col++ {
		if !isDigit(line[col]) {
			continue
		}
		tok := Token{Row: row, Start: col}
		for ; col < len(line) && isDigit(line[col]); col++ {
			tok.Value = tok.Value*10 + int(line[col]-'0')
		}
		tok.End = col
		tokens = append(tokens, tok)
	}
	return tokens
}

// Tokens returns every number in row-major order.
func (s *Schematic) Tokens() []Token {
	tokens := make([]Token, 0)
	for row := range s.rows {
		tokens = append(tokens, s.rowTokens(row)...)
	}
	return tokens
}

// Symbols returns every symbol cell in row-major order.
func (s *Schematic) Symbols() []Symbol {
	symbols := make([]Symbol, 0)
	for row, line := range s.rows {
		for col, c := range line {
			if isSymbol(c) {
				symbols = append(symbols, Symbol{Char: c, Row: row, Col: col})
			}
		}
	}
	return symbols
}

// PartNumbers returns the value of every number touching a symbol, including
// diagonally, in the order they appear. A number touching several symbols is
// reported once.
func (s *Schematic) PartNumbers() []int {
	numbers := make([]int, 0)
	for _, tok := range s.Tokens() {
		if s.touchesSymbol(tok) {
			numbers = append(numbers, tok.Value)
		}
	}
	return numbers
}

func (s *Schematic) touchesSymbol(tok Token) bool {
	for row := tok.Row - 1; row <= tok.Row+1; row++ {
		for col := tok.Start - 1; col <= tok.End; col++ {
			if row == tok.Row && col >= tok.Start && col < tok.End {
				continue
			}
			if c, ok := s.CharAt(col, row); ok && isSymbol(c) {
				return true
			}
		}
	}
	return false
}

func (s *Schematic) PartNumberSum() int {
	sum := 0
	for _, n := range s.PartNumbers() {
		sum += n
	}
	return sum
}

// Gears returns every '*' with exactly two neighboring numbers.
func (s *Schematic) Gears() []Gear {
	gears := make([]Gear, 0)
	for _, sym := range s.Symbols() {
		if sym.Char != '*' {
			continue
		}
		ns := s.neighbors(sym.Col, sym.Row)
		if len(ns) == 2 {
			gears = append(gears, Gear{A: ns[0], B: ns[1]})
		}
	}
	return gears
}

func (s *Schematic) GearRatioSum() int {
	sum := 0
	for _, g := range s.Gears() {
		sum += g.Ratio()
	}
	return sum
}

func (s *Schematic) neighbors(col, row int) []int {
	ns := make([]int, 0, 2)
	for r := row - 1; r <= row+1; r++ {
		for _, tok := range s.rowTokens(r) {
			if adjacent(tok, col) {
				ns = append(ns, tok.Value)
			}
		}
	}
	return ns
}

// adjacent tests only where a token begins or ends relative to col. A token
// that starts left of col-1 and ends right of col+1 does not count.
func adjacent(tok Token, col int) bool {
	return (tok.End >= col && tok.End <= col+1) || (tok.Start >= col-1 && tok.Start <= col+1)
}

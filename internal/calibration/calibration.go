// Package calibration recovers calibration values from lines of text.
package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
)

var ErrNoDigits = errors.New("no digits in line")

var spelledDigits = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// FirstLastDigits combines the first and the last digit of line.
func FirstLastDigits(line string) (int, error) {
	return firstLast(line, digitsFromLine(line, false))
}

// FirstLastSpelled is like FirstLastDigits but also accepts spelled out
// digits. Spellings may overlap: "eightwo" holds 8 and 2.
func FirstLastSpelled(line string) (int, error) {
	return firstLast(line, digitsFromLine(line, true))
}

func firstLast(line string, numbers []int) (int, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return 10*numbers[0] + numbers[len(numbers)-1], nil
}

func digitsFromLine(line string, spelled bool) []int {
	numbers := make([]int, 0, len(line))
	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			numbers = append(numbers, int(line[i]-'0'))
			continue
		}
		if !spelled {
			continue
		}
		rest := line[i:]
		for word, n := range spelledDigits {
			if strings.HasPrefix(rest, word) {
				numbers = append(numbers, n)
				break
			}
		}
	}
	return numbers
}

// Sum adds up value over all non-blank lines of text.
func Sum(text string, value func(string) (int, error)) (int, error) {
	sum := 0
	for i, line := range input.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := value(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += n
	}
	return sum, nil
}

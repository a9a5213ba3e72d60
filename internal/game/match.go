// apps/lettercheck/internal/game/match.go
//
// Scoring primitives for a single guess.
//   - IsGreen:   exact position matches.
//   - IsYellow:  present-but-misplaced letters, bounded by letter counts.
//   - GetColors: the two combined into one Color per position.
//
// Words are compared rune by rune and are case-sensitive. None of these
// functions assume five-letter words; they only require that guess and answer
// have the same length.

package game

import (
	"fmt"
	"unicode/utf8"
)

// splitPair converts guess and answer to runes, failing on a length mismatch.
func splitPair(guess, answer string) ([]rune, []rune, error) {
	if gn, an := utf8.RuneCountInString(guess), utf8.RuneCountInString(answer); gn != an {
		return nil, nil, fmt.Errorf("%w: guess %q has %d letters, answer has %d", ErrLengthMismatch, guess, gn, an)
	}
	return []rune(guess), []rune(answer), nil
}

// IsGreen reports, per position, whether guess and answer hold the same letter.
func IsGreen(guess, answer string) ([]bool, error) {
	g, a, err := splitPair(guess, answer)
	if err != nil {
		return nil, err
	}
	return greens(g, a), nil
}

func greens(g, a []rune) []bool {
	out := make([]bool, len(g))
	for i := range g {
		out[i] = g[i] == a[i]
	}
	return out
}

// IsYellow reports, per position, whether the guess letter occurs elsewhere
// in the answer.
//
// Green positions consume their answer letter first and are never yellow.
// The remaining answer letters are then handed out left to right across the
// guess, one credit per occurrence, so a repeated guess letter is only
// yellow as many times as the letter is left unmatched in the answer.
func IsYellow(guess, answer string) ([]bool, error) {
	g, a, err := splitPair(guess, answer)
	if err != nil {
		return nil, err
	}
	return yellows(g, a, greens(g, a)), nil
}

func yellows(g, a []rune, green []bool) []bool {
	// Letter counts for the non-green answer positions.
	remaining := make(map[rune]int, len(a))
	for i, r := range a {
		if !green[i] {
			remaining[r]++
		}
	}

	out := make([]bool, len(g))
	for i, r := range g {
		if green[i] {
			continue
		}
		if remaining[r] > 0 {
			out[i] = true
			remaining[r]--
		}
	}
	return out
}

// GetColors scores guess against answer: Green where IsGreen holds, else
// Yellow where IsYellow holds, else Gray.
func GetColors(guess, answer string) ([]Color, error) {
	g, a, err := splitPair(guess, answer)
	if err != nil {
		return nil, err
	}
	green := greens(g, a)
	yellow := yellows(g, a, green)

	out := make([]Color, len(g))
	for i := range g {
		switch {
		case green[i]:
			out[i] = Green
		case yellow[i]:
			out[i] = Yellow
		default:
			out[i] = Gray
		}
	}
	return out, nil
}

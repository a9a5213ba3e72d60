package game

import "fmt"

// Replace returns s with the letter at index swapped for c.
// Indexes count letters (runes), not bytes.
func Replace(s string, index int, c rune) (string, error) {
	rs := []rune(s)
	if index < 0 || index >= len(rs) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(rs))
	}
	rs[index] = c
	return string(rs), nil
}

// apps/lettercheck/internal/game/color.go
//
// Color is the per-letter result of scoring a guess against an answer.
// It is a closed set: every switch over Color handles Green, Yellow and Gray.

package game

import "fmt"

// Color represents the evaluation result for a single letter in a guess.
//   - Green:  letter is correct and in the correct position.
//   - Yellow: letter exists in the answer but in a different position.
//   - Gray:   letter has no remaining credit in the answer.
type Color uint8

const (
	Gray Color = iota
	Yellow
	Green
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Gray:
		return "gray"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// MarshalText encodes the color by name so JSON carries "green" etc.
func (c Color) MarshalText() ([]byte, error) {
	switch c {
	case Green, Yellow, Gray:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("game: unknown color %d", uint8(c))
}

// UnmarshalText is the inverse of MarshalText.
func (c *Color) UnmarshalText(b []byte) error {
	switch string(b) {
	case "green":
		*c = Green
	case "yellow":
		*c = Yellow
	case "gray":
		*c = Gray
	default:
		return fmt.Errorf("game: unknown color %q", b)
	}
	return nil
}

// allGreen reports whether every color is Green.
func allGreen(cs []Color) bool {
	for _, c := range cs {
		if c != Green {
			return false
		}
	}
	return true
}

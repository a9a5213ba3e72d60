// apps/lettercheck/internal/game/letters.go
//
// Cumulative letter classification for one game session.
//
// After each guess the three sets move in one direction only:
//   - Possible shrinks (every guessed letter leaves it).
//   - Included grows  (letters scored green or yellow).
//   - Excluded grows  (guessed letters never credited in the answer).
//
// The sets belong to the caller and are passed explicitly; nothing here keeps
// state between calls. A LetterSet is a plain map, so callers that share one
// across goroutines must lock around UpdateLetters themselves.

package game

import (
	"sort"
	"strings"
)

// LetterSet is a set of single letters.
type LetterSet map[rune]struct{}

// NewLetterSet returns a set holding rs.
func NewLetterSet(rs ...rune) LetterSet {
	s := make(LetterSet, len(rs))
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

// Alphabet returns a fresh set of 'A' through 'Z'.
func Alphabet() LetterSet {
	s := make(LetterSet, 26)
	for r := 'A'; r <= 'Z'; r++ {
		s[r] = struct{}{}
	}
	return s
}

func (s LetterSet) Add(r rune) { s[r] = struct{}{} }
func (s LetterSet) Remove(r rune) { delete(s, r) }
func (s LetterSet) Len() int { return len(s) }

// Contains reports whether r is in the set.
func (s LetterSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Sorted returns the letters in ascending order.
func (s LetterSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted letters as one-character strings (JSON friendly).
func (s LetterSet) Strings() []string {
	rs := s.Sorted()
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// String formats the set as "[A, B, C]".
func (s LetterSet) String() string {
	return "[" + strings.Join(s.Strings(), ", ") + "]"
}

// Letters groups the three classification sets of a session.
type Letters struct {
	Included LetterSet
	Excluded LetterSet
	Possible LetterSet
}

// NewLetters returns the start-of-game state: nothing included or excluded,
// every letter A–Z still possible.
func NewLetters() *Letters {
	return &Letters{
		Included: NewLetterSet(),
		Excluded: NewLetterSet(),
		Possible: Alphabet(),
	}
}

// Update folds one scored guess into l. See UpdateLetters.
func (l *Letters) Update(guess, answer string) error {
	return UpdateLetters(guess, answer, l.Included, l.Excluded, l.Possible)
}

// UpdateLetters folds the result of guess against answer into the three sets.
//
// Every guessed letter leaves possible. Letters colored green or yellow join
// included. Guessed letters that are not in included, once this guess's
// greens and yellows have been added, join excluded. When guess equals answer
// the game is over and whatever is left in possible moves to excluded.
//
// A length mismatch is returned before any set is touched.
func UpdateLetters(guess, answer string, included, excluded, possible LetterSet) error {
	colors, err := GetColors(guess, answer)
	if err != nil {
		return err
	}

	g := []rune(guess)
	for i, r := range g {
		possible.Remove(r)
		switch colors[i] {
		case Green, Yellow:
			included.Add(r)
		case Gray:
		}
	}
	for _, r := range g {
		if !included.Contains(r) {
			excluded.Add(r)
		}
	}

	if guess == answer {
		for r := range possible {
			// Never contradict an earlier included letter.
			if !included.Contains(r) {
				excluded.Add(r)
			}
			possible.Remove(r)
		}
	}
	return nil
}

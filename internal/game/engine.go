// apps/lettercheck/internal/game/engine.go
//
// Session engine for a single Wordle game.
// Responsibilities:
//   - Create sessions for a caller-supplied answer (no word lists here).
//   - Validate and apply guesses (length, alphabetic A–Z).
//   - Score guesses with GetColors and fold them into the session's Letters.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Words are normalized to upper case so they line up with Alphabet().
//   - ApplyGuess and Snapshot lock the session; handlers may share one.
package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const defaultRows = 6

// State is the coarse lifecycle of a session.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Session holds the state of one game.
type Session struct {
	mu sync.Mutex

	ID        string    // Unique session identifier (UUID).
	Answer    string    // The solution word (upper case).
	Rows      int       // Maximum number of guesses allowed.
	Cols      int       // Letters per word, taken from the answer.
	Guesses   []string  // Guesses made so far (upper case).
	Colorings [][]Color // Colors for each entry in Guesses.
	Letters   *Letters  // Cumulative letter classification.
	Finished  bool      // True once the game is over (won or lost).
	Won       bool      // True if the game was finished with a win.
}

// NewSession constructs a session for answer.
func NewSession(answer string) (*Session, error) {
	ans := normalize(answer)
	if ans == "" || !isAlpha(ans) {
		return nil, fmt.Errorf("%w: answer %q must be letters A-Z", ErrInvalidGuess, answer)
	}
	return &Session{
		ID:      uuid.NewString(),
		Answer:  ans,
		Rows:    defaultRows,
		Cols:    len(ans),
		Letters: NewLetters(),
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the session.
//
// Validation rules:
//   - Session must not be finished.
//   - Guess must be alphabetic A–Z and exactly Cols letters.
//
// State transitions:
//   - All colors Green → Finished, Won.
//   - Else if the number of guesses reaches Rows → Finished (loss).
func (s *Session) ApplyGuess(guess string) ([]Color, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Finished {
		return nil, s.state(), ErrSessionFinished
	}
	guess = normalize(guess)
	if !isAlpha(guess) {
		return nil, s.state(), fmt.Errorf("%w: %q must be letters A-Z", ErrInvalidGuess, guess)
	}

	colors, err := GetColors(guess, s.Answer)
	if err != nil {
		return nil, s.state(), err
	}
	if err := s.Letters.Update(guess, s.Answer); err != nil {
		return nil, s.state(), err
	}
	s.Guesses = append(s.Guesses, guess)
	s.Colorings = append(s.Colorings, colors)

	if allGreen(colors) {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= s.Rows {
		s.Finished = true
	}
	return colors, s.state(), nil
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() State {
	if s.Finished {
		if s.Won {
			return Won
		}
		return Lost
	}
	return Playing
}

// Snapshot is a read-only copy of a session for serialization.
type Snapshot struct {
	ID        string    `json:"id"`
	Answer    string    `json:"answer,omitempty"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	State     State     `json:"state"`
	Guesses   []string  `json:"guesses"`
	Colorings [][]Color `json:"colorings"`
	Included  []string  `json:"included"`
	Excluded  []string  `json:"excluded"`
	Possible  []string  `json:"possible"`
}

// Snapshot copies the session. The answer is only revealed once finished.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.ID,
		Rows:      s.Rows,
		Cols:      s.Cols,
		State:     s.state(),
		Guesses:   append([]string{}, s.Guesses...),
		Colorings: make([][]Color, len(s.Colorings)),
		Included:  s.Letters.Included.Strings(),
		Excluded:  s.Letters.Excluded.Strings(),
		Possible:  s.Letters.Possible.Strings(),
	}
	for i, c := range s.Colorings {
		snap.Colorings[i] = append([]Color{}, c...)
	}
	if s.Finished {
		snap.Answer = s.Answer
	}
	return snap
}

func normalize(w string) string { return strings.ToUpper(strings.TrimSpace(w)) }

// isAlpha checks that a string consists only of upper case A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

package game

import "errors"

var (
	// ErrLengthMismatch is returned by every scoring function when the guess
	// and answer differ in length. It is an invalid-argument condition.
	ErrLengthMismatch = errors.New("guess and answer lengths differ")

	// ErrIndexOutOfRange is returned by Replace for a position outside the word.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidGuess is returned by sessions for words that are not all A–Z.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrSessionFinished is returned when guessing after a win or loss.
	ErrSessionFinished = errors.New("session finished")
)

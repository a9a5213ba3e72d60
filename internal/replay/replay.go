// apps/lettercheck/internal/replay/replay.go
//
// Replays a fixed list of guesses against one answer and prints, for each
// guess, the raw green/yellow matches, the coloring, and the three letter
// sets after folding the guess in. This is the non-interactive driver around
// the game package; it keeps no state beyond a single run.

package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/lettercheck/internal/game"
)

// Run prints a replay of guesses against answer to w.
// It stops at the first guess that cannot be scored.
func Run(w io.Writer, answer string, guesses []string) error {
	letters := game.NewLetters()
	for n, g := range guesses {
		green, err := game.IsGreen(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		yellow, err := game.IsYellow(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		colors, err := game.GetColors(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		if err := letters.Update(g, answer); err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		log.Debug().Int("guess", n+1).Str("word", g).Msg("replayed")

		fmt.Fprintf(w, "answer  : %s\n", answer)
		fmt.Fprintf(w, "guess %d : %s\n", n+1, g)
		fmt.Fprintf(w, "isGreen : %s\n", bools(green))
		fmt.Fprintf(w, "isYellow: %s\n", bools(yellow))
		fmt.Fprintf(w, "colors  : %s\n", colorList(colors))
		fmt.Fprintf(w, "in      : %s\n", letters.Included)
		fmt.Fprintf(w, "not in  : %s\n", letters.Excluded)
		fmt.Fprintf(w, "maybe?  : %s\n", letters.Possible)
		fmt.Fprintln(w)
	}
	return nil
}

func bools(bs []bool) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprint(b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func colorList(cs []game.Color) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = strings.ToUpper(c.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

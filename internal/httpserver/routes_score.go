// apps/lettercheck/internal/httpserver/routes_score.go
//
// Stateless scoring routes. Nothing here touches the session store:
//   - POST /score   → green/yellow/colors for one guess
//   - POST /letters → fold a list of guesses into the three letter sets
//   - POST /replace → swap one letter of a word

package httpserver

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/lettercheck/internal/game"
)

type scoreReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}
type scoreRes struct {
	Green  []bool       `json:"green"`
	Yellow []bool       `json:"yellow"`
	Colors []game.Color `json:"colors"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if !decode(w, r, &req) {
		return
	}
	green, err := game.IsGreen(req.Guess, req.Answer)
	if err != nil {
		writeErr(w, err)
		return
	}
	yellow, err := game.IsYellow(req.Guess, req.Answer)
	if err != nil {
		writeErr(w, err)
		return
	}
	colors, err := game.GetColors(req.Guess, req.Answer)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreRes{Green: green, Yellow: yellow, Colors: colors})
}

type lettersReq struct {
	Answer  string   `json:"answer"`
	Guesses []string `json:"guesses"`
}
type lettersRes struct {
	Colorings [][]game.Color `json:"colorings"`
	Included  []string       `json:"included"`
	Excluded  []string       `json:"excluded"`
	Possible  []string       `json:"possible"`
}

// handleLetters starts from a fresh A–Z state and folds every guess in order.
func (s *Server) handleLetters(w http.ResponseWriter, r *http.Request) {
	var req lettersReq
	if !decode(w, r, &req) {
		return
	}
	letters := game.NewLetters()
	res := lettersRes{Colorings: make([][]game.Color, 0, len(req.Guesses))}
	for i, g := range req.Guesses {
		colors, err := game.GetColors(g, req.Answer)
		if err != nil {
			writeErr(w, fmt.Errorf("guess %d: %w", i+1, err))
			return
		}
		if err := letters.Update(g, req.Answer); err != nil {
			writeErr(w, fmt.Errorf("guess %d: %w", i+1, err))
			return
		}
		res.Colorings = append(res.Colorings, colors)
	}
	res.Included = letters.Included.Strings()
	res.Excluded = letters.Excluded.Strings()
	res.Possible = letters.Possible.Strings()
	writeJSON(w, http.StatusOK, res)
}

type replaceReq struct {
	Word   string `json:"word"`
	Index  int    `json:"index"`
	Letter string `json:"letter"`
}

func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	var req replaceReq
	if !decode(w, r, &req) {
		return
	}
	if utf8.RuneCountInString(req.Letter) != 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "letter must be a single character"})
		return
	}
	c, _ := utf8.DecodeRuneInString(req.Letter)
	out, err := game.Replace(req.Word, req.Index, c)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"word": out})
}

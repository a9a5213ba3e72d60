// apps/lettercheck/internal/httpserver/routes_session.go
//
// Session routes under /session:
//   - POST /session/new   → start a session for a caller-chosen answer
//   - POST /session/guess → score a guess and fold it into the session
//   - GET  /session/{id}  → snapshot (answer hidden until finished)

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/lettercheck/internal/game"
)

type newSessionReq struct {
	Answer string `json:"answer"`
}
type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Cols      int    `json:"cols"`
	Rows      int    `json:"rows"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if !decode(w, r, &req) {
		return
	}
	sess, err := game.NewSession(req.Answer)
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeErr(w, err)
		return
	}
	log.Info().Str("sessionId", sess.ID).Int("cols", sess.Cols).Msg("session started")
	writeJSON(w, http.StatusOK, newSessionRes{SessionID: sess.ID, Cols: sess.Cols, Rows: sess.Rows})
}

type guessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
}
type guessRes struct {
	Colors  []game.Color  `json:"colors"`
	State   game.State    `json:"state"`
	Session game.Snapshot `json:"session"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !decode(w, r, &req) {
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		writeErr(w, err)
		return
	}
	colors, state, err := sess.ApplyGuess(req.Guess)
	if err != nil {
		writeErr(w, err)
		return
	}
	if state != game.Playing {
		log.Info().Str("sessionId", sess.ID).Stringer("state", state).Msg("session finished")
	}
	writeJSON(w, http.StatusOK, guessRes{Colors: colors, State: state, Session: sess.Snapshot()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"guesstimate-server/pkg/scorekeeper"
)

// getGame lists every saved game, most recent first
func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := m.store.LoadAll(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		states := make([]*scorekeeper.State, len(games))
		for i, game := range games {
			states[i] = game.State()
		}

		writeJSON(w, http.StatusOK, states)
	}
}

// deleteGame removes every saved game
func (m *Mux) deleteGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.store.DeleteAll(r.Context()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

// deleteGameID removes a single saved game by its identifier
func (m *Mux) deleteGameID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := &scorekeeper.Game{ID: gmux.Vars(r)["id"]}
		if err := m.store.Delete(r.Context(), game); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

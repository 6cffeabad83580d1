package mux

import (
	"errors"
	"net/http"
	"time"

	"guesstimate-server/internal/util"
	"guesstimate-server/pkg/scorekeeper"
)

var errGameNotOver = errors.New("the game is not over")
var errGameNotFound = errors.New("no saved game with that id")

type sessionResponse struct {
	Token string             `json:"token"`
	State *scorekeeper.State `json:"state"`
}

func newSessionResponse(sess *session) sessionResponse {
	return sessionResponse{
		Token: sess.token,
		State: sess.game.State(),
	}
}

// postSession opens a session for a new game, or for a saved game when a
// gameId is supplied
func (m *Mux) postSession() http.HandlerFunc {
	type payload struct {
		GameID string `json:"gameId"`
		Name   string `json:"name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		var game *scorekeeper.Game
		if p.GameID != "" {
			saved, err := m.store.LoadAll(r.Context())
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			for _, g := range saved {
				if g.ID == p.GameID {
					game = g
					break
				}
			}

			if game == nil {
				writeJSONError(w, http.StatusNotFound, errGameNotFound)
				return
			}
		} else {
			game = scorekeeper.NewGame()
			if p.Name == "" {
				p.Name = util.RandomGameName()
			}

			game.SetName(p.Name)
		}

		sess := m.sessions.open(game)
		writeJSON(w, http.StatusCreated, newSessionResponse(sess))
	}
}

func (m *Mux) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		sess.mu.Lock()
		defer sess.mu.Unlock()

		writeJSON(w, http.StatusOK, newSessionResponse(sess))
	}
}

// deleteSession discards the in-memory game without saving
func (m *Mux) deleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		m.sessions.close(sess.token)
		writeJSON(w, http.StatusOK, statusOK())
	}
}

// deleteSessionGame deletes the game from storage and closes the session
func (m *Mux) deleteSessionGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := m.store.Delete(r.Context(), sess.game); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.sessions.close(sess.token)
		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postSessionDetails() http.HandlerFunc {
	type payload struct {
		Name string     `json:"name"`
		Date *time.Time `json:"date"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		sess.game.SetName(p.Name)
		if p.Date != nil {
			sess.game.SetDate(*p.Date)
		}

		m.saveAndRespond(w, r, sess)
	}
}

func (m *Mux) postSessionPlayers() http.HandlerFunc {
	type payload struct {
		Names []string `json:"names"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.SetPlayers(p.Names); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.saveAndRespond(w, r, sess)
	}
}

func (m *Mux) postSessionOptions() http.HandlerFunc {
	type payload struct {
		DownAndUp     bool   `json:"downAndUp"`
		StartNumCards int    `json:"startNumCards"`
		Dealer        string `json:"dealer"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.SetOptions(scorekeeper.Options{
			DownAndUp:     p.DownAndUp,
			StartNumCards: p.StartNumCards,
		}); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := sess.game.SetDealerByName(p.Dealer); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.saveAndRespond(w, r, sess)
	}
}

// postSessionRounds builds the round schedule and starts the first round
func (m *Mux) postSessionRounds() http.HandlerFunc {
	type payload struct {
		Down []int `json:"down"`
		Up   []int `json:"up"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		game := sess.game
		opts := scorekeeper.Options{
			DownAndUp:     game.DownAndUp,
			StartNumCards: game.StartNumCards,
		}

		rounds, err := scorekeeper.BuildSchedule(opts, selectionMap(p.Down), selectionMap(p.Up))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := game.SetSchedule(rounds); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.saveAndRespond(w, r, sess)
	}
}

func (m *Mux) postSessionBids() http.HandlerFunc {
	type payload struct {
		Bids map[string]int `json:"bids"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.SubmitBids(p.Bids); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.saveAndRespond(w, r, sess)
	}
}

// postSessionActuals records actual tricks and immediately advances the game
func (m *Mux) postSessionActuals() http.HandlerFunc {
	type payload struct {
		Actuals map[string]int `json:"actuals"`
	}

	type response struct {
		sessionResponse
		RoundStarted bool `json:"roundStarted"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.SubmitActuals(p.Actuals); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		started := sess.game.NextRound()

		if err := m.saveGame(r, sess); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, response{
			sessionResponse: newSessionResponse(sess),
			RoundStarted:    started,
		})
	}
}

func (m *Mux) postSessionPreviousRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.PreviousRound(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.saveAndRespond(w, r, sess)
	}
}

// postSessionRematch starts a new game with the previous game's players and
// settings and opens a fresh session for it
func (m *Mux) postSessionRematch() http.HandlerFunc {
	type payload struct {
		Dealer string `json:"dealer"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if sess.game.Phase() != scorekeeper.PhaseCompleted {
			writeJSONError(w, http.StatusBadRequest, errGameNotOver)
			return
		}

		game, err := scorekeeper.NewGameFromPrevious(sess.game, p.Dealer)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		next := m.sessions.open(game)
		if err := m.store.Save(r.Context(), game); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, newSessionResponse(next))
	}
}

// saveGame persists the session's game once it has started
// Setup-phase games stay in memory only, matching when the original app
// first wrote to storage
func (m *Mux) saveGame(r *http.Request, sess *session) error {
	if !sess.game.HasStarted() {
		return nil
	}

	return m.store.Save(r.Context(), sess.game)
}

func (m *Mux) saveAndRespond(w http.ResponseWriter, r *http.Request, sess *session) {
	if err := m.saveGame(r, sess); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(sess))
}

func selectionMap(numbers []int) map[int]bool {
	if numbers == nil {
		return nil
	}

	selection := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		selection[n] = true
	}

	return selection
}

package mux

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"

	"guesstimate-server/pkg/scorekeeper"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// session owns one live game
// All engine operations on the game run while holding mu, so there is exactly
// one logical writer per game
type session struct {
	mu    sync.Mutex
	token string
	game  *scorekeeper.Game
}

// sessions is the registry of live games, keyed by session token
type sessions struct {
	mu       sync.Mutex
	registry map[string]*session
}

func newSessions() *sessions {
	return &sessions{
		registry: make(map[string]*session),
	}
}

// open registers a live game and returns its session
func (s *sessions) open(game *scorekeeper.Game) *session {
	sess := &session{
		token: uuid.New().String(),
		game:  game,
	}

	s.mu.Lock()
	s.registry[sess.token] = sess
	s.mu.Unlock()

	return sess
}

func (s *sessions) get(token string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.registry[token]
	return sess, ok
}

// close discards the session; the in-memory game is simply dropped
func (s *sessions) close(token string) {
	s.mu.Lock()
	delete(s.registry, token)
	s.mu.Unlock()
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := gmux.Vars(r)["token"]
		sess, ok := m.sessions.get(token)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithSession(r.Context(), sess)))
	})
}

package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"guesstimate-server/pkg/scorekeeper"
)

// gameStore is the persistence collaborator
// *gamestore.Store satisfies it; tests substitute an in-memory fake
type gameStore interface {
	Save(ctx context.Context, game *scorekeeper.Game) error
	LoadAll(ctx context.Context) ([]*scorekeeper.Game, error)
	Delete(ctx context.Context, game *scorekeeper.Game) error
	DeleteAll(ctx context.Context) error
	Onboarded(ctx context.Context) (bool, error)
	SetOnboarded(ctx context.Context, onboarded bool) error
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	store    gameStore
	sessions *sessions

	// store for testing purposes
	sessionRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, store gameStore) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		store:    store,
		sessions: newSessions(),
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

		r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
		r.Methods(http.MethodDelete).Path("/game").Handler(this.deleteGame())
		r.Methods(http.MethodDelete).Path("/game/{id}").Handler(this.deleteGameID())

		r.Methods(http.MethodGet).Path("/app/onboarded").Handler(this.getAppOnboarded())
		r.Methods(http.MethodPost).Path("/app/onboarded").Handler(this.postAppOnboarded())

		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	{
		r := this.Router.PathPrefix("/session/{token:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		r.Use(this.sessionMiddleware)
		this.sessionRouter = r

		r.Methods(http.MethodGet).Path("").Handler(this.getSession())
		r.Methods(http.MethodDelete).Path("").Handler(this.deleteSession())
		r.Methods(http.MethodDelete).Path("/game").Handler(this.deleteSessionGame())

		r.Methods(http.MethodPost).Path("/details").Handler(this.postSessionDetails())
		r.Methods(http.MethodPost).Path("/players").Handler(this.postSessionPlayers())
		r.Methods(http.MethodPost).Path("/options").Handler(this.postSessionOptions())
		r.Methods(http.MethodPost).Path("/rounds").Handler(this.postSessionRounds())
		r.Methods(http.MethodPost).Path("/bids").Handler(this.postSessionBids())
		r.Methods(http.MethodPost).Path("/actuals").Handler(this.postSessionActuals())
		r.Methods(http.MethodPost).Path("/previous-round").Handler(this.postSessionPreviousRound())
		r.Methods(http.MethodPost).Path("/rematch").Handler(this.postSessionRematch())
	}

	return this
}

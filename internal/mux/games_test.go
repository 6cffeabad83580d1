package mux

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"guesstimate-server/pkg/scorekeeper"
)

func TestMux_getGame(t *testing.T) {
	store := newFakeStore()
	ts := httptest.NewServer(NewMux("", store))
	defer ts.Close()

	var states []*scorekeeper.State
	assertGet(t, ts, "/game", &states, 200)
	assert.Empty(t, states)

	first := scorekeeper.NewGame()
	first.SetName("First")
	second := scorekeeper.NewGame()
	second.SetName("Second")
	assert.NoError(t, store.Save(nil, first))
	assert.NoError(t, store.Save(nil, second))

	assertGet(t, ts, "/game", &states, 200)
	assert.Equal(t, 2, len(states))
	assert.Equal(t, "notStarted", states[0].Phase)

	store.err = errors.New("connection refused")
	var errObj errorResponse
	assertGet(t, ts, "/game", &errObj, 500)
	assert.Equal(t, "Internal Server Error", errObj.Message)
}

func TestMux_deleteGame(t *testing.T) {
	store := newFakeStore()
	ts := httptest.NewServer(NewMux("", store))
	defer ts.Close()

	first := scorekeeper.NewGame()
	second := scorekeeper.NewGame()
	assert.NoError(t, store.Save(nil, first))
	assert.NoError(t, store.Save(nil, second))

	var status statusResponse
	assertDelete(t, ts, "/game/"+first.ID, &status, 200)
	assert.Equal(t, "OK", status.Status)
	assert.Equal(t, 1, store.count())

	// deleting an unknown id is harmless
	assertDelete(t, ts, "/game/"+first.ID, &status, 200)
	assert.Equal(t, 1, store.count())

	assertDelete(t, ts, "/game", &status, 200)
	assert.Equal(t, 0, store.count())
}

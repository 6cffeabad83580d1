package mux

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"guesstimate-server/pkg/scorekeeper"
)

// fakeStore is an in-memory gameStore
// Games round-trip through their snapshots so persistence behaves like the
// real database without needing one
type fakeStore struct {
	mu        sync.Mutex
	order     []string
	snapshots map[string][]byte
	onboarded bool
	err       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		snapshots: make(map[string][]byte),
	}
}

func (f *fakeStore) Save(_ context.Context, game *scorekeeper.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	data, err := game.Snapshot()
	if err != nil {
		return err
	}

	if _, ok := f.snapshots[game.ID]; !ok {
		f.order = append(f.order, game.ID)
	}

	f.snapshots[game.ID] = data
	return nil
}

func (f *fakeStore) LoadAll(_ context.Context) ([]*scorekeeper.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	games := make([]*scorekeeper.Game, 0, len(f.order))
	for _, id := range f.order {
		game, err := scorekeeper.FromSnapshot(f.snapshots[id])
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	return games, nil
}

func (f *fakeStore) Delete(_ context.Context, game *scorekeeper.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	delete(f.snapshots, game.ID)
	for i, id := range f.order {
		if id == game.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}

	return nil
}

func (f *fakeStore) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.order = nil
	f.snapshots = make(map[string][]byte)
	return nil
}

func (f *fakeStore) Onboarded(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onboarded, f.err
}

func (f *fakeStore) SetOnboarded(_ context.Context, onboarded bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.onboarded = onboarded
	return nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.order)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func Test_decodeRequest(t *testing.T) {
	m := NewMux("", newFakeStore())
	ts := httptest.NewServer(m)
	defer ts.Close()

	// missing JSON content type
	resp, err := http.Post(ts.URL+"/session", "text/plain", strings.NewReader("{}"))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	// malformed body
	var errObj errorResponse
	assertPost(t, ts, "/session", "{", &errObj, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, scorekeeper.ErrNotEnoughPlayers)

	var errObj errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "there must be at least two players", errObj.Message)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)

	// internal errors are not leaked to the client
	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, scorekeeper.ErrNotEnoughPlayers)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "Internal Server Error", errObj.Message)
}

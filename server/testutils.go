package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fablegame/fable/game"
	"github.com/fablegame/fable/store"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Could not marshal json: %s", err.Error())
	}

	return data
}

func mustParseJson(t *testing.T, body io.Reader, target interface{}) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(target); err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func newTestServer() *GameServer {
	return NewServer(store.NewInMemoryGameStore(), game.Rules{})
}

func postJSON(t *testing.T, server *GameServer, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(mustMakeJson(t, payload)))
	server.ServeHTTP(response, request)
	return response
}

func get(t *testing.T, server *GameServer, path string) *httptest.ResponseRecorder {
	t.Helper()

	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	server.ServeHTTP(response, request)
	return response
}

// newServerWithGame creates a server with one game: the owner plus a joiner
func newServerWithGame(t *testing.T, server *GameServer) (JoinedGameRes, JoinedGameRes) {
	t.Helper()

	response := postJSON(t, server, "/new", NewGameReq{Name: "a game", PlayerName: "Elton"})
	assertStatus(t, response.Code, http.StatusCreated)

	var owner JoinedGameRes
	mustParseJson(t, response.Body, &owner)

	response = postJSON(t, server, "/game/"+owner.GameID+"/join", JoinGameReq{Name: "Kiki"})
	assertStatus(t, response.Code, http.StatusOK)

	var joiner JoinedGameRes
	mustParseJson(t, response.Body, &joiner)

	return owner, joiner
}

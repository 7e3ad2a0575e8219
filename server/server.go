package server

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	"github.com/fablegame/fable/deck"
	"github.com/fablegame/fable/game"
	"github.com/fablegame/fable/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name       string `json:"name"`
	PlayerName string `json:"player_name"`
}

type JoinGameReq struct {
	Name string `json:"name"`
}

type PlayReq struct {
	PlayerID string `json:"player_id"`
	Card     string `json:"card"`
}

type PlayerRes struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Owner       bool   `json:"is_owner"`
	Score       int    `json:"score"`
	Storyteller bool   `json:"is_storyteller"`
}

type GameRes struct {
	GameID        string      `json:"game_id"`
	Name          string      `json:"name"`
	Status        string      `json:"status"`
	Round         int         `json:"round"`
	RoundStatus   string      `json:"round_status"`
	DeckRemaining int         `json:"deck_remaining"`
	Players       []PlayerRes `json:"players"`
	Hand          []string    `json:"hand,omitempty"`
}

type JoinedGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Owner    bool     `json:"is_owner"`
	Hand     []string `json:"hand"`
}

type CompleteRoundRes struct {
	Game      GameRes `json:"game"`
	NextRound bool    `json:"next_round"`
}

// GameServer exposes the game engine over HTTP and websockets
type GameServer struct {
	store   store.GameStore
	rules   game.Rules
	scoring game.ScoringEngine

	watchersMu sync.Mutex
	watchers   map[string][]*websocket.Conn

	http.Server
}

// NewServer creates a new GameServer
func NewServer(str store.GameStore, rules game.Rules) *GameServer {
	s := &GameServer{
		store:    str,
		rules:    rules,
		scoring:  game.NewScoringEngine(rules),
		watchers: map[string][]*websocket.Conn{},
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))

	s.Handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handlers.LoggingHandler(os.Stdout, router))

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (s *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.PlayerName == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	g := game.NewGame(data.Name, data.PlayerName, s.rules)
	if err := s.store.AddGame(g); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	owner := g.Players[0]
	payload := JoinedGameRes{
		GameID:   g.ID,
		PlayerID: owner.ID,
		Name:     owner.Name,
		Owner:    true,
		Hand:     cardsToStrings(owner.Hand),
	}

	writeJSON(w, http.StatusCreated, payload)
}

// HandleGame routes requests of the form /game/{id}[/action]
func (s *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/game/")
	parts := strings.SplitN(rest, "/", 2)

	gameID := parts[0]
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	if s.store.FindGame(gameID) == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch action {
	case "":
		s.handleGetGame(w, r, gameID)
	case "join":
		s.handleJoinGame(w, r, gameID)
	case "play":
		s.handleProvideCard(w, r, gameID)
	case "choose":
		s.handleChooseCard(w, r, gameID)
	case "complete":
		s.handleCompleteRound(w, r, gameID)
	case "watch":
		s.handleWatchGame(w, r, gameID)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *GameServer) handleGetGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	g := s.store.FindGame(gameID)
	snapshot := buildGameRes(g)

	// a seated player may ask to see their own hand
	if playerID := r.URL.Query().Get("player_id"); playerID != "" {
		player, err := g.PlayerByID(playerID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(err.Error()))
			return
		}
		snapshot.Hand = cardsToStrings(player.Hand)
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *GameServer) handleJoinGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	var joined *game.Player
	err = s.store.UpdateGame(gameID, func(g *game.Game) error {
		player, err := g.AddPlayer(data.Name)
		joined = player
		return err
	})
	if err != nil && err != deck.ErrDeckExhausted {
		writeGameError(err, w)
		return
	}

	// the player is seated even when the deck could not cover a hand
	payload := JoinedGameRes{
		GameID:   gameID,
		PlayerID: joined.ID,
		Name:     joined.Name,
		Hand:     cardsToStrings(joined.Hand),
	}

	s.notifyWatchers(gameID)
	writeJSON(w, http.StatusOK, payload)
}

func (s *GameServer) handleProvideCard(w http.ResponseWriter, r *http.Request, gameID string) {
	s.handleCardSubmission(w, r, gameID, func(round *game.Round, playerID string, card deck.Card) error {
		return round.ProvideCard(playerID, card)
	})
}

func (s *GameServer) handleChooseCard(w http.ResponseWriter, r *http.Request, gameID string) {
	s.handleCardSubmission(w, r, gameID, func(round *game.Round, playerID string, card deck.Card) error {
		return round.ChooseCard(playerID, card)
	})
}

func (s *GameServer) handleCardSubmission(w http.ResponseWriter, r *http.Request, gameID string, submit func(*game.Round, string, deck.Card) error) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data PlayReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.PlayerID == "" || data.Card == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player ID or card"))
		return
	}

	var snapshot GameRes
	err = s.store.UpdateGame(gameID, func(g *game.Game) error {
		round := g.CurrentRound()
		if round == nil {
			return game.ErrNoRounds
		}
		if err := submit(round, data.PlayerID, deck.Card(data.Card)); err != nil {
			return err
		}
		snapshot = buildGameRes(g)
		return nil
	})
	if err != nil {
		writeGameError(err, w)
		return
	}

	s.notifyWatchers(gameID)
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *GameServer) handleCompleteRound(w http.ResponseWriter, r *http.Request, gameID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var payload CompleteRoundRes
	err := s.store.UpdateGame(gameID, func(g *game.Game) error {
		if err := s.scoring.CompleteRound(g); err != nil {
			return err
		}

		// advance to the next turn; a nil round means the deck is spent
		// and the game is over
		next := g.AddRound()
		payload = CompleteRoundRes{
			Game:      buildGameRes(g),
			NextRound: next != nil,
		}
		return nil
	})
	if err != nil {
		writeGameError(err, w)
		return
	}

	s.notifyWatchers(gameID)
	writeJSON(w, http.StatusOK, payload)
}

func (s *GameServer) handleWatchGame(w http.ResponseWriter, r *http.Request, gameID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	g := s.store.FindGame(gameID)
	if err := conn.WriteJSON(buildGameRes(g)); err != nil {
		conn.Close()
		return
	}

	s.watchersMu.Lock()
	s.watchers[gameID] = append(s.watchers[gameID], conn)
	s.watchersMu.Unlock()
}

// notifyWatchers pushes a fresh snapshot to every websocket watching the
// game, dropping connections that have gone away.
func (s *GameServer) notifyWatchers(gameID string) {
	g := s.store.FindGame(gameID)
	if g == nil {
		return
	}
	snapshot := buildGameRes(g)

	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()

	alive := s.watchers[gameID][:0]
	for _, conn := range s.watchers[gameID] {
		if err := conn.WriteJSON(snapshot); err != nil {
			conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	s.watchers[gameID] = alive
}

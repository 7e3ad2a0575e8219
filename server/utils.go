package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/fablegame/fable/deck"
	"github.com/fablegame/fable/game"
	"github.com/fablegame/fable/store"
)

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func cardsToStrings(cards []deck.Card) []string {
	strs := []string{}
	for _, c := range cards {
		strs = append(strs, string(c))
	}
	return strs
}

func buildGameRes(g *game.Game) GameRes {
	res := GameRes{
		GameID:  g.ID,
		Name:    g.Name,
		Status:  string(g.Status()),
		Round:   -1,
		Players: []PlayerRes{},
	}

	current := g.CurrentRound()
	if current != nil {
		res.Round = current.Number
		res.RoundStatus = string(current.Status())
	}
	res.DeckRemaining = g.Deck.Remaining()

	for _, p := range g.Players {
		res.Players = append(res.Players, PlayerRes{
			PlayerID:    p.ID,
			Name:        p.Name,
			Owner:       p.Owner,
			Score:       p.Score,
			Storyteller: current != nil && current.Turn.ID == p.ID,
		})
	}

	return res
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	if err != nil {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
	}
}

// writeGameError maps engine failures onto HTTP statuses. Rule violations
// are the client's fault; anything unrecognised is ours.
func writeGameError(err error, w http.ResponseWriter) {
	var status int

	switch err {
	case store.ErrUnknownGameID, game.ErrNoSuchPlayer:
		status = http.StatusNotFound
	case game.ErrRoundScored, game.ErrAlreadyPlayed, game.ErrAlreadyChosen:
		status = http.StatusConflict
	case game.ErrRoundIncomplete, game.ErrNoRounds, game.ErrNothingProvided,
		game.ErrNotInHand, game.ErrUnknownCard, game.ErrOwnCard,
		game.ErrStorytellerChoice, deck.ErrDeckExhausted:
		status = http.StatusUnprocessableEntity
	default:
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

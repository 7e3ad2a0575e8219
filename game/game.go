package game

import (
	"errors"
	"time"

	"github.com/fablegame/fable/deck"
)

var (
	ErrNoRounds          = errors.New("game has no rounds")
	ErrNoSuchPlayer      = errors.New("player is not in this game")
	ErrAlreadyPlayed     = errors.New("player has already submitted a card this round")
	ErrAlreadyChosen     = errors.New("player has already chosen a card this round")
	ErrNothingProvided   = errors.New("player must provide a card before choosing")
	ErrNotInHand         = errors.New("card is not in the player's hand")
	ErrUnknownCard       = errors.New("card was not provided in this round")
	ErrOwnCard           = errors.New("cannot choose your own card")
	ErrStorytellerChoice = errors.New("the storyteller does not guess")
	ErrRoundIncomplete   = errors.New("round is still waiting for players")
	ErrRoundScored       = errors.New("round has already been scored")
)

// GameStatus is derived from the game's players and rounds, never stored
type GameStatus string

const (
	StatusNew       GameStatus = "new"
	StatusOngoing   GameStatus = "ongoing"
	StatusFinished  GameStatus = "finished"
	StatusAbandoned GameStatus = "abandoned"
)

// Game is a single storyteller game: its seated players in join order, its
// rounds in play order and the deck the rounds draw from.
type Game struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Players   []*Player
	Rounds    []*Round
	Deck      deck.Deck
	Rules     Rules
}

// NewGame bootstraps a game with its owner seated and round 0 dealt.
// If the configured deck cannot cover even the first hand, the game is
// created with no rounds.
func NewGame(name, ownerName string, rules Rules) *Game {
	rules = rules.withDefaults()

	g := &Game{
		ID:        NewID(),
		Name:      name,
		CreatedAt: time.Now(),
		Players:   []*Player{},
		Rounds:    []*Round{},
		Deck:      deck.New(rules.DeckSize),
		Rules:     rules,
	}

	owner := NewPlayer(ownerName, 0, true)
	g.Players = append(g.Players, owner)

	g.AddRound()
	return g
}

// Status derives the game's state from its players and rounds:
// no players means abandoned; no rounds left to play (or none ever dealt)
// means finished; an untouched round 0 means new; anything else is ongoing.
func (g *Game) Status() GameStatus {
	if len(g.Players) == 0 {
		return StatusAbandoned
	}

	current := g.CurrentRound()
	if current == nil || g.allRoundsComplete() {
		return StatusFinished
	}

	if current.Number == 0 && current.Status() == RoundNew {
		return StatusNew
	}

	return StatusOngoing
}

func (g *Game) allRoundsComplete() bool {
	for _, r := range g.Rounds {
		if r.Status() != RoundComplete {
			return false
		}
	}
	return true
}

// CurrentRound returns the round with the highest number, or nil
func (g *Game) CurrentRound() *Round {
	if len(g.Rounds) == 0 {
		return nil
	}
	return g.Rounds[len(g.Rounds)-1]
}

// Storyteller returns the player whose turn the current round is
func (g *Game) Storyteller() (*Player, error) {
	current := g.CurrentRound()
	if current == nil {
		return nil, ErrNoRounds
	}
	return current.Turn, nil
}

// PlayerByID finds a seated player by ID
func (g *Game) PlayerByID(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNoSuchPlayer
}

// PlayerAt finds a seated player by turn-order index
func (g *Game) PlayerAt(order int) (*Player, error) {
	for _, p := range g.Players {
		if p.Order == order {
			return p, nil
		}
	}
	return nil, ErrNoSuchPlayer
}

// AddPlayer seats a new player at the end of the turn rotation. If the
// current round hasn't started yet the joiner is dealt into it straight
// away; a dealing failure still leaves the player seated.
func (g *Game) AddPlayer(name string) (*Player, error) {
	player := NewPlayer(name, len(g.Players), false)
	g.Players = append(g.Players, player)

	if current := g.CurrentRound(); current != nil && current.Status() == RoundNew {
		if err := current.deal(); err != nil {
			return player, err
		}
	}

	return player, nil
}

// AddRound appends the next round, rotating the storyteller turn through
// the seated players, and deals its hands. It returns nil without creating
// a round when the game has no players, or when the deck cannot cover the
// hands — exhaustion is how a game naturally ends, not a fault.
func (g *Game) AddRound() *Round {
	nplayers := len(g.Players)
	if nplayers == 0 {
		return nil
	}

	number, turn := 0, 0
	if current := g.CurrentRound(); current != nil {
		number = current.Number + 1
		turn = (current.Turn.Order + 1) % nplayers
	}

	player, err := g.PlayerAt(turn)
	if err != nil {
		return nil
	}

	round := &Round{
		ID:     NewID(),
		Number: number,
		Turn:   player,
		Plays:  []*Play{},
		game:   g,
	}

	if err := round.deal(); err != nil {
		// deck exhausted; the round is discarded
		return nil
	}

	g.Rounds = append(g.Rounds, round)
	return round
}

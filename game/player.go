package game

import (
	"github.com/fablegame/fable/deck"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs an entity ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player seated in a game. Order is the player's
// position in the turn rotation, assigned densely in join order. Score is
// only ever mutated by the scoring engine.
type Player struct {
	ID    string
	Name  string
	Order int
	Owner bool
	Score int
	Hand  []deck.Card
}

// NewPlayer constructs a Player with an empty hand
func NewPlayer(name string, order int, owner bool) *Player {
	return &Player{
		ID:    NewID(),
		Name:  name,
		Order: order,
		Owner: owner,
		Hand:  []deck.Card{},
	}
}

func (p *Player) holds(card deck.Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func (p *Player) removeFromHand(card deck.Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

package game

import (
	"github.com/fablegame/fable/deck"
)

// RoundStatus is derived from the round's plays, never stored
type RoundStatus string

const (
	RoundNew      RoundStatus = "new"
	RoundOngoing  RoundStatus = "ongoing"
	RoundComplete RoundStatus = "complete"
)

// Play is one player's submission within a round. CardProvided is the card
// the player put on the table: the story card for the storyteller, a decoy
// for everyone else. CardChosen is the card the player guessed as the story
// card; it stays empty for the storyteller.
type Play struct {
	Player       *Player
	CardProvided deck.Card
	CardChosen   deck.Card
}

// Round is one turn of play. Turn is the designated storyteller. Scored
// flips once the scoring engine has awarded points, so a round can never
// pay out twice.
type Round struct {
	ID     string
	Number int
	Turn   *Player
	Plays  []*Play
	Scored bool

	game *Game
}

// Status derives the round's state from its plays. A round is complete
// when the storyteller has provided a card and every other seated player
// has both provided a card and chosen a guess.
func (r *Round) Status() RoundStatus {
	if len(r.Plays) == 0 {
		return RoundNew
	}

	story := r.PlayFor(r.Turn.ID)
	if story == nil || story.CardProvided == "" {
		return RoundOngoing
	}

	for _, p := range r.game.Players {
		if p.ID == r.Turn.ID {
			continue
		}
		play := r.PlayFor(p.ID)
		if play == nil || play.CardChosen == "" {
			return RoundOngoing
		}
	}

	return RoundComplete
}

// PlayFor returns the given player's play in this round, or nil
func (r *Round) PlayFor(playerID string) *Play {
	for _, play := range r.Plays {
		if play.Player.ID == playerID {
			return play
		}
	}
	return nil
}

// ProvideCard records a player's card submission for this round. The card
// must come from the player's hand and a player can only submit once.
func (r *Round) ProvideCard(playerID string, card deck.Card) error {
	player, err := r.game.PlayerByID(playerID)
	if err != nil {
		return err
	}
	if r.PlayFor(playerID) != nil {
		return ErrAlreadyPlayed
	}
	if !player.holds(card) {
		return ErrNotInHand
	}

	player.removeFromHand(card)
	r.Plays = append(r.Plays, &Play{Player: player, CardProvided: card})
	return nil
}

// ChooseCard records a player's guess at the story card. The player must
// have provided their own card first, cannot be the storyteller, cannot
// pick their own card, and must pick a card that is on the table.
func (r *Round) ChooseCard(playerID string, card deck.Card) error {
	if playerID == r.Turn.ID {
		return ErrStorytellerChoice
	}

	play := r.PlayFor(playerID)
	if play == nil {
		return ErrNothingProvided
	}
	if play.CardChosen != "" {
		return ErrAlreadyChosen
	}
	if card == play.CardProvided {
		return ErrOwnCard
	}

	onTable := false
	for _, p := range r.Plays {
		if p.CardProvided == card {
			onTable = true
			break
		}
	}
	if !onTable {
		return ErrUnknownCard
	}

	play.CardChosen = card
	return nil
}

// deal tops every seated player's hand back up to the game's hand size.
// The total shortfall is requested from the deck in a single call, so on
// exhaustion no hand and no part of the pool is touched.
func (r *Round) deal() error {
	needed := 0
	for _, p := range r.game.Players {
		if short := r.game.Rules.HandSize - len(p.Hand); short > 0 {
			needed += short
		}
	}

	cards, err := r.game.Deck.Deal(needed)
	if err != nil {
		return err
	}

	for _, p := range r.game.Players {
		short := r.game.Rules.HandSize - len(p.Hand)
		if short <= 0 {
			continue
		}
		p.Hand = append(p.Hand, cards[:short]...)
		cards = cards[short:]
	}
	return nil
}

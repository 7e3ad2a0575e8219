package game

import (
	"github.com/fablegame/fable/deck"
)

// ScoringEngine awards points when a round finishes.
//
// The scoring works as follows:
//   - players get GuessScore points if they find the story card
//   - players get ConfusedGuessScore points for each other player that
//     chooses their decoy card
//   - the storyteller gets StoryScore points if at least one, but not all,
//     players find the story card
//   - a player gains at most MaxRoundScore points from one round
type ScoringEngine struct {
	rules Rules
}

// NewScoringEngine constructs a ScoringEngine
func NewScoringEngine(rules Rules) ScoringEngine {
	return ScoringEngine{rules: rules.withDefaults()}
}

// CompleteRound scores the game's current round and applies the points to
// the players' totals. It refuses to touch a round that is still waiting
// for plays or that has already been scored; in both cases no state changes.
func (e ScoringEngine) CompleteRound(g *Game) error {
	round := g.CurrentRound()
	if round == nil {
		return ErrNoRounds
	}
	if round.Scored {
		return ErrRoundScored
	}
	if round.Status() != RoundComplete {
		return ErrRoundIncomplete
	}

	storyteller := round.Turn
	storyCard := round.PlayFor(storyteller.ID).CardProvided

	// index the table once so fooled-by lookups are O(1)
	byCard := make(map[deck.Card]*Play, len(round.Plays))
	for _, play := range round.Plays {
		byCard[play.CardProvided] = play
	}

	scores := map[*Player]int{}
	guessers, correct := 0, 0

	for _, play := range round.Plays {
		if play.Player.ID == storyteller.ID {
			continue
		}
		guessers++

		if play.CardChosen == storyCard {
			scores[play.Player] += e.rules.GuessScore
			correct++
		} else if decoy := byCard[play.CardChosen]; decoy != nil {
			scores[decoy.Player] += e.rules.ConfusedGuessScore
		}
	}

	if correct > 0 && correct < guessers {
		scores[storyteller] = e.rules.StoryScore
	}

	for player, score := range scores {
		if score > e.rules.MaxRoundScore {
			score = e.rules.MaxRoundScore
		}
		player.Score += score
	}

	round.Scored = true
	return nil
}

package game

import (
	"testing"

	"github.com/fablegame/fable/deck"
	utils "github.com/fablegame/fable/internal"
	"github.com/stretchr/testify/assert"
)

// provideAll puts one card from each player on the table and returns the
// story card plus each player's provided card keyed by name.
func provideAll(t *testing.T, g *Game) (deck.Card, map[string]deck.Card) {
	t.Helper()

	round := g.CurrentRound()
	provided := map[string]deck.Card{}
	for _, p := range g.Players {
		utils.AssertNoError(t, round.ProvideCard(p.ID, p.Hand[0]))
		provided[p.Name] = round.PlayFor(p.ID).CardProvided
	}
	return provided[round.Turn.Name], provided
}

func TestCompleteRound(t *testing.T) {
	t.Run("splits points between guessers, decoy owners and the storyteller", func(t *testing.T) {
		// P0 tells the story. P1 and P3 find the story card, P2 falls for
		// P3's decoy. Some but not all guessed right, so P0 scores too.
		g := gameWithPlayers(t, "P0", "P1", "P2", "P3")
		round := g.CurrentRound()
		storyCard, provided := provideAll(t, g)

		utils.AssertNoError(t, round.ChooseCard(g.Players[1].ID, storyCard))
		utils.AssertNoError(t, round.ChooseCard(g.Players[2].ID, provided["P3"]))
		utils.AssertNoError(t, round.ChooseCard(g.Players[3].ID, storyCard))

		engine := NewScoringEngine(g.Rules)
		utils.AssertNoError(t, engine.CompleteRound(g))

		assert.Equal(t, g.Rules.StoryScore, g.Players[0].Score)
		assert.Equal(t, g.Rules.GuessScore, g.Players[1].Score)
		assert.Equal(t, 0, g.Players[2].Score)
		assert.Equal(t, g.Rules.GuessScore+g.Rules.ConfusedGuessScore, g.Players[3].Score)
	})

	t.Run("storyteller earns nothing when everyone guesses right", func(t *testing.T) {
		g := gameWithPlayers(t, "P0", "P1", "P2", "P3")
		round := g.CurrentRound()
		storyCard, _ := provideAll(t, g)

		for _, p := range g.Players[1:] {
			utils.AssertNoError(t, round.ChooseCard(p.ID, storyCard))
		}

		engine := NewScoringEngine(g.Rules)
		utils.AssertNoError(t, engine.CompleteRound(g))

		assert.Equal(t, 0, g.Players[0].Score)
		for _, p := range g.Players[1:] {
			assert.Equal(t, g.Rules.GuessScore, p.Score, p.Name)
		}
	})

	t.Run("storyteller earns nothing when no one guesses right", func(t *testing.T) {
		g := gameWithPlayers(t, "P0", "P1", "P2", "P3")
		round := g.CurrentRound()
		_, provided := provideAll(t, g)

		// everyone falls for the next player's decoy
		utils.AssertNoError(t, round.ChooseCard(g.Players[1].ID, provided["P2"]))
		utils.AssertNoError(t, round.ChooseCard(g.Players[2].ID, provided["P3"]))
		utils.AssertNoError(t, round.ChooseCard(g.Players[3].ID, provided["P1"]))

		engine := NewScoringEngine(g.Rules)
		utils.AssertNoError(t, engine.CompleteRound(g))

		assert.Equal(t, 0, g.Players[0].Score)
		for _, p := range g.Players[1:] {
			assert.Equal(t, g.Rules.ConfusedGuessScore, p.Score, p.Name)
		}
	})

	t.Run("a player's round total is clamped to the cap", func(t *testing.T) {
		rules := Rules{
			GuessScore:         3,
			ConfusedGuessScore: 4,
			StoryScore:         3,
			MaxRoundScore:      5,
		}
		g := NewGame("a game", "P0", rules)
		for _, name := range []string{"P1", "P2", "P3"} {
			_, err := g.AddPlayer(name)
			utils.AssertNoError(t, err)
		}

		round := g.CurrentRound()
		storyCard, provided := provideAll(t, g)

		// P1 finds the story card and fools P2: 3 + 4 > cap of 5
		utils.AssertNoError(t, round.ChooseCard(g.Players[1].ID, storyCard))
		utils.AssertNoError(t, round.ChooseCard(g.Players[2].ID, provided["P1"]))
		utils.AssertNoError(t, round.ChooseCard(g.Players[3].ID, storyCard))

		engine := NewScoringEngine(g.Rules)
		utils.AssertNoError(t, engine.CompleteRound(g))

		assert.Equal(t, 5, g.Players[1].Score)
	})

	t.Run("refuses an incomplete round without touching scores", func(t *testing.T) {
		g := gameWithPlayers(t, "P0", "P1", "P2")
		round := g.CurrentRound()
		storyCard, _ := provideAll(t, g)
		utils.AssertNoError(t, round.ChooseCard(g.Players[1].ID, storyCard))
		// P2 has not chosen yet

		engine := NewScoringEngine(g.Rules)
		utils.AssertEqual(t, engine.CompleteRound(g), ErrRoundIncomplete)

		for _, p := range g.Players {
			assert.Equal(t, 0, p.Score, p.Name)
		}
		utils.AssertEqual(t, round.Scored, false)
	})

	t.Run("never scores the same round twice", func(t *testing.T) {
		g := gameWithPlayers(t, "P0", "P1", "P2")
		playWholeRound(t, g)

		engine := NewScoringEngine(g.Rules)
		utils.AssertNoError(t, engine.CompleteRound(g))

		scoresAfterFirst := []int{}
		for _, p := range g.Players {
			scoresAfterFirst = append(scoresAfterFirst, p.Score)
		}

		utils.AssertEqual(t, engine.CompleteRound(g), ErrRoundScored)
		for i, p := range g.Players {
			assert.Equal(t, scoresAfterFirst[i], p.Score, p.Name)
		}
	})

	t.Run("fails when the game has no rounds", func(t *testing.T) {
		g := &Game{}
		engine := NewScoringEngine(Rules{})
		utils.AssertEqual(t, engine.CompleteRound(g), ErrNoRounds)
	})
}

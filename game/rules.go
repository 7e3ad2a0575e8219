package game

// Rules carries the tunable parameters of a game. The zero value is not
// usable directly; withDefaults fills in the standard values, so callers
// only set the fields they care about.
type Rules struct {
	// GuessScore is awarded for correctly identifying the story card.
	GuessScore int
	// ConfusedGuessScore is awarded to a player whose decoy card fools
	// another player.
	ConfusedGuessScore int
	// StoryScore is awarded to the storyteller when some, but not all,
	// players find the story card.
	StoryScore int
	// MaxRoundScore caps what a single player can gain from one round.
	MaxRoundScore int
	// HandSize is the number of cards each player holds at the start of
	// a round.
	HandSize int
	// DeckSize is the number of cards the game starts with.
	DeckSize int
}

// DefaultRules returns the standard scoring and dealing parameters
func DefaultRules() Rules {
	return Rules{
		GuessScore:         3,
		ConfusedGuessScore: 1,
		StoryScore:         3,
		MaxRoundScore:      6,
		HandSize:           6,
		DeckSize:           84,
	}
}

func (r Rules) withDefaults() Rules {
	defaults := DefaultRules()
	if r.GuessScore == 0 {
		r.GuessScore = defaults.GuessScore
	}
	if r.ConfusedGuessScore == 0 {
		r.ConfusedGuessScore = defaults.ConfusedGuessScore
	}
	if r.StoryScore == 0 {
		r.StoryScore = defaults.StoryScore
	}
	if r.MaxRoundScore == 0 {
		r.MaxRoundScore = defaults.MaxRoundScore
	}
	if r.HandSize == 0 {
		r.HandSize = defaults.HandSize
	}
	if r.DeckSize == 0 {
		r.DeckSize = defaults.DeckSize
	}
	return r
}

package config

import (
	"github.com/joeshaw/envdecode"

	"github.com/fablegame/fable/game"
)

// Config is the service configuration, decoded from the environment
type Config struct {
	Addr string `env:"FABLE_ADDR,default=:8000"`

	GuessScore         int `env:"FABLE_GUESS_SCORE,default=3"`
	ConfusedGuessScore int `env:"FABLE_CONFUSED_GUESS_SCORE,default=1"`
	StoryScore         int `env:"FABLE_STORY_SCORE,default=3"`
	MaxRoundScore      int `env:"FABLE_MAX_ROUND_SCORE,default=6"`
	HandSize           int `env:"FABLE_HAND_SIZE,default=6"`
	DeckSize           int `env:"FABLE_DECK_SIZE,default=84"`
}

// FromEnv decodes the configuration from environment variables
func FromEnv() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Rules converts the configured scores into game rules
func (c Config) Rules() game.Rules {
	return game.Rules{
		GuessScore:         c.GuessScore,
		ConfusedGuessScore: c.ConfusedGuessScore,
		StoryScore:         c.StoryScore,
		MaxRoundScore:      c.MaxRoundScore,
		HandSize:           c.HandSize,
		DeckSize:           c.DeckSize,
	}
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken  string `env:"BOT_TOKEN,required"`
	AIAPIKey  string `env:"AI_API_KEY,required"`
	AIBaseURL string `env:"AI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	// Optional audit-log destination (Postgres). Empty keeps audit in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	// Optional image re-hosting for vision backends that cannot fetch
	// Telegram file URLs.
	ImageHostKey string `env:"IMAGE_HOST_KEY"`
	ImageHostURL string `env:"IMAGE_HOST_URL" envDefault:"https://api.imgbb.com/1/upload"`

	// Capability catalog, supplied at startup.
	ChatModels   []string `env:"CHAT_MODELS" envSeparator:"," envDefault:"gpt-4,gpt-4-0613,gpt-4-0314,gpt-3.5-turbo-16k-0613,inflection-1,falcon-180b"`
	ImageModels  []string `env:"IMAGE_MODELS" envSeparator:"," envDefault:"dall-e"`
	Voices       []string `env:"VOICES" envSeparator:"," envDefault:"voice-paimon"`
	VisionModels []string `env:"VISION_MODELS" envSeparator:"," envDefault:"idefics-80b"`

	// Dialogue behavior
	CancelPhrase   string `env:"CANCEL_PHRASE" envDefault:"Finish Dialogue"`
	IntroQuestion  string `env:"INTRO_QUESTION"`
	SpeechLanguage string `env:"SPEECH_LANGUAGE" envDefault:"en"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

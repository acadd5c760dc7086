package configs

import "time"

// LLM configures the chat completions API used for recommendation
// generation. MinCallInterval is the minimum spacing between successive
// API calls, enforced by the recommender's rate limiter.
type LLM struct {
	BaseURL         string        `env:"BASE_URL" envDefault:"https://api.mistral.ai/v1"`
	APIKey          string        `env:"API_KEY"`
	Model           string        `env:"MODEL" envDefault:"mistral-small-latest"`
	MinCallInterval time.Duration `env:"MIN_CALL_INTERVAL" envDefault:"2s"`
}

package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	HFBaseURL        string `env:"HF_BASE_URL" envDefault:"https://api-inference.huggingface.co"`
	HFAPIKey         string `env:"HF_API_KEY"`
	HFModel          string `env:"HF_MODEL" envDefault:"j-hartmann/emotion-english-distilroberta-base"`
	ClassifyTimeout  int    `env:"CLASSIFY_TIMEOUT_SECONDS" envDefault:"15"`
	ClassifyDisabled bool   `env:"CLASSIFY_DISABLED" envDefault:"false"`

	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"http://localhost:11434/v1"`
	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"llama3.2"`
	LLMTimeout int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"30"`

	QuotesPath string `env:"QUOTES_PATH" envDefault:"quotes.json"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`

	ChatRateWindowMinutes int `env:"CHAT_RATE_WINDOW_MINUTES" envDefault:"1"`
	ChatRateMax           int `env:"CHAT_RATE_MAX" envDefault:"20"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	Port               string
	CSVPath            string
	MinTranscriptChars int
	GroqAPIKey         string
	GroqModel          string
	AnthropicAPIKey    string
	FrontendURL        string
}

// Load reads configuration from the environment and an optional .env file.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:               getenv("PORT", "8080"),
		CSVPath:            getenv("CSV_PATH", "call_analysis.csv"),
		MinTranscriptChars: getenvInt("MIN_TRANSCRIPT_CHARS", 10),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqModel:          os.Getenv("GROQ_MODEL"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		FrontendURL:        os.Getenv("FRONTEND_URL"),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

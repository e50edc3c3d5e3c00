package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port            string
	PublicBaseURL   string
	UploadDir       string
	ConversationLog string
	AssemblyAIKey   string
	AssemblyAIURL   string
	OpenAIKey       string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		PublicBaseURL:   getEnv("SERVER_URL", "http://localhost:5000"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		ConversationLog: getEnv("CONVERSATION_LOG", "conversations.log"),
		AssemblyAIKey:   os.Getenv("ASSEMBLYAI_API_KEY"),
		AssemblyAIURL:   getEnv("ASSEMBLYAI_URL", "https://api.assemblyai.com"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
	}

	// Validate required environment variables
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required. Please set it as environment variable:\n  Linux/Mac: export OPENAI_API_KEY=\"your_key\"")
	}

	// AssemblyAI key is only checked when the assemblyai STT provider is
	// selected; the stt factory validates it at construction time.

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

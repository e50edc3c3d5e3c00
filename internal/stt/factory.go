package stt

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// CreateProvider creates an STT provider based on environment configuration
func CreateProvider() (Provider, error) {
	providerName := strings.ToLower(os.Getenv("STT_PROVIDER"))

	// Default to AssemblyAI if not specified
	if providerName == "" {
		providerName = "assemblyai"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'assemblyai'")
	}

	switch providerName {
	case "assemblyai":
		return createAssemblyAIProvider()
	case "google":
		return createGoogleProvider()
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: assemblyai, google", providerName)
	}
}

// createAssemblyAIProvider creates an AssemblyAI STT provider
func createAssemblyAIProvider() (Provider, error) {
	apiKey := os.Getenv("ASSEMBLYAI_API_KEY")
	baseURL := os.Getenv("ASSEMBLYAI_URL")

	if apiKey == "" {
		return nil, fmt.Errorf("ASSEMBLYAI_API_KEY environment variable is not set")
	}

	if baseURL == "" {
		baseURL = "https://api.assemblyai.com"
		log.Printf("[STT Factory] ASSEMBLYAI_URL not set, using default: %s", baseURL)
	}

	log.Printf("[STT Factory] Creating AssemblyAI STT provider")
	return NewAssemblyAIProvider(apiKey, baseURL), nil
}

// createGoogleProvider creates a Google STT provider
// GOOGLE_STT_KEY_FILE can be either:
//   - An API key (39 characters, typically starts with "AIzaSy")
//   - A file path to a JSON key file
//   - A JSON string containing the service account credentials
func createGoogleProvider() (Provider, error) {
	projectID := os.Getenv("GOOGLE_STT_PROJECT_ID")
	keyData := os.Getenv("GOOGLE_STT_KEY_FILE")

	if keyData == "" {
		return nil, fmt.Errorf("GOOGLE_STT_KEY_FILE environment variable is not set. It can be:\n  - An API key (39 characters)\n  - A file path to a JSON key file\n  - A JSON string containing service account credentials")
	}

	// Project ID is optional when using an API key
	if !isGoogleAPIKey(strings.TrimSpace(keyData)) && projectID == "" {
		return nil, fmt.Errorf("GOOGLE_STT_PROJECT_ID environment variable is required when using service account")
	}

	log.Printf("[STT Factory] Creating Google STT provider")
	return NewGoogleProvider(projectID, keyData)
}

package stt

import "context"

// Audio identifies previously stored audio for a provider. URL-based
// providers (AssemblyAI) fetch the locator; content-based providers
// (Google) read the local path.
type Audio struct {
	URL  string
	Path string
}

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe transcribes stored audio and returns the result. The call
	// is fire-and-wait: it blocks until the provider's job resolves.
	Transcribe(ctx context.Context, audio Audio) (*Result, error)

	// Name returns the name of the provider (e.g., "assemblyai", "google")
	Name() string
}

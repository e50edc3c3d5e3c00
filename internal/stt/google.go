package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleProvider implements STT using the Google Cloud Speech-to-Text REST
// API. Unlike AssemblyAI it recognizes the audio content directly, so it
// reads the stored bytes instead of handing out the locator.
type GoogleProvider struct {
	projectID  string
	apiKey     string
	httpClient *http.Client
	useAPIKey  bool
}

// NewGoogleProvider creates a new Google STT provider. keyData can be either:
//   - An API key (39 characters, typically starts with "AIzaSy")
//   - A file path to a JSON service-account key file
//   - A JSON string containing the service account credentials
func NewGoogleProvider(projectID, keyData string) (*GoogleProvider, error) {
	keyData = strings.TrimSpace(keyData)

	if isGoogleAPIKey(keyData) {
		log.Printf("[Google STT] Using API key authentication")
		return &GoogleProvider{
			projectID:  projectID,
			apiKey:     keyData,
			httpClient: &http.Client{Timeout: 90 * time.Second},
			useAPIKey:  true,
		}, nil
	}

	ctx := context.Background()
	var client *http.Client

	if keyData == "" {
		creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w. Please set GOOGLE_STT_KEY_FILE", err)
		}
		client = oauth2.NewClient(ctx, creds.TokenSource)
	} else {
		jsonData := []byte(keyData)
		if !strings.HasPrefix(keyData, "{") {
			// Treat as a key file path
			log.Printf("[Google STT] Reading key file: %s", keyData)
			var err error
			jsonData, err = os.ReadFile(keyData)
			if err != nil {
				return nil, fmt.Errorf("failed to read key file %q: %w", keyData, err)
			}
		}
		creds, err := google.CredentialsFromJSON(ctx, jsonData, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			return nil, fmt.Errorf("failed to create credentials from JSON: %w", err)
		}
		client = oauth2.NewClient(ctx, creds.TokenSource)
	}

	return &GoogleProvider{
		projectID:  projectID,
		httpClient: client,
		useAPIKey:  false,
	}, nil
}

func isGoogleAPIKey(keyData string) bool {
	return len(keyData) == 39 && strings.HasPrefix(keyData, "AIzaSy")
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

type googleSTTRequest struct {
	Config googleSTTConfig `json:"config"`
	Audio  googleSTTAudio  `json:"audio"`
}

type googleSTTConfig struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type googleSTTAudio struct {
	Content string `json:"content"` // Base64 encoded
}

type googleSTTResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Transcribe recognizes the stored audio bytes with a single synchronous
// recognize call.
func (p *GoogleProvider) Transcribe(ctx context.Context, audio Audio) (*Result, error) {
	startTime := time.Now()

	audioBytes, err := os.ReadFile(audio.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio file: %v", ErrProvider, err)
	}

	encoding, sampleRate := googleAudioConfig(filepath.Ext(audio.Path))

	reqJSON, err := json.Marshal(googleSTTRequest{
		Config: googleSTTConfig{
			Encoding:                   encoding,
			SampleRateHertz:            sampleRate,
			LanguageCode:               "en-US",
			EnableAutomaticPunctuation: true,
		},
		Audio: googleSTTAudio{Content: base64.StdEncoding.EncodeToString(audioBytes)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrProvider, err)
	}

	apiURL := "https://speech.googleapis.com/v1/speech:recognize"
	if p.useAPIKey {
		apiURL += "?key=" + p.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[Google STT] Calling Speech-to-Text API (%d audio bytes)", len(audioBytes))
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Google STT] API error: Status %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: API returned status %d: %s", ErrProvider, resp.StatusCode, string(body))
	}

	var sttResp googleSTTResponse
	if err := json.Unmarshal(body, &sttResp); err != nil {
		log.Printf("[Google STT] Failed to parse response. Raw body: %s", string(body))
		return nil, fmt.Errorf("%w: parse response: %v", ErrProvider, err)
	}

	if sttResp.Error != nil {
		log.Printf("[Google STT] API error: Code %d, Status %s, Message: %s",
			sttResp.Error.Code, sttResp.Error.Status, sttResp.Error.Message)
		return nil, fmt.Errorf("%w: %s", ErrProvider, sttResp.Error.Message)
	}

	// No results means no speech was detected; report it as an empty
	// transcript rather than a failure.
	transcript := ""
	confidence := 0.0
	if len(sttResp.Results) > 0 && len(sttResp.Results[0].Alternatives) > 0 {
		best := sttResp.Results[0].Alternatives[0]
		transcript = strings.TrimSpace(best.Transcript)
		confidence = best.Confidence
	}

	log.Printf("[Google STT] Transcription successful: confidence=%.2f, length=%d, duration=%v",
		confidence, len(transcript), time.Since(startTime))

	return &Result{
		Transcript:  transcript,
		Confidence:  confidence,
		Provider:    p.Name(),
		RawResponse: string(body),
	}, nil
}

// googleAudioConfig determines encoding and sample rate based on file extension
func googleAudioConfig(fileExt string) (string, int) {
	switch strings.ToLower(fileExt) {
	case ".wav":
		return "LINEAR16", 16000
	case ".mp3":
		return "MP3", 44100
	case ".ogg", ".webm":
		return "WEBM_OPUS", 48000
	case ".flac":
		return "FLAC", 44100
	default:
		return "LINEAR16", 16000
	}
}

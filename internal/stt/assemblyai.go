package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// AssemblyAIProvider implements STT using the AssemblyAI transcript API.
// A job is submitted with the public locator of the stored audio, then
// polled until it resolves. Identical audio submitted twice is transcribed
// twice: there is no caching and no retry beyond the poll loop itself.
type AssemblyAIProvider struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
}

// NewAssemblyAIProvider creates a new AssemblyAI STT provider
func NewAssemblyAIProvider(apiKey, baseURL string) *AssemblyAIProvider {
	return &AssemblyAIProvider{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: 90 * time.Second},
		pollInterval: 2 * time.Second,
	}
}

// Name returns the provider name
func (p *AssemblyAIProvider) Name() string {
	return "assemblyai"
}

// assemblyAIJob represents an AssemblyAI transcript resource
type assemblyAIJob struct {
	ID         string   `json:"id"`
	Status     string   `json:"status"` // queued, processing, completed, error
	Text       *string  `json:"text"`
	Confidence *float64 `json:"confidence"`
	Error      string   `json:"error,omitempty"`

	SentimentResults []struct {
		Text       string  `json:"text"`
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	} `json:"sentiment_analysis_results"`

	AutoHighlights struct {
		Results []struct {
			Text  string  `json:"text"`
			Count int     `json:"count"`
			Rank  float64 `json:"rank"`
		} `json:"results"`
	} `json:"auto_highlights_result"`
}

// Transcribe submits the stored audio locator to AssemblyAI and waits for
// the transcript job to resolve.
func (p *AssemblyAIProvider) Transcribe(ctx context.Context, audio Audio) (*Result, error) {
	startTime := time.Now()

	log.Printf("[AssemblyAI] Submitting transcript job for %s", audio.URL)

	payload, err := json.Marshal(map[string]any{
		"audio_url":          audio.URL,
		"sentiment_analysis": true,
		"auto_highlights":    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrProvider, err)
	}

	job, raw, err := p.do(ctx, http.MethodPost, p.baseURL+"/v2/transcript", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	// Poll until the job leaves the queue. The submit response may already
	// be terminal for trivial inputs.
	for job.Status != "completed" && job.Status != "error" {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrProvider, ctx.Err())
		case <-time.After(p.pollInterval):
		}

		job, raw, err = p.do(ctx, http.MethodGet, p.baseURL+"/v2/transcript/"+job.ID, nil)
		if err != nil {
			return nil, err
		}
	}

	if job.Status == "error" {
		log.Printf("[AssemblyAI] Job %s failed: %s", job.ID, job.Error)
		return nil, fmt.Errorf("%w: %s", ErrProvider, job.Error)
	}

	// Empty transcript means no speech was detected. That is a successful
	// outcome; downstream stages receive the empty text unchanged.
	transcript := ""
	if job.Text != nil {
		transcript = strings.TrimSpace(*job.Text)
	}
	confidence := 0.0
	if job.Confidence != nil {
		confidence = *job.Confidence
	}

	result := &Result{
		Transcript:  transcript,
		Confidence:  confidence,
		Provider:    p.Name(),
		RawResponse: raw,
	}
	for _, s := range job.SentimentResults {
		result.Sentiments = append(result.Sentiments, SentimentSpan{
			Text:       s.Text,
			Sentiment:  strings.ToLower(s.Sentiment),
			Confidence: s.Confidence,
		})
	}
	for _, h := range job.AutoHighlights.Results {
		result.Highlights = append(result.Highlights, Highlight{
			Text:  h.Text,
			Count: h.Count,
			Rank:  h.Rank,
		})
	}

	log.Printf("[AssemblyAI] Transcription successful: confidence=%.2f, length=%d, duration=%v",
		confidence, len(transcript), time.Since(startTime))

	return result, nil
}

// do performs one API call and decodes the transcript resource.
func (p *AssemblyAIProvider) do(ctx context.Context, method, url string, body io.Reader) (*assemblyAIJob, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: create request: %v", ErrProvider, err)
	}
	req.Header.Set("Authorization", p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read response body: %v", ErrProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[AssemblyAI] API error: Status %d, Body: %s", resp.StatusCode, string(raw))
		return nil, string(raw), fmt.Errorf("%w: API returned status %d: %s", ErrProvider, resp.StatusCode, string(raw))
	}

	var job assemblyAIJob
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Printf("[AssemblyAI] Failed to parse response. Raw body: %s", string(raw))
		return nil, string(raw), fmt.Errorf("%w: parse response: %v", ErrProvider, err)
	}

	return &job, string(raw), nil
}

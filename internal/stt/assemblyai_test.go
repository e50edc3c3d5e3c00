package stt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTranscriptServer fakes the AssemblyAI transcript API: the submit call
// returns a queued job, the first poll returns the given terminal resource.
func newTranscriptServer(t *testing.T, terminal map[string]any) (*httptest.Server, *[]map[string]any) {
	t.Helper()

	var submitted []map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad submit body: %v", err)
		}
		submitted = append(submitted, body)
		json.NewEncoder(w).Encode(map[string]any{"id": "t1", "status": "queued"})
	})
	mux.HandleFunc("GET /v2/transcript/t1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(terminal)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &submitted
}

func newTestProvider(url string) *AssemblyAIProvider {
	p := NewAssemblyAIProvider("test-key", url)
	p.pollInterval = time.Millisecond
	return p
}

func TestAssemblyAITranscribe_Completed(t *testing.T) {
	srv, submitted := newTranscriptServer(t, map[string]any{
		"id":         "t1",
		"status":     "completed",
		"text":       "We met three years ago at a conference.",
		"confidence": 0.93,
		"sentiment_analysis_results": []map[string]any{
			{"text": "We met three years ago at a conference.", "sentiment": "POSITIVE", "confidence": 0.88},
		},
		"auto_highlights_result": map[string]any{
			"results": []map[string]any{
				{"text": "conference", "count": 1, "rank": 0.7},
			},
		},
	})

	result, err := newTestProvider(srv.URL).Transcribe(context.Background(), Audio{URL: "http://host/uploads/a.webm"})
	if err != nil {
		t.Fatal(err)
	}

	if result.Transcript != "We met three years ago at a conference." {
		t.Errorf("unexpected transcript: %q", result.Transcript)
	}
	if result.Confidence != 0.93 {
		t.Errorf("unexpected confidence: %v", result.Confidence)
	}
	if len(result.Sentiments) != 1 || result.Sentiments[0].Sentiment != "positive" {
		t.Errorf("unexpected sentiments: %+v", result.Sentiments)
	}
	if len(result.Highlights) != 1 || result.Highlights[0].Text != "conference" {
		t.Errorf("unexpected highlights: %+v", result.Highlights)
	}
	if result.Provider != "assemblyai" {
		t.Errorf("unexpected provider: %s", result.Provider)
	}

	if len(*submitted) != 1 {
		t.Fatalf("expected 1 submit, got %d", len(*submitted))
	}
	body := (*submitted)[0]
	if body["audio_url"] != "http://host/uploads/a.webm" {
		t.Errorf("unexpected audio_url: %v", body["audio_url"])
	}
	if body["sentiment_analysis"] != true || body["auto_highlights"] != true {
		t.Errorf("metadata options not requested: %v", body)
	}
}

func TestAssemblyAITranscribe_EmptyTranscriptIsSuccess(t *testing.T) {
	srv, _ := newTranscriptServer(t, map[string]any{
		"id":     "t1",
		"status": "completed",
		"text":   nil,
	})

	result, err := newTestProvider(srv.URL).Transcribe(context.Background(), Audio{URL: "http://host/uploads/a.webm"})
	if err != nil {
		t.Fatalf("empty transcript must not fail: %v", err)
	}
	if result.Transcript != "" {
		t.Errorf("expected empty transcript, got %q", result.Transcript)
	}
}

func TestAssemblyAITranscribe_JobError(t *testing.T) {
	srv, _ := newTranscriptServer(t, map[string]any{
		"id":     "t1",
		"status": "error",
		"error":  "download failed",
	})

	_, err := newTestProvider(srv.URL).Transcribe(context.Background(), Audio{URL: "http://host/uploads/a.webm"})
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestAssemblyAITranscribe_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "bad api key"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestProvider(srv.URL).Transcribe(context.Background(), Audio{URL: "http://host/uploads/a.webm"})
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestAssemblyAITranscribe_ContextCanceledDuringPoll(t *testing.T) {
	// Job that never leaves the queue.
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "t1", "status": "queued"})
	})
	mux.HandleFunc("GET /v2/transcript/t1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "t1", "status": "processing"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestProvider(srv.URL).Transcribe(ctx, Audio{URL: "http://host/uploads/a.webm"})
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

package logbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"pulse/internal/model"
)

func testRecord(transcript string) model.ConversationRecord {
	return model.ConversationRecord{
		Timestamp:  "2026-08-31T12:00:00Z",
		Transcript: transcript,
		Analysis: model.SentimentAnalysis{
			Sentiment:  "positive",
			Confidence: 0.8,
			KeyThemes:  []string{"connection"},
		},
		AIResponse: "That sounds like a meaningful memory.",
	}
}

func TestAppend_OneParseableLineWithAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversations.log")
	lb := New(path)

	if err := lb.Append(testRecord("We met three years ago.")); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		lines++
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("log line is not valid JSON: %v", err)
		}
		for _, field := range []string{"timestamp", "transcript", "analysis", "aiResponse"} {
			if _, ok := obj[field]; !ok {
				t.Errorf("log line missing field %q", field)
			}
		}
	}
	if lines != 1 {
		t.Errorf("expected exactly 1 line, got %d", lines)
	}
}

func TestHistory_RoundTrip(t *testing.T) {
	lb := New(filepath.Join(t.TempDir(), "conversations.log"))

	for i := 0; i < 3; i++ {
		if err := lb.Append(testRecord(fmt.Sprintf("entry %d", i))); err != nil {
			t.Fatal(err)
		}
	}

	records, err := lb.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// Append order preserved
	for i, rec := range records {
		if rec.Transcript != fmt.Sprintf("entry %d", i) {
			t.Errorf("record %d out of order: %q", i, rec.Transcript)
		}
	}
	if records[0].Analysis.Sentiment != "positive" {
		t.Errorf("analysis not preserved: %+v", records[0].Analysis)
	}
}

func TestHistory_MissingFileIsEmpty(t *testing.T) {
	lb := New(filepath.Join(t.TempDir(), "nope.log"))

	records, err := lb.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestAppend_ConcurrentWritesSerialized(t *testing.T) {
	lb := New(filepath.Join(t.TempDir(), "conversations.log"))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := lb.Append(testRecord(fmt.Sprintf("entry %d", i))); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	records, err := lb.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != n {
		t.Errorf("expected %d records, got %d", n, len(records))
	}
}

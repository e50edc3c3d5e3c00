package logbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"pulse/internal/model"
)

// Logbook is the append-only conversation log: one JSON object per line,
// one line per completed request. Writes are serialized by the mutex; the
// file is the only state shared between requests.
type Logbook struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Logbook {
	return &Logbook{path: path}
}

// Append serializes the record and appends it with a trailing newline.
// Records are immutable once written.
func (l *Logbook) Append(rec model.ConversationRecord) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal conversation record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open conversation log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append conversation record: %w", err)
	}

	return nil
}

// History reads the log back in append order. A missing file is an empty
// history, not an error. Unparseable lines are skipped so one bad write
// cannot take down the conversation view.
func (l *Logbook) History() ([]model.ConversationRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open conversation log: %w", err)
	}
	defer f.Close()

	var records []model.ConversationRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec model.ConversationRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read conversation log: %w", err)
	}

	return records, nil
}

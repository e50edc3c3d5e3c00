package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrWrite indicates the byte store could not persist an upload (disk full,
// permission denied). The pipeline must not proceed to transcription on it.
var ErrWrite = errors.New("storage write failed")

// SavedAudio describes one persisted upload.
type SavedAudio struct {
	ID      string // freshly generated identifier, never reused
	Path    string // local filesystem path
	Locator string // fully-qualified URL the transcription provider fetches
	Size    int64
}

// Store persists uploaded audio to a flat directory and hands out locators
// built from the configured public base URL.
type Store struct {
	dir     string
	baseURL string
}

// New creates the upload directory if needed and returns a Store.
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create upload directory: %v", ErrWrite, err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveAudio writes the byte payload under a fresh uuid-keyed filename and
// returns its locator. Any byte sequence is accepted and stored as-is: no
// deduplication, no size limits, no format validation.
func (s *Store) SaveAudio(data []byte, mimeType string) (*SavedAudio, error) {
	id := uuid.New().String()
	filename := "audio-" + id + extForMIME(mimeType)
	dst := filepath.Join(s.dir, filename)

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return &SavedAudio{
		ID:      id,
		Path:    dst,
		Locator: s.baseURL + "/uploads/" + filename,
		Size:    int64(len(data)),
	}, nil
}

// Dir returns the directory static audio is served from.
func (s *Store) Dir() string {
	return s.dir
}

// extForMIME maps the declared MIME type to a file extension. Browser
// recorders send audio/webm; anything unrecognized keeps that default.
func extForMIME(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "audio/wav"), strings.HasPrefix(mimeType, "audio/x-wav"):
		return ".wav"
	case strings.HasPrefix(mimeType, "audio/mpeg"), strings.HasPrefix(mimeType, "audio/mp3"):
		return ".mp3"
	case strings.HasPrefix(mimeType, "audio/mp4"), strings.HasPrefix(mimeType, "audio/m4a"):
		return ".m4a"
	case strings.HasPrefix(mimeType, "audio/ogg"):
		return ".ogg"
	default:
		return ".webm"
	}
}

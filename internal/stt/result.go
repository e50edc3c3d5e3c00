package stt

import "errors"

// ErrProvider indicates the transcription provider returned an error status,
// timed out, or could not process the audio. An empty transcript is not an
// error: providers report it as success with empty text.
var ErrProvider = errors.New("transcription failed")

// SentimentSpan is a provider-computed sentiment annotation for one span of
// the transcript.
type SentimentSpan struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// Highlight is a provider-detected key phrase.
type Highlight struct {
	Text  string  `json:"text"`
	Count int     `json:"count"`
	Rank  float64 `json:"rank"`
}

// Result represents the result of a speech-to-text transcription
type Result struct {
	Transcript  string          // The transcribed text; may be empty if no speech was detected
	Confidence  float64         // Overall confidence (0.0-1.0), may be 0 if not provided
	Sentiments  []SentimentSpan // Provider sentiment metadata, if requested
	Highlights  []Highlight     // Provider key-phrase metadata, if requested
	Provider    string          // The provider used
	RawResponse string          // Raw response from the provider (for debugging/logging)
}

package transcriber

import (
	"context"
	"fmt"
)

// Transcriber converts an audio file into translated English text plus the
// detected source language.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// ErrSourceNotFound is returned when the audio file does not exist. Checked
// before any external tool is invoked.
var ErrSourceNotFound = fmt.Errorf("audio source not found")

// Result is the outcome of one transcription.
type Result struct {
	Text         string
	Language     string
	LanguageName string
	WordCount    int
}

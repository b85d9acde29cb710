package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reqgen/audiodoc/internal/cleaner"
)

// languageNames maps Whisper language codes to display names. Unknown codes
// pass through as-is so the real detection is always surfaced.
var languageNames = map[string]string{
	"hi": "Hindi (हिन्दी)",
	"en": "English",
	"mr": "Marathi (मराठी)",
}

// whisperOutput mirrors the whisper.cpp JSON output file.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe converts the audio to 16kHz mono WAV, runs whisper.cpp in
// translate mode with deterministic decoding, and returns the cleaned text
// with the detected source language.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, audioPath)
	}

	t.logger.Info(ctx, "Audio: %s (%.2f MB)", filepath.Base(audioPath), float64(info.Size())/(1024*1024))

	wavPath, err := t.convertAudio(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	out, err := t.runWhisper(ctx, wavPath)
	if err != nil {
		return nil, err
	}

	var segments []string
	for _, seg := range out.Transcription {
		if s := strings.TrimSpace(seg.Text); s != "" {
			segments = append(segments, s)
		}
	}
	text := strings.Join(segments, " ")

	// Decode parameters catch most loops, but tail-end repetition still
	// slips through on noisy audio.
	text, repeated := cleaner.TrimRepetition(text)
	if repeated != "" {
		t.logger.Warn(ctx, "Trimmed repetitive tail from transcript: %q", repeated)
	}

	lang := out.Result.Language
	if lang == "" {
		lang = "unknown"
	}
	name, ok := languageNames[lang]
	if !ok {
		name = lang
	}

	wordCount := len(strings.Fields(text))
	t.logger.Info(ctx, "Transcription complete: language=%s words=%d", name, wordCount)

	return &Result{
		Text:         text,
		Language:     lang,
		LanguageName: name,
		WordCount:    wordCount,
	}, nil
}

// convertAudio converts any supported container to 16kHz mono PCM WAV, the
// input format whisper.cpp expects.
func (t *implTranscriber) convertAudio(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_temp.wav"

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	return wavPath, nil
}

// runWhisper invokes whisper.cpp in translate mode and parses its JSON
// output file. Temperature 0 with beam search keeps the decode
// deterministic; the no-speech and logprob thresholds suppress
// hallucinated segments on silence.
func (t *implTranscriber) runWhisper(ctx context.Context, wavPath string) (*whisperOutput, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", wavPath,
		"-oj",
		"-l", "auto",
		"-tr",
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bs", strconv.Itoa(t.cfg.BeamSize),
		"-bo", strconv.Itoa(t.cfg.BestOf),
		"--temperature", "0.0",
		"-nth", "0.6",
		"-lpt", "-1.0",
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	return &out, nil
}

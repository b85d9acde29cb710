package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/logger"
)

type mockExecutor struct {
	commands  [][]string
	whisperJS string
	failOn    string
}

func (m *mockExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	m.commands = append(m.commands, append([]string{name}, args...))

	if m.failOn != "" && name == m.failOn {
		return "", errors.New("exit status 1")
	}

	switch name {
	case "ffmpeg":
		// Last argument is the output wav path.
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
	default:
		for i, a := range args {
			if a == "--output-file" {
				return "", os.WriteFile(args[i+1]+".json", []byte(m.whisperJS), 0644)
			}
		}
		return "", errors.New("no --output-file argument")
	}
}

func testWhisperConfig() config.WhisperConfig {
	return config.WhisperConfig{
		ModelPath:  "/models/ggml-large-v3.bin",
		BinaryPath: "whisper-cli",
		Threads:    8,
		BeamSize:   5,
		BestOf:     5,
	}
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribeSourceNotFound(t *testing.T) {
	exec := &mockExecutor{}
	tr := New(exec, testWhisperConfig(), logger.New("error"))

	_, err := tr.Transcribe(context.Background(), "/nope/missing.mp3")
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("error = %v, want ErrSourceNotFound", err)
	}
	if len(exec.commands) != 0 {
		t.Error("no external command should run for a missing source")
	}
}

func TestTranscribe(t *testing.T) {
	exec := &mockExecutor{whisperJS: `{
		"result": {"language": "hi"},
		"transcription": [
			{"text": " We discussed the budget."},
			{"text": " The deadline is next month."}
		]
	}`}
	tr := New(exec, testWhisperConfig(), logger.New("error"))

	res, err := tr.Transcribe(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if res.Text != "We discussed the budget. The deadline is next month." {
		t.Errorf("Text = %q", res.Text)
	}
	if res.Language != "hi" {
		t.Errorf("Language = %q, want hi", res.Language)
	}
	if res.LanguageName != "Hindi (हिन्दी)" {
		t.Errorf("LanguageName = %q", res.LanguageName)
	}
	if res.WordCount != 9 {
		t.Errorf("WordCount = %d, want 9", res.WordCount)
	}

	if len(exec.commands) != 2 {
		t.Fatalf("commands run = %d, want ffmpeg + whisper", len(exec.commands))
	}
	ffmpeg, whisper := exec.commands[0], exec.commands[1]
	if ffmpeg[0] != "ffmpeg" {
		t.Errorf("first command = %q, want ffmpeg", ffmpeg[0])
	}
	if whisper[0] != "whisper-cli" {
		t.Errorf("second command = %q, want whisper-cli", whisper[0])
	}
	joined := strings.Join(whisper, " ")
	for _, want := range []string{"-tr", "-l auto", "-bs 5", "-bo 5", "--temperature 0.0"} {
		if !strings.Contains(joined, want) {
			t.Errorf("whisper args missing %q: %s", want, joined)
		}
	}
}

func TestTranscribeUnknownLanguagePassthrough(t *testing.T) {
	exec := &mockExecutor{whisperJS: `{
		"result": {"language": "vi"},
		"transcription": [{"text": "Xin chao."}]
	}`}
	tr := New(exec, testWhisperConfig(), logger.New("error"))

	res, err := tr.Transcribe(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.Language != "vi" || res.LanguageName != "vi" {
		t.Errorf("language = %q/%q, want vi passthrough", res.Language, res.LanguageName)
	}
}

func TestTranscribeTrimsRepetitiveTail(t *testing.T) {
	exec := &mockExecutor{whisperJS: `{
		"result": {"language": "en"},
		"transcription": [
			{"text": "The plan is ready."},
			{"text": "Thank you."},
			{"text": "Thank you."},
			{"text": "Thank you."},
			{"text": "Thank you."}
		]
	}`}
	tr := New(exec, testWhisperConfig(), logger.New("error"))

	res, err := tr.Transcribe(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if strings.Count(res.Text, "Thank you") > 2 {
		t.Errorf("repetitive tail not trimmed: %q", res.Text)
	}
}

func TestTranscribeFfmpegFailure(t *testing.T) {
	exec := &mockExecutor{failOn: "ffmpeg"}
	tr := New(exec, testWhisperConfig(), logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), writeTempAudio(t)); err == nil {
		t.Error("ffmpeg failure should surface as an error")
	}
}

package cleaner

import (
	"strings"
	"testing"
)

func TestCleanTruncatesAtTrigger(t *testing.T) {
	c := New()

	text := "The team agreed on the rollout plan. This is a valid sentence. ## Exercise 1: do X"
	got, fired := c.Clean(text)

	want := "The team agreed on the rollout plan. This is a valid sentence."
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
	if fired == "" {
		t.Error("Clean() reported no trigger")
	}
}

func TestCleanEarliestTriggerWins(t *testing.T) {
	c := New()

	text := "Summary starts here. Question: what? Here is more text. ## Exercise"
	got, fired := c.Clean(text)

	if !strings.HasPrefix(fired, "Question") {
		t.Errorf("fired = %q, want the earliest trigger (Question:)", fired)
	}
	if strings.Contains(got, "Question") || strings.Contains(got, "##") {
		t.Errorf("Clean() = %q, still contains trigger text", got)
	}
}

func TestCleanRepairsTrailingSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"drops incomplete tail",
			"First point made. Second point made. And then the model trail",
			"First point made. Second point made.",
		},
		{
			"keeps complete text",
			"Everything here is complete. Nothing to repair.",
			"Everything here is complete. Nothing to repair.",
		},
		{
			"single incomplete sentence kept as-is",
			"no terminal punctuation at all",
			"no terminal punctuation at all",
		},
		{
			"collapses whitespace",
			"Spaced   out.\n\nVery   much.",
			"Spaced out. Very much.",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := c.Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	c := New()

	inputs := []string{
		"The plan was approved. Work starts Monday. ## Question for you",
		"One complete sentence. And a dangling fragment without",
		"Lots   of \t whitespace.   Everywhere.",
		"",
		"Plain text with no terminator",
	}

	for _, in := range inputs {
		once, _ := c.Clean(in)
		twice, fired := c.Clean(once)
		if twice != once {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
		if fired != "" {
			t.Errorf("second pass fired trigger %q on %q", fired, once)
		}
	}
}

func TestCleanNeverGrows(t *testing.T) {
	c := New()
	inputs := []string{
		"Valid sentence. ## Exercise 1: do X",
		"Short. Tail fragment here",
		"a. b. c. d",
	}
	for _, in := range inputs {
		got, _ := c.Clean(in)
		if len(got) > len(in) {
			t.Errorf("Clean(%q) grew: %d > %d", in, len(got), len(in))
		}
	}
}

func TestCleanCustomTriggers(t *testing.T) {
	c := New("FOOTER:")
	got, fired := c.Clean("Real content here. FOOTER: boilerplate")
	if got != "Real content here." {
		t.Errorf("Clean() = %q", got)
	}
	if fired != "FOOTER:" {
		t.Errorf("fired = %q, want FOOTER:", fired)
	}
}

func TestTrimRepetition(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		want         string
		wantRepeated bool
	}{
		{
			"three identical sentences truncated at second",
			"Thanks for watching. Thanks for watching. Thanks for watching. Thanks for watching.",
			"Thanks for watching. Thanks for watching.",
			true,
		},
		{
			"two repeats kept",
			"Hello there. Hello there. Goodbye now.",
			"Hello there. Hello there. Goodbye now.",
			false,
		},
		{
			"loop mid-text drops the tail",
			"Intro first. Loop here. Loop here. Loop here. Never reached.",
			"Intro first. Loop here. Loop here.",
			true,
		},
		{
			"clean text untouched",
			"One sentence. Another sentence. A third sentence.",
			"One sentence. Another sentence. A third sentence.",
			false,
		},
		{
			"short text untouched",
			"Only one sentence here.",
			"Only one sentence here.",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, repeated := TrimRepetition(tt.in)
			if got != tt.want {
				t.Errorf("TrimRepetition() = %q, want %q", got, tt.want)
			}
			if (repeated != "") != tt.wantRepeated {
				t.Errorf("repeated = %q, wantRepeated = %v", repeated, tt.wantRepeated)
			}
		})
	}
}

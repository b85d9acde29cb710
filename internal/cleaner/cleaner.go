package cleaner

import (
	"regexp"
	"strings"
)

// DefaultTriggers are literal substrings that mark the point where a
// generation model drifted off the summarization task: exercise prompts,
// quiz scaffolding, meta-instructions and second-person task language.
// Order matters only for reporting; truncation always happens at the
// earliest match in the text.
var DefaultTriggers = []string{
	"## Exercise",
	"##Exercise",
	"Exercise 1:",
	"Exercise 2:",
	"## Question",
	"##Question",
	"Question:",
	"Answer:",
	"A)",
	"B)",
	"C)",
	"D)",
	"##Your task",
	"##",
	"**Rewrite",
	"Rewrite",
	"Your task",
	"after that",
	"create some",
	"usecase",
	"Instruction:",
	"Task:",
	"Note:",
	"Example:",
	"Following:",
	"Step 1:",
	"First,",
	"Here is",
	"Here's",
	"What were",
	"Why is it",
	"How do you",
}

var (
	reWhitespace    = regexp.MustCompile(`\s+`)
	reTerminatorRun = regexp.MustCompile(`[.!?]+`)
	reSentenceSplit = regexp.MustCompile(`([.!?]+)\s+`)
)

// Cleaner bounds generated text to the summarization task by truncating at
// drift triggers and repairing incomplete trailing sentences. It never
// operates on source transcripts; see TrimRepetition for those.
type Cleaner struct {
	triggers []string
}

// New returns a Cleaner using the given trigger list, or DefaultTriggers
// when none are supplied.
func New(triggers ...string) *Cleaner {
	if len(triggers) == 0 {
		triggers = DefaultTriggers
	}
	return &Cleaner{triggers: triggers}
}

// Clean truncates text at the earliest drift trigger, drops a trailing
// incomplete sentence, and collapses whitespace runs. It returns the cleaned
// text and the trigger that fired, if any. Output is never longer than the
// input and, whenever at least one complete sentence existed, ends in
// terminal punctuation.
func (c *Cleaner) Clean(text string) (cleaned string, fired string) {
	earliest := len(text)
	for _, trigger := range c.triggers {
		if pos := strings.Index(text, trigger); pos != -1 && pos < earliest {
			earliest = pos
			fired = trigger
		}
	}
	if fired != "" {
		text = strings.TrimSpace(text[:earliest])
	}

	text = repairTrailingSentence(text)
	text = strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
	return text, fired
}

// repairTrailingSentence drops a final incomplete sentence, rejoining the
// complete ones with a closing period. If that would remove all content the
// text is returned untouched.
func repairTrailingSentence(text string) string {
	if text == "" {
		return text
	}
	last := text[len(text)-1]
	if last == '.' || last == '!' || last == '?' {
		return text
	}

	sentences := reTerminatorRun.Split(text, -1)
	if len(sentences) < 2 {
		return text
	}
	return strings.Join(sentences[:len(sentences)-1], ".") + "."
}

// TrimRepetition is the transcription-side safety net for decoder loops:
// when three consecutive identical sentences are found, the text is
// truncated after the second repeat. Sentence equality is exact string match
// post-trim. The repeated sentence is returned for logging; it is empty when
// no loop was found.
func TrimRepetition(text string) (trimmed string, repeated string) {
	marked := reSentenceSplit.ReplaceAllString(text, "$1\x00")
	sentences := strings.Split(marked, "\x00")
	if len(sentences) < 3 {
		return text, ""
	}

	var kept []string
	for i, sent := range sentences {
		if i > 1 {
			s := strings.TrimSpace(sent)
			if s != "" && s == strings.TrimSpace(sentences[i-1]) && s == strings.TrimSpace(sentences[i-2]) {
				repeated = s
				break
			}
		}
		kept = append(kept, sent)
	}
	if repeated == "" {
		return text, ""
	}
	return strings.TrimSpace(strings.Join(kept, " ")), repeated
}

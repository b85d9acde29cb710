package chunker

import (
	"regexp"
	"strings"
)

// Chunk is a contiguous sub-span of the input text, processed independently
// during length-bounded generation.
type Chunk struct {
	Index     int
	Text      string
	WordCount int
}

var reSentenceEnd = regexp.MustCompile(`([.!?]+)\s+`)

// SplitWords partitions the word sequence of text into consecutive groups of
// size words each; the final chunk may be shorter. Joining the chunk texts
// with spaces reproduces the whitespace-normalized input exactly.
func SplitWords(text string, size int) []Chunk {
	if size <= 0 {
		size = 400
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, (len(words)+size-1)/size)
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, Chunk{
			Index:     len(chunks),
			Text:      strings.Join(words[i:end], " "),
			WordCount: end - i,
		})
	}

	return chunks
}

// SplitParagraphs accumulates paragraphs (text separated by blank lines) into
// chunks of at most budget words. A single paragraph that alone exceeds the
// budget is further split along sentence boundaries with the same
// accumulate-until-budget rule; an indivisible sentence longer than the
// budget is kept whole.
func SplitParagraphs(text string, budget int) []Chunk {
	if budget <= 0 {
		budget = 1500
	}

	paragraphs := strings.Split(text, "\n\n")

	var groups []string
	var current []string
	currentWords := 0

	for _, para := range paragraphs {
		paraWords := len(strings.Fields(para))
		if currentWords+paraWords > budget && len(current) > 0 {
			groups = append(groups, strings.Join(current, "\n\n"))
			current = []string{para}
			currentWords = paraWords
		} else {
			current = append(current, para)
			currentWords += paraWords
		}
	}
	if len(current) > 0 {
		groups = append(groups, strings.Join(current, "\n\n"))
	}

	var chunks []Chunk
	for _, g := range groups {
		if len(strings.Fields(g)) > budget {
			for _, sub := range splitBySentences(g, budget) {
				chunks = appendChunk(chunks, sub)
			}
			continue
		}
		chunks = appendChunk(chunks, g)
	}

	return chunks
}

// splitBySentences applies the accumulate-until-budget rule over sentences.
func splitBySentences(text string, budget int) []string {
	sentences := splitSentences(text)

	var out []string
	var current []string
	currentWords := 0

	for _, sent := range sentences {
		sentWords := len(strings.Fields(sent))
		if currentWords+sentWords > budget && len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = []string{sent}
			currentWords = sentWords
		} else {
			current = append(current, sent)
			currentWords += sentWords
		}
	}
	if len(current) > 0 {
		out = append(out, strings.Join(current, " "))
	}

	return out
}

// splitSentences splits text after runs of sentence terminators, keeping the
// terminators attached to their sentence.
func splitSentences(text string) []string {
	marked := reSentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")

	var sentences []string
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}

func appendChunk(chunks []Chunk, text string) []Chunk {
	wc := len(strings.Fields(text))
	if wc == 0 {
		return chunks
	}
	return append(chunks, Chunk{
		Index:     len(chunks),
		Text:      text,
		WordCount: wc,
	})
}

package policy

import "math"

// Strategy names a summarization aggressiveness profile.
type Strategy string

const (
	StrategyUltraConcise  Strategy = "ultra_concise"
	StrategyConcise       Strategy = "concise"
	StrategyBalanced      Strategy = "balanced"
	StrategyDetailed      Strategy = "detailed"
	StrategyComprehensive Strategy = "comprehensive"
	StrategyHybrid        Strategy = "hybrid"
)

type strategyParams struct {
	BaseRatio   float64
	MinWords    int
	MaxWords    int
	Description string
}

var strategyTable = map[Strategy]strategyParams{
	StrategyUltraConcise:  {BaseRatio: 0.12, MinWords: 12, MaxWords: 60, Description: "Single sentence summaries"},
	StrategyConcise:       {BaseRatio: 0.20, MinWords: 20, MaxWords: 100, Description: "Brief, punchy summaries"},
	StrategyBalanced:      {BaseRatio: 0.30, MinWords: 30, MaxWords: 180, Description: "Balanced detail and brevity"},
	StrategyDetailed:      {BaseRatio: 0.45, MinWords: 50, MaxWords: 300, Description: "Comprehensive coverage"},
	StrategyComprehensive: {BaseRatio: 0.60, MinWords: 80, MaxWords: 450, Description: "Extensive detail"},
	StrategyHybrid:        {BaseRatio: 0.525, MinWords: 65, MaxWords: 375, Description: "Hybrid: detailed + comprehensive"},
}

// ParseStrategy maps a raw strategy name to a known Strategy.
// Unknown names fall back to balanced.
func ParseStrategy(name string) Strategy {
	s := Strategy(name)
	if _, ok := strategyTable[s]; !ok {
		return StrategyBalanced
	}
	return s
}

// SummaryConfig holds the target length bounds for one generation call.
// Token budgets approximate sub-word tokenization overhead at 1.5x words.
type SummaryConfig struct {
	Strategy    Strategy
	MinWords    int
	MaxWords    int
	MinTokens   int
	MaxTokens   int
	Ratio       float64
	Description string
}

// Compute derives adaptive summary length bounds from the input word count
// and the requested strategy. The effective compression ratio depends on the
// input length band: very short inputs keep most of their content, very long
// inputs are compressed harder than the strategy's base ratio.
//
// Every returned config keeps MinWords >= 8, MinWords <= MaxWords, and
// MaxWords inside the strategy's [MinWords, MaxWords] envelope. MinWords sits
// at least 8 below MaxWords whenever the envelope leaves room; for near-empty
// input under the tightest strategies the 8-word floor wins and the gap
// narrows.
func Compute(wordCount int, strategy Strategy) SummaryConfig {
	params, ok := strategyTable[strategy]
	if !ok {
		strategy = StrategyBalanced
		params = strategyTable[StrategyBalanced]
	}

	wc := float64(wordCount)
	var maxWords, minWords int
	var ratio float64

	switch {
	case wordCount < 40:
		maxWords = maxInt(params.MinWords, int(wc*0.85))
		minWords = maxInt(8, int(wc*0.50))
		ratio = 0.85
	case wordCount < 120:
		maxWords = maxInt(params.MinWords, int(wc*0.65))
		minWords = maxInt(12, int(wc*0.35))
		ratio = 0.65
	case wordCount < 250:
		maxWords = int(wc * 0.50)
		minWords = int(wc * 0.25)
		ratio = 0.50
	case wordCount < 600:
		maxWords = int(wc * params.BaseRatio)
		minWords = int(wc * (params.BaseRatio * 0.45))
		ratio = params.BaseRatio
	case wordCount < 1500:
		maxWords = int(wc * (params.BaseRatio * 0.95))
		minWords = int(wc * (params.BaseRatio * 0.40))
		ratio = params.BaseRatio * 0.95
	case wordCount < 4000:
		maxWords = int(wc * (params.BaseRatio * 0.85))
		minWords = int(wc * (params.BaseRatio * 0.35))
		ratio = params.BaseRatio * 0.85
	default:
		maxWords = int(wc * (params.BaseRatio * 0.75))
		minWords = int(wc * (params.BaseRatio * 0.30))
		ratio = params.BaseRatio * 0.75
	}

	maxWords = minInt(maxWords, params.MaxWords)
	maxWords = maxInt(maxWords, params.MinWords)
	minWords = minInt(minWords, maxWords-8)
	minWords = maxInt(minWords, 8)

	return SummaryConfig{
		Strategy:    strategy,
		MinWords:    minWords,
		MaxWords:    maxWords,
		MinTokens:   tokensFor(minWords),
		MaxTokens:   tokensFor(maxWords),
		Ratio:       ratio,
		Description: params.Description,
	}
}

// ComputeMeetingRange derives the global summary word range for the meeting
// pipeline. Compression loosens as transcripts get longer, the range is kept
// at least 50 words wide, and the ceiling is capped at 1500 words.
func ComputeMeetingRange(wordCount int) (minWords, maxWords int) {
	var minRatio, maxRatio float64
	switch {
	case wordCount < 500:
		minRatio, maxRatio = 0.40, 0.50
	case wordCount < 2000:
		minRatio, maxRatio = 0.30, 0.40
	default:
		minRatio, maxRatio = 0.25, 0.35
	}

	minWords = maxInt(100, int(float64(wordCount)*minRatio))
	maxWords = maxInt(200, int(float64(wordCount)*maxRatio))

	if maxWords-minWords < 50 {
		maxWords = minWords + 100
	}
	if maxWords > 1500 {
		maxWords = 1500
		minWords = minInt(minWords, 1200)
	}

	return minWords, maxWords
}

func tokensFor(words int) int {
	return int(math.Round(float64(words) * 1.5))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

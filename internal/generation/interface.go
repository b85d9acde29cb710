package generation

import (
	"context"
	"fmt"
)

// Service generates text from a prompt. Implementations wrap a hosted model
// behind a uniform decode-parameter surface; backends apply the parameters
// they support and ignore the rest.
type Service interface {
	Generate(ctx context.Context, prompt string, p Params) (string, error)
}

// ErrGenerationFailed wraps backend failures after all retries are spent.
var ErrGenerationFailed = fmt.Errorf("generation failed")

// Params are decode parameters for one generation call. Token counts bound
// the output length, beams trade speed for quality on backends that search.
type Params struct {
	MinTokens   int
	MaxTokens   int
	NumBeams    int
	Temperature float32
	TopP        float32
}

// BeamsForQuality maps the user-facing quality knob to a beam width.
// Unknown values get the medium setting.
func BeamsForQuality(quality string) int {
	switch quality {
	case "fast":
		return 2
	case "high":
		return 6
	case "best":
		return 10
	default:
		return 4
	}
}

package processor

import "context"

// Processor defines the interface for batch audio processing operations
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}

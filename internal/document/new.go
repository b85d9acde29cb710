package document

import "time"

type implAssembler struct {
	now func() time.Time
}

// New creates a new Assembler instance.
func New() Assembler {
	return &implAssembler{now: time.Now}
}

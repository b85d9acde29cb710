package document

import "github.com/reqgen/audiodoc/internal/extractor"

// Assembler renders templated business documents from a summary, extracted
// structured info and caller metadata. Rendering is pure: no generation
// calls, deterministic given its inputs and the clock.
type Assembler interface {
	Assemble(docType Type, summary string, info *extractor.StructuredInfo, metadata map[string]string) (*Generated, error)
}

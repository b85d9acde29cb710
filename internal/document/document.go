package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/reqgen/audiodoc/internal/extractor"
)

// Type identifies the document template.
type Type string

const (
	TypeBRD           Type = "brd"
	TypePurchaseOrder Type = "po"
)

// ErrUnknownType is returned for document types outside {brd, po}.
var ErrUnknownType = fmt.Errorf("unknown document type")

// ParseType validates a raw document type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeBRD, TypePurchaseOrder:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Section is one labeled block of a rendered document.
type Section struct {
	Title string
	Body  string
}

// Generated is a final rendered document. Immutable once returned.
type Generated struct {
	Type     Type
	Title    string
	Content  string
	Filename string
	Sections []Section
}

// WordCount reports the number of whitespace-separated words in the
// rendered content.
func (g *Generated) WordCount() int {
	return len(strings.Fields(g.Content))
}

const ruleLine = "================================================================================"

// Assemble renders the requested document from the summary, structured info
// and metadata. Buckets are deduplicated (order-preserving) before use and
// every metadata field falls back to its default, so assembly never fails on
// empty inputs — only on an unknown document type.
func (a *implAssembler) Assemble(docType Type, summary string, info *extractor.StructuredInfo, metadata map[string]string) (*Generated, error) {
	if _, err := ParseType(string(docType)); err != nil {
		return nil, err
	}

	if info == nil {
		info = &extractor.StructuredInfo{}
	}
	info.Dedupe()

	now := a.now()
	md := MetadataFromMap(metadata, now)

	var title string
	var sections []Section
	switch docType {
	case TypeBRD:
		title = "BUSINESS REQUIREMENTS DOCUMENT (BRD)"
		sections = buildBRD(summary, info, md)
	case TypePurchaseOrder:
		title = "PURCHASE ORDER"
		sections = buildPurchaseOrder(summary, info, md)
	}

	return &Generated{
		Type:     docType,
		Title:    title,
		Content:  renderText(title, sections, now),
		Filename: documentFilename(docType, md.ProjectName, now),
		Sections: sections,
	}, nil
}

// renderText lays the sections out as a plain-text document with rule lines
// between them, the way the generated files are downloaded and archived.
func renderText(title string, sections []Section, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(ruleLine + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(ruleLine + "\n")

	for _, s := range sections {
		sb.WriteString("\n" + s.Title + "\n")
		sb.WriteString(ruleLine + "\n\n")
		sb.WriteString(strings.TrimRight(s.Body, "\n") + "\n")
	}

	sb.WriteString("\n" + ruleLine + "\n")
	sb.WriteString("Document generated from audio analysis on: " + now.Format("2006-01-02 15:04:05") + "\n")
	sb.WriteString(ruleLine + "\n")

	return sb.String()
}

func documentFilename(docType Type, projectName string, now time.Time) string {
	slug := strings.ReplaceAll(strings.TrimSpace(projectName), " ", "_")
	if slug == "" {
		slug = "document"
	}
	return fmt.Sprintf("%s_%s_%s.txt", docType, slug, now.Format("20060102_150405"))
}

// bulletList renders one bullet per item, or the fallback sentence when the
// bucket is empty.
func bulletList(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback + "\n"
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("• " + item + "\n")
	}
	return sb.String()
}

func capItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

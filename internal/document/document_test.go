package document

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/reqgen/audiodoc/internal/extractor"
)

func fixedAssembler() *implAssembler {
	return &implAssembler{now: func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}}
}

func TestAssembleBRDEmptyInputs(t *testing.T) {
	a := fixedAssembler()

	g, err := a.Assemble(TypeBRD, "Short discussion about the project.", nil, nil)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	headers := []string{
		"DOCUMENT INFORMATION",
		"1. EXECUTIVE SUMMARY",
		"2. BUSINESS OBJECTIVES",
		"3. BUSINESS REQUIREMENTS",
		"4. FUNCTIONAL REQUIREMENTS",
		"5. STAKEHOLDERS",
		"6. KEY DECISIONS",
		"7. SCOPE",
		"8. TIMELINE & MILESTONES",
		"9. BUDGET & RESOURCES",
		"10. RISKS & ASSUMPTIONS",
		"11. DEPENDENCIES",
		"12. SUCCESS CRITERIA",
		"13. APPROVAL",
	}
	for _, h := range headers {
		if !strings.Contains(g.Content, h) {
			t.Errorf("content missing section header %q", h)
		}
	}

	for _, s := range g.Sections {
		if strings.TrimSpace(s.Body) == "" {
			t.Errorf("section %q has empty body", s.Title)
		}
	}

	if !strings.Contains(g.Content, "Audio Extracted Project") {
		t.Error("default project name not applied")
	}
	if !strings.Contains(g.Content, "2025-03-14") {
		t.Error("default date not derived from clock")
	}
}

func TestAssembleBRDWithInfo(t *testing.T) {
	a := fixedAssembler()

	info := &extractor.StructuredInfo{
		Requirements: []string{"We must deliver the API by March", "The system should scale to 10k users"},
		Technical:    []string{"The database will be PostgreSQL"},
		Decisions:    []string{"We agreed to use a phased rollout"},
	}

	g, err := a.Assemble(TypeBRD, "summary", info, map[string]string{"project_name": "Phoenix CRM"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, want := range []string{
		"OBJ-1: We must deliver the API by March",
		"BR-001: We must deliver the API by March",
		"BR-002: The system should scale to 10k users",
		"FR-001: The database will be PostgreSQL",
		"D1. We agreed to use a phased rollout",
		"Phoenix CRM",
	} {
		if !strings.Contains(g.Content, want) {
			t.Errorf("content missing %q", want)
		}
	}
}

func TestAssemblePurchaseOrder(t *testing.T) {
	a := fixedAssembler()

	info := &extractor.StructuredInfo{
		Deliverables: []string{"We will provide the completed integration module for review"},
		Budget:       []string{"The budget is $5000"},
	}

	g, err := a.Assemble(TypePurchaseOrder, "Vendor call notes.", info, nil)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if !strings.Contains(g.Content, "PO-20250314-0930") {
		t.Error("PO number not derived from clock")
	}
	if !strings.Contains(g.Content, "VENDOR INFORMATION") {
		t.Error("vendor section missing")
	}
	// Item description column truncates at 42 characters.
	if !strings.Contains(g.Content, "We will provide the completed integration ") &&
		!strings.Contains(g.Content, "We will provide the completed integration") {
		t.Error("line item missing")
	}
	if strings.Contains(g.Content, "for review") {
		t.Error("line item description not truncated to 42 chars")
	}
	if !strings.Contains(g.Content, "The budget is $5000") {
		t.Error("cost details from budget bucket missing")
	}
}

func TestLineItemTableCap(t *testing.T) {
	var items []string
	for i := 0; i < 20; i++ {
		items = append(items, fmt.Sprintf("Deliverable number %d", i+1))
	}
	table := lineItemTable(&extractor.StructuredInfo{Deliverables: items})

	if !strings.Contains(table, "Deliverable number 15") {
		t.Error("item 15 should be present")
	}
	if strings.Contains(table, "Deliverable number 16") {
		t.Error("items past 15 should be dropped")
	}
}

func TestLineItemTableMultibyteTruncation(t *testing.T) {
	// Byte 42 falls inside the first rupee sign; truncation must not
	// leave a torn rune behind.
	item := strings.Repeat("a", 41) + "₹₹₹₹₹"
	table := lineItemTable(&extractor.StructuredInfo{Deliverables: []string{item}})

	if !utf8.ValidString(table) {
		t.Fatal("line item table contains invalid UTF-8")
	}
	want := strings.Repeat("a", 41) + "₹"
	if !strings.Contains(table, want) {
		t.Errorf("truncated description should keep 42 runes, want substring %q", want)
	}
	if strings.Contains(table, "₹₹") {
		t.Error("description should be cut after the 42nd rune")
	}
}

func TestLineItemTableFallbacks(t *testing.T) {
	// Requirements stand in when deliverables are empty.
	table := lineItemTable(&extractor.StructuredInfo{Requirements: []string{"We need two licenses"}})
	if !strings.Contains(table, "We need two licenses") {
		t.Error("requirements should fill line items when deliverables are empty")
	}

	// Both empty renders the placeholder row.
	table = lineItemTable(&extractor.StructuredInfo{})
	if !strings.Contains(table, "Items/Services as per audio discussion") {
		t.Error("placeholder row missing for empty buckets")
	}
}

func TestAssembleUnknownType(t *testing.T) {
	a := fixedAssembler()

	_, err := a.Assemble(Type("invoice"), "text", nil, nil)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Assemble() error = %v, want ErrUnknownType", err)
	}
}

func TestDocumentFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := documentFilename(TypeBRD, "Phoenix CRM Rollout", now)
	want := "brd_Phoenix_CRM_Rollout_20250314_093000.txt"
	if got != want {
		t.Errorf("documentFilename() = %q, want %q", got, want)
	}

	got = documentFilename(TypePurchaseOrder, "  ", now)
	if got != "po_document_20250314_093000.txt" {
		t.Errorf("documentFilename() blank project = %q", got)
	}
}

func TestMetadataFromMapDefaults(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	md := MetadataFromMap(nil, now)
	if md.ProjectName != "Audio Extracted Project" {
		t.Errorf("ProjectName = %q", md.ProjectName)
	}
	if md.Date != "2025-03-14" {
		t.Errorf("Date = %q", md.Date)
	}
	if md.PONumber != "PO-20250314-0930" {
		t.Errorf("PONumber = %q", md.PONumber)
	}
	if md.PaymentTerms != "Net 30 Days" {
		t.Errorf("PaymentTerms = %q", md.PaymentTerms)
	}
	if md.TaxRate != "18" {
		t.Errorf("TaxRate = %q", md.TaxRate)
	}

	md = MetadataFromMap(map[string]string{"author": "R. Iyer"}, now)
	if md.BuyerContact != "R. Iyer" {
		t.Errorf("BuyerContact should fall back to author, got %q", md.BuyerContact)
	}

	md = MetadataFromMap(map[string]string{"project_name": ""}, now)
	if md.ProjectName != "Audio Extracted Project" {
		t.Error("empty string value should fall back to default")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"brd", TypeBRD, false},
		{"po", TypePurchaseOrder, false},
		{"", "", true},
		{"BRD", "", true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

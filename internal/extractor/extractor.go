package extractor

import (
	"regexp"
	"strings"
)

// StructuredInfo holds sentences classified into nine semantic buckets.
// Classification is non-exclusive: a sentence may appear in several buckets
// or in none. Bucket order is insertion order from a single left-to-right
// scan; consumers should treat contents as sets and call Dedupe before
// rendering.
type StructuredInfo struct {
	Requirements []string
	Decisions    []string
	ActionItems  []string
	Timeline     []string
	Budget       []string
	Risks        []string
	Technical    []string
	Deliverables []string
	Stakeholders []string
}

// rule binds one bucket to its keyword set. Matching is case-insensitive
// substring containment.
type rule struct {
	bucket   string
	keywords []string
	target   func(*StructuredInfo) *[]string
}

var rules = []rule{
	{"requirements", []string{"require", "need", "must", "should", "shall", "expect"},
		func(i *StructuredInfo) *[]string { return &i.Requirements }},
	{"decisions", []string{"decide", "agreed", "approved", "confirmed", "finalized"},
		func(i *StructuredInfo) *[]string { return &i.Decisions }},
	{"action_items", []string{"will", "task", "action", "assign", "responsible", "owner"},
		func(i *StructuredInfo) *[]string { return &i.ActionItems }},
	{"timeline", []string{"deadline", "timeline", "date", "week", "month", "schedule", "due"},
		func(i *StructuredInfo) *[]string { return &i.Timeline }},
	{"budget", []string{"cost", "budget", "price", "payment", "fund", "expense", "$", "rs", "rupee", "inr"},
		func(i *StructuredInfo) *[]string { return &i.Budget }},
	{"risks", []string{"risk", "concern", "issue", "challenge", "problem", "blocker"},
		func(i *StructuredInfo) *[]string { return &i.Risks }},
	{"technical", []string{"technical", "technology", "system", "platform", "api", "database", "infrastructure"},
		func(i *StructuredInfo) *[]string { return &i.Technical }},
	{"deliverables", []string{"deliver", "output", "product", "feature", "component", "milestone"},
		func(i *StructuredInfo) *[]string { return &i.Deliverables }},
	{"stakeholders", []string{"stakeholder", "team", "department", "client", "customer", "vendor"},
		func(i *StructuredInfo) *[]string { return &i.Stakeholders }},
}

var reSentenceTerm = regexp.MustCompile(`[.!?]+`)

// Extract splits text into sentences and classifies each against the rule
// table. Deterministic: identical input yields identical output.
func Extract(text string) *StructuredInfo {
	info := &StructuredInfo{}

	for _, sentence := range reSentenceTerm.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)

		for _, r := range rules {
			for _, kw := range r.keywords {
				if strings.Contains(lower, kw) {
					target := r.target(info)
					*target = append(*target, sentence)
					break
				}
			}
		}
	}

	return info
}

// Merge appends the other info's buckets after this one's. Used for hybrid
// extraction (summary first, then raw transcript).
func (i *StructuredInfo) Merge(other *StructuredInfo) {
	if other == nil {
		return
	}
	i.Requirements = append(i.Requirements, other.Requirements...)
	i.Decisions = append(i.Decisions, other.Decisions...)
	i.ActionItems = append(i.ActionItems, other.ActionItems...)
	i.Timeline = append(i.Timeline, other.Timeline...)
	i.Budget = append(i.Budget, other.Budget...)
	i.Risks = append(i.Risks, other.Risks...)
	i.Technical = append(i.Technical, other.Technical...)
	i.Deliverables = append(i.Deliverables, other.Deliverables...)
	i.Stakeholders = append(i.Stakeholders, other.Stakeholders...)
}

// Dedupe removes duplicate sentences from every bucket, keeping first
// occurrences so document sections preserve transcript order.
func (i *StructuredInfo) Dedupe() {
	i.Requirements = dedupe(i.Requirements)
	i.Decisions = dedupe(i.Decisions)
	i.ActionItems = dedupe(i.ActionItems)
	i.Timeline = dedupe(i.Timeline)
	i.Budget = dedupe(i.Budget)
	i.Risks = dedupe(i.Risks)
	i.Technical = dedupe(i.Technical)
	i.Deliverables = dedupe(i.Deliverables)
	i.Stakeholders = dedupe(i.Stakeholders)
}

func dedupe(sentences []string) []string {
	if len(sentences) < 2 {
		return sentences
	}
	seen := make(map[string]bool, len(sentences))
	out := sentences[:0]
	for _, s := range sentences {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

package document

import (
	"fmt"
	"strings"

	"github.com/reqgen/audiodoc/internal/extractor"
)

// buildBRD produces the fixed 13-section Business Requirements Document
// layout, preceded by the document information block. Empty buckets render a
// generic fallback so every section is always present.
func buildBRD(summary string, info *extractor.StructuredInfo, md Metadata) []Section {
	sections := make([]Section, 0, 14)

	sections = append(sections, Section{
		Title: "DOCUMENT INFORMATION",
		Body: fmt.Sprintf(
			"Project Name:     %s\n"+
				"Document Date:    %s\n"+
				"Version:          %s\n"+
				"Prepared By:      %s\n"+
				"Status:           %s\n"+
				"Department:       %s\n"+
				"Sponsor:          %s\n",
			md.ProjectName, md.Date, md.Version, md.Author, md.Status, md.Department, md.Sponsor),
	})

	sections = append(sections, Section{
		Title: "1. EXECUTIVE SUMMARY",
		Body:  summary + "\n",
	})

	var objectives strings.Builder
	objectives.WriteString("Based on the audio discussion, the key business objectives are:\n\n")
	if len(info.Requirements) > 0 {
		for i, req := range capItems(info.Requirements, 5) {
			fmt.Fprintf(&objectives, "OBJ-%d: %s\n", i+1, req)
		}
	} else {
		objectives.WriteString("Business objectives to be refined based on stakeholder review.\n")
	}
	sections = append(sections, Section{Title: "2. BUSINESS OBJECTIVES", Body: objectives.String()})

	var reqs strings.Builder
	if len(info.Requirements) > 0 {
		for i, req := range info.Requirements {
			fmt.Fprintf(&reqs, "BR-%03d: %s\n", i+1, req)
			fmt.Fprintf(&reqs, "         Priority: %s\n", md.Priority)
			reqs.WriteString("         Status: New\n")
			reqs.WriteString("         Source: Audio Discussion\n\n")
		}
	} else {
		reqs.WriteString("Business requirements extracted from executive summary above.\n")
	}
	sections = append(sections, Section{Title: "3. BUSINESS REQUIREMENTS", Body: reqs.String()})

	var funcs strings.Builder
	if len(info.Technical) > 0 {
		for i, tech := range info.Technical {
			fmt.Fprintf(&funcs, "FR-%03d: %s\n", i+1, tech)
			fmt.Fprintf(&funcs, "         Category: %s\n", md.Category)
			fmt.Fprintf(&funcs, "         Priority: %s\n\n", md.Priority)
		}
	} else {
		funcs.WriteString("Functional requirements to be detailed in technical specification.\n")
	}
	sections = append(sections, Section{Title: "4. FUNCTIONAL REQUIREMENTS", Body: funcs.String()})

	var stake strings.Builder
	if len(info.Stakeholders) > 0 {
		stake.WriteString("Stakeholders identified in discussion:\n\n")
		stake.WriteString(bulletList(info.Stakeholders, ""))
	} else {
		stake.WriteString("Primary Stakeholders:\n")
		fmt.Fprintf(&stake, "• Project Sponsor: %s\n", md.Sponsor)
		fmt.Fprintf(&stake, "• Business Owner: %s\n", md.BusinessOwner)
		fmt.Fprintf(&stake, "• Project Manager: %s\n", md.ProjectManager)
		fmt.Fprintf(&stake, "• End Users: %s\n", md.EndUsers)
	}
	sections = append(sections, Section{Title: "5. STAKEHOLDERS", Body: stake.String()})

	var decisions strings.Builder
	if len(info.Decisions) > 0 {
		for i, d := range info.Decisions {
			fmt.Fprintf(&decisions, "D%d. %s\n", i+1, d)
			fmt.Fprintf(&decisions, "    Date: %s\n", md.Date)
			fmt.Fprintf(&decisions, "    Decision Maker: %s\n\n", md.DecisionMaker)
		}
	} else {
		decisions.WriteString("Key decisions documented in executive summary.\n")
	}
	sections = append(sections, Section{Title: "6. KEY DECISIONS", Body: decisions.String()})

	var scope strings.Builder
	scope.WriteString("In Scope:\n")
	scope.WriteString(bulletList(info.Deliverables, "• As defined in requirements above"))
	scope.WriteString("\nOut of Scope:\n")
	scope.WriteString("• Items not mentioned in the audio discussion\n")
	scope.WriteString("• Features to be considered for future phases\n")
	sections = append(sections, Section{Title: "7. SCOPE", Body: scope.String()})

	var timeline strings.Builder
	if len(info.Timeline) > 0 {
		timeline.WriteString(bulletList(info.Timeline, ""))
	} else {
		timeline.WriteString("Project Timeline:\n")
		fmt.Fprintf(&timeline, "• Requirements Phase: %s\n", md.ReqPhase)
		fmt.Fprintf(&timeline, "• Design Phase: %s\n", md.DesignPhase)
		fmt.Fprintf(&timeline, "• Development Phase: %s\n", md.DevPhase)
		fmt.Fprintf(&timeline, "• Testing Phase: %s\n", md.TestPhase)
		fmt.Fprintf(&timeline, "• Deployment: %s\n", md.Deployment)
	}
	sections = append(sections, Section{Title: "8. TIMELINE & MILESTONES", Body: timeline.String()})

	var budget strings.Builder
	if len(info.Budget) > 0 {
		budget.WriteString(bulletList(info.Budget, ""))
	} else {
		fmt.Fprintf(&budget, "Estimated Budget: %s\n\n", md.Budget)
		budget.WriteString("Resource Requirements:\n")
		fmt.Fprintf(&budget, "• Team Size: %s\n", md.TeamSize)
		fmt.Fprintf(&budget, "• Duration: %s\n", md.Duration)
		fmt.Fprintf(&budget, "• External Resources: %s\n", md.ExternalResources)
	}
	sections = append(sections, Section{Title: "9. BUDGET & RESOURCES", Body: budget.String()})

	var risks strings.Builder
	risks.WriteString("Risks Identified:\n")
	if len(info.Risks) > 0 {
		for i, r := range info.Risks {
			fmt.Fprintf(&risks, "%d. %s\n", i+1, r)
			fmt.Fprintf(&risks, "   Impact: %s\n", md.RiskImpact)
			risks.WriteString("   Mitigation: To be defined\n\n")
		}
	} else {
		risks.WriteString("Risk assessment to be conducted during project planning.\n")
	}
	risks.WriteString("\nAssumptions:\n")
	risks.WriteString("• Resources will be available as per project timeline\n")
	risks.WriteString("• Stakeholder approvals will be obtained in timely manner\n")
	risks.WriteString("• Technical infrastructure is available and ready\n")
	sections = append(sections, Section{Title: "10. RISKS & ASSUMPTIONS", Body: risks.String()})

	sections = append(sections, Section{
		Title: "11. DEPENDENCIES",
		Body: "• Dependencies identified in audio discussion\n" +
			"• External systems and integrations as required\n" +
			"• Third-party services and vendors as needed\n",
	})

	sections = append(sections, Section{
		Title: "12. SUCCESS CRITERIA",
		Body: "The project will be considered successful when:\n\n" +
			"• All business requirements are met\n" +
			"• System is deployed and operational\n" +
			"• User acceptance testing is completed successfully\n" +
			"• Stakeholders sign off on deliverables\n",
	})

	sections = append(sections, Section{
		Title: "13. APPROVAL",
		Body: "This document has been reviewed and approved by:\n\n" +
			"Business Owner: _____________________    Date: ___________\n\n" +
			"Signature:      _____________________\n\n" +
			"Project Sponsor: ____________________    Date: ___________\n\n" +
			"Signature:       ____________________\n",
	})

	return sections
}

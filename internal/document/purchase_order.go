package document

import (
	"fmt"
	"strings"

	"github.com/reqgen/audiodoc/internal/extractor"
)

const maxLineItems = 15

// buildPurchaseOrder renders the purchase order template. Line items come
// from deliverables, falling back to requirements, capped at 15 rows with
// item text flattened and truncated to fit the table column.
func buildPurchaseOrder(summary string, info *extractor.StructuredInfo, md Metadata) []Section {
	sections := make([]Section, 0, 12)

	sections = append(sections, Section{
		Title: "ORDER DETAILS",
		Body: fmt.Sprintf(
			"PO Number:        %s\n"+
				"Date:             %s\n"+
				"Status:           %s\n",
			md.PONumber, md.Date, md.Status),
	})

	sections = append(sections, Section{
		Title: "VENDOR INFORMATION",
		Body: fmt.Sprintf(
			"Vendor Name:      %s\n"+
				"Vendor Code:      %s\n"+
				"Address:          %s\n"+
				"City/State/ZIP:   %s\n"+
				"Contact Person:   %s\n"+
				"Phone:            %s\n"+
				"Email:            %s\n"+
				"GST/Tax ID:       %s\n",
			md.VendorName, md.VendorCode, md.VendorAddress, md.VendorLocation,
			md.VendorContact, md.VendorPhone, md.VendorEmail, md.VendorGST),
	})

	sections = append(sections, Section{
		Title: "BUYER INFORMATION",
		Body: fmt.Sprintf(
			"Company Name:     %s\n"+
				"Department:       %s\n"+
				"Address:          %s\n"+
				"City/State/ZIP:   %s\n"+
				"Contact Person:   %s\n"+
				"Phone:            %s\n"+
				"Email:            %s\n",
			md.CompanyName, md.Department, md.BuyerAddress, md.BuyerLocation,
			md.BuyerContact, md.BuyerPhone, md.BuyerEmail),
	})

	sections = append(sections, Section{
		Title: "PURCHASE ORDER SUMMARY",
		Body:  "Based on Audio Discussion:\n" + summary + "\n",
	})

	sections = append(sections, Section{
		Title: "DETAILED LINE ITEMS",
		Body:  lineItemTable(info),
	})

	var cost strings.Builder
	if len(info.Budget) > 0 {
		cost.WriteString("Cost Details (from audio discussion):\n\n")
		for _, b := range info.Budget {
			cost.WriteString("• " + b + "\n")
		}
		cost.WriteString("\n")
	}
	fmt.Fprintf(&cost,
		"Subtotal:                                                    %s\n"+
			"Discount (if any):                                           %s\n"+
			"                                                             ___________\n"+
			"Subtotal after Discount:                                     %s\n\n"+
			"Tax/GST (%s%%):                                               %s\n"+
			"Shipping & Handling:                                         %s\n"+
			"Other Charges:                                               %s\n"+
			"                                                             ___________\n"+
			"TOTAL AMOUNT:                                                %s\n"+
			"                                                             ===========\n",
		md.Subtotal, md.Discount, md.SubtotalAfterDiscount, md.TaxRate,
		md.TaxAmount, md.Shipping, md.OtherCharges, md.TotalAmount)
	sections = append(sections, Section{Title: "COST BREAKDOWN", Body: cost.String()})

	sections = append(sections, Section{
		Title: "TERMS & CONDITIONS",
		Body: fmt.Sprintf(
			"Payment Terms:         %s\n"+
				"Delivery Terms:        %s\n"+
				"Expected Delivery:     %s\n"+
				"Delivery Address:      %s\n"+
				"Shipping Method:       %s\n"+
				"Warranty:              %s\n"+
				"Return Policy:         %s\n",
			md.PaymentTerms, md.DeliveryTerms, md.DeliveryDate, md.DeliveryAddress,
			md.ShippingMethod, md.Warranty, md.ReturnPolicy),
	})

	schedule := md.PaymentSchedule
	if schedule == "" {
		schedule = fmt.Sprintf(
			"• Advance Payment: %s on PO confirmation\n"+
				"• Balance Payment: %s %s\n",
			md.AdvancePayment, md.BalancePayment, md.PaymentTerms)
	}
	sections = append(sections, Section{Title: "PAYMENT SCHEDULE", Body: schedule})

	var special strings.Builder
	if len(info.Requirements) > 0 {
		special.WriteString("Requirements from audio discussion:\n\n")
		for _, req := range capItems(info.Requirements, 5) {
			special.WriteString("• " + req + "\n")
		}
	} else {
		special.WriteString("As per audio discussion and mutual agreement.\n")
	}
	sections = append(sections, Section{Title: "SPECIAL INSTRUCTIONS", Body: special.String()})

	var notes strings.Builder
	if len(info.ActionItems) > 0 {
		notes.WriteString("Action Items:\n\n")
		for _, action := range capItems(info.ActionItems, 5) {
			notes.WriteString("• " + action + "\n")
		}
	} else {
		notes.WriteString("None.\n")
	}
	sections = append(sections, Section{Title: "ADDITIONAL NOTES", Body: notes.String()})

	sections = append(sections, Section{
		Title: "VALIDITY",
		Body:  fmt.Sprintf("This Purchase Order is valid until: %s\n", md.ValidityDate),
	})

	sections = append(sections, Section{
		Title: "APPROVAL & AUTHORIZATION",
		Body: fmt.Sprintf(
			"Requested By:\n\n"+
				"Name:      %s\n"+
				"Title:     %s\n"+
				"Date:      %s\n"+
				"Signature: _____________________\n\n\n"+
				"Approved By:\n\n"+
				"Name:      %s\n"+
				"Title:     %s\n"+
				"Date:      ___________\n"+
				"Signature: _____________________\n\n\n"+
				"Finance Approval:\n\n"+
				"Name:      %s\n"+
				"Title:     Finance Manager\n"+
				"Date:      ___________\n"+
				"Signature: _____________________\n",
			md.RequestedBy, md.RequestedTitle, md.Date,
			md.ApprovedBy, md.ApprovedTitle, md.FinanceApproval),
	})

	sections = append(sections, Section{
		Title: "VENDOR ACCEPTANCE",
		Body: fmt.Sprintf(
			"We accept the terms and conditions of this Purchase Order:\n\n"+
				"Vendor Name:    %s\n"+
				"Authorized By:  _____________________\n"+
				"Title:          _____________________\n"+
				"Date:           ___________\n"+
				"Signature:      _____________________\n"+
				"Company Seal:\n\n"+
				"IMPORTANT NOTES:\n"+
				"- This is a preliminary document extracted from audio discussion\n"+
				"- Please review and verify all details before finalization\n"+
				"- TBD items must be filled in before final approval\n"+
				"- Consult legal/procurement team for compliance review\n",
			md.VendorName),
	})

	return sections
}

// lineItemTable renders the fixed-width line item table. Deliverables take
// precedence over requirements as the item source.
func lineItemTable(info *extractor.StructuredInfo) string {
	items := info.Deliverables
	if len(items) == 0 {
		items = info.Requirements
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5s %-45s %-8s %-10s %-12s %-12s\n", "Item", "Description", "Qty", "Unit", "Price", "Total")
	sb.WriteString(strings.Repeat("-", 100) + "\n")

	if len(items) == 0 {
		fmt.Fprintf(&sb, "%-5d %-45s %-8s %-10s %-12s %-12s\n",
			1, "Items/Services as per audio discussion", "TBD", "Each", "TBD", "TBD")
		return sb.String()
	}

	for i, item := range capItems(items, maxLineItems) {
		desc := strings.ReplaceAll(item, "\n", " ")
		if r := []rune(desc); len(r) > 42 {
			desc = string(r[:42])
		}
		fmt.Fprintf(&sb, "%-5d %-45s %-8s %-10s %-12s %-12s\n", i+1, desc, "TBD", "Each", "TBD", "TBD")
	}
	return sb.String()
}

package document

import "time"

// Metadata enumerates every recognized document metadata key together with
// its default. Callers supply an open string map; every missing field takes
// its default here, so document generation never fails on absent metadata.
type Metadata struct {
	// Shared
	ProjectName string
	Date        string
	Version     string
	Author      string
	Status      string
	Department  string
	Sponsor     string
	Priority    string

	// BRD
	Category          string
	BusinessOwner     string
	ProjectManager    string
	EndUsers          string
	DecisionMaker     string
	ReqPhase          string
	DesignPhase       string
	DevPhase          string
	TestPhase         string
	Deployment        string
	Budget            string
	TeamSize          string
	Duration          string
	ExternalResources string
	RiskImpact        string

	// Purchase Order
	PONumber              string
	VendorName            string
	VendorCode            string
	VendorAddress         string
	VendorLocation        string
	VendorContact         string
	VendorPhone           string
	VendorEmail           string
	VendorGST             string
	CompanyName           string
	BuyerAddress          string
	BuyerLocation         string
	BuyerContact          string
	BuyerPhone            string
	BuyerEmail            string
	Subtotal              string
	Discount              string
	SubtotalAfterDiscount string
	TaxRate               string
	TaxAmount             string
	Shipping              string
	OtherCharges          string
	TotalAmount           string
	PaymentTerms          string
	DeliveryTerms         string
	DeliveryDate          string
	DeliveryAddress       string
	ShippingMethod        string
	Warranty              string
	ReturnPolicy          string
	PaymentSchedule       string
	AdvancePayment        string
	BalancePayment        string
	ValidityDate          string
	RequestedBy           string
	RequestedTitle        string
	ApprovedBy            string
	ApprovedTitle         string
	FinanceApproval       string
}

// MetadataFromMap resolves the open metadata map into a fully defaulted
// Metadata value. The clock is injected so rendering stays deterministic.
func MetadataFromMap(values map[string]string, now time.Time) Metadata {
	pick := func(key, def string) string {
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return def
	}

	today := now.Format("2006-01-02")

	return Metadata{
		ProjectName: pick("project_name", "Audio Extracted Project"),
		Date:        pick("date", today),
		Version:     pick("version", "1.0"),
		Author:      pick("author", "Audio Analysis System"),
		Status:      pick("status", "Draft - Extracted from Audio"),
		Department:  pick("department", "TBD"),
		Sponsor:     pick("sponsor", "TBD"),
		Priority:    pick("priority", "Medium"),

		Category:          pick("category", "Technical"),
		BusinessOwner:     pick("business_owner", "TBD"),
		ProjectManager:    pick("pm", "TBD"),
		EndUsers:          pick("end_users", "As discussed in audio"),
		DecisionMaker:     pick("decision_maker", "TBD"),
		ReqPhase:          pick("req_phase", "TBD"),
		DesignPhase:       pick("design_phase", "TBD"),
		DevPhase:          pick("dev_phase", "TBD"),
		TestPhase:         pick("test_phase", "TBD"),
		Deployment:        pick("deployment", "TBD"),
		Budget:            pick("budget", "To be determined"),
		TeamSize:          pick("team_size", "TBD"),
		Duration:          pick("duration", "TBD"),
		ExternalResources: pick("external_resources", "TBD"),
		RiskImpact:        pick("risk_impact", "Medium"),

		PONumber:              pick("po_number", "PO-"+now.Format("20060102-1504")),
		VendorName:            pick("vendor_name", "TBD - As per audio discussion"),
		VendorCode:            pick("vendor_code", "TBD"),
		VendorAddress:         pick("vendor_address", "TBD"),
		VendorLocation:        pick("vendor_location", "TBD"),
		VendorContact:         pick("vendor_contact", "TBD"),
		VendorPhone:           pick("vendor_phone", "TBD"),
		VendorEmail:           pick("vendor_email", "TBD"),
		VendorGST:             pick("vendor_gst", "TBD"),
		CompanyName:           pick("company_name", "Your Company Ltd."),
		BuyerAddress:          pick("buyer_address", "TBD"),
		BuyerLocation:         pick("buyer_location", "TBD"),
		BuyerContact:          pick("buyer_contact", pick("author", "TBD")),
		BuyerPhone:            pick("buyer_phone", "TBD"),
		BuyerEmail:            pick("buyer_email", "TBD"),
		Subtotal:              pick("subtotal", "TBD"),
		Discount:              pick("discount", "0.00"),
		SubtotalAfterDiscount: pick("subtotal_after_discount", "TBD"),
		TaxRate:               pick("tax_rate", "18"),
		TaxAmount:             pick("tax_amount", "TBD"),
		Shipping:              pick("shipping", "TBD"),
		OtherCharges:          pick("other_charges", "0.00"),
		TotalAmount:           pick("total_amount", "TBD"),
		PaymentTerms:          pick("payment_terms", "Net 30 Days"),
		DeliveryTerms:         pick("delivery_terms", "FOB Destination"),
		DeliveryDate:          pick("delivery_date", "TBD - As per discussion"),
		DeliveryAddress:       pick("delivery_address", "As per buyer information above"),
		ShippingMethod:        pick("shipping_method", "Standard"),
		Warranty:              pick("warranty", "As per vendor terms"),
		ReturnPolicy:          pick("return_policy", "As per vendor terms"),
		PaymentSchedule:       pick("payment_schedule", ""),
		AdvancePayment:        pick("advance_payment", "0%"),
		BalancePayment:        pick("balance_payment", "100%"),
		ValidityDate:          pick("validity_date", "TBD"),
		RequestedBy:           pick("requested_by", "TBD"),
		RequestedTitle:        pick("requested_title", "TBD"),
		ApprovedBy:            pick("approved_by", "TBD"),
		ApprovedTitle:         pick("approved_title", "Manager/Director"),
		FinanceApproval:       pick("finance_approval", "TBD"),
	}
}

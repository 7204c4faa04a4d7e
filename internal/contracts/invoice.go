package contracts

// InvoiceStatus enumerates the invoice processing lifecycle.
type InvoiceStatus string

const (
	InvoiceIngested          InvoiceStatus = "ingested"
	InvoiceExtracted         InvoiceStatus = "extracted"
	InvoiceComplianceChecked InvoiceStatus = "compliance_checked"
	InvoiceClassified        InvoiceStatus = "classified"
	InvoiceMatched           InvoiceStatus = "matched"
	InvoiceApproved          InvoiceStatus = "approved"
	InvoicePaid              InvoiceStatus = "paid"
	InvoiceRejected          InvoiceStatus = "rejected"
	InvoiceFlaggedForReview  InvoiceStatus = "flagged_for_review"
)

// InvoiceSource is the channel an invoice arrived through.
type InvoiceSource string

const (
	SourceEmail   InvoiceSource = "email"
	SourceUpload  InvoiceSource = "upload"
	SourceAPI     InvoiceSource = "api"
	SourceNetwork InvoiceSource = "network"
)

// InvoiceLineItem is one billed line. The three amounts are checked independently.
type InvoiceLineItem struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"required,gt=0"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
}

// CreateInvoice is the create contract for invoices.
type CreateInvoice struct {
	InvoiceNumber string            `json:"invoiceNumber" validate:"required,max=100"`
	VendorName    string            `json:"vendorName" validate:"required,max=200"`
	SupplierID    *string           `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	TotalAmount   float64           `json:"totalAmount" validate:"required,gt=0"`
	Subtotal      *float64          `json:"subtotal,omitempty" validate:"omitempty,gte=0"`
	TaxAmount     *float64          `json:"taxAmount,omitempty" validate:"omitempty,gte=0"`
	Currency      Currency          `json:"currency" default:"USD" validate:"currency"`
	InvoiceDate   *string           `json:"invoiceDate,omitempty" validate:"omitempty,isodatetime"`
	DueDate       *string           `json:"dueDate,omitempty" validate:"omitempty,isodatetime"`
	PONumber      *string           `json:"poNumber,omitempty" validate:"omitempty,max=100"`
	Description   *string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	SourceType    InvoiceSource     `json:"sourceType" default:"upload" validate:"oneof=email upload api network"`
	LineItems     []InvoiceLineItem `json:"lineItems,omitempty" validate:"omitempty,dive"`
}

// UpdateInvoice extends the create fields with the status transition, which cannot be set
// at creation.
type UpdateInvoice struct {
	CreateInvoice
	Status *InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=ingested extracted compliance_checked classified matched approved paid rejected flagged_for_review"`
}

// InvoiceQuery filters the invoice list.
type InvoiceQuery struct {
	Search     *string        `json:"search,omitempty"`
	Status     *InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=ingested extracted compliance_checked classified matched approved paid rejected flagged_for_review"`
	SupplierID *string        `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	SourceType *InvoiceSource `json:"sourceType,omitempty" validate:"omitempty,oneof=email upload api network"`
	MinAmount  *float64       `json:"minAmount,omitempty" validate:"omitempty,gte=0"`
	MaxAmount  *float64       `json:"maxAmount,omitempty" validate:"omitempty,gte=0"`
	From       *string        `json:"from,omitempty"`
	To         *string        `json:"to,omitempty"`
	SortBy     string         `json:"sortBy" default:"createdAt" validate:"oneof=createdAt invoiceDate dueDate totalAmount vendorName invoiceNumber"`
	Pagination
}

var (
	CreateInvoiceSchema = Object[CreateInvoice]()
	UpdateInvoiceSchema = PartialWithAtLeastOne[UpdateInvoice]()
	InvoiceQuerySchema  = Query[InvoiceQuery]()

	invoiceContract = Contract{
		Name:       "invoice",
		Create:     CreateInvoiceSchema,
		Update:     UpdateInvoiceSchema,
		UpdateKind: UpdatePartial,
		Query:      InvoiceQuerySchema,
	}
)

package contracts

// PaymentMethod enumerates supported payment rails.
type PaymentMethod string

const (
	PaymentACH         PaymentMethod = "ACH"
	PaymentWire        PaymentMethod = "WIRE"
	PaymentVirtualCard PaymentMethod = "VIRTUAL_CARD"
	PaymentCheck       PaymentMethod = "CHECK"
	PaymentSEPA        PaymentMethod = "SEPA"
	PaymentBACS        PaymentMethod = "BACS"
)

// RiskLevel grades suppliers and alerts.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// CreateSupplier is the create contract for suppliers.
type CreateSupplier struct {
	Name                   string        `json:"name" validate:"required,max=200"`
	Email                  *string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone                  *string       `json:"phone,omitempty" validate:"omitempty,max=50"`
	TaxID                  *string       `json:"taxId,omitempty" validate:"omitempty,max=50"`
	Address                *string       `json:"address,omitempty" validate:"omitempty,max=500"`
	Country                *string       `json:"country,omitempty" validate:"omitempty,len=2"`
	Category               *string       `json:"category,omitempty" validate:"omitempty,max=100"`
	PaymentTerms           int           `json:"paymentTerms" default:"30" validate:"gte=0,lte=365"`
	Currency               Currency      `json:"currency" default:"USD" validate:"currency"`
	PreferredPaymentMethod PaymentMethod `json:"preferredPaymentMethod" default:"ACH" validate:"oneof=ACH WIRE VIRTUAL_CARD CHECK SEPA BACS"`
	RiskLevel              *RiskLevel    `json:"riskLevel,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	IsActive               bool          `json:"isActive" default:"true"`
}

// SupplierQuery filters the supplier list.
type SupplierQuery struct {
	Search    *string    `json:"search,omitempty"`
	Category  *string    `json:"category,omitempty"`
	RiskLevel *RiskLevel `json:"riskLevel,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	IsActive  *bool      `json:"isActive,omitempty"`
	SortBy    string     `json:"sortBy" default:"createdAt" validate:"oneof=name createdAt riskLevel"`
	Pagination
}

var (
	CreateSupplierSchema = Object[CreateSupplier]()
	UpdateSupplierSchema = PartialWithAtLeastOne[CreateSupplier]()
	SupplierQuerySchema  = Query[SupplierQuery]()

	supplierContract = Contract{
		Name:       "supplier",
		Create:     CreateSupplierSchema,
		Update:     UpdateSupplierSchema,
		UpdateKind: UpdatePartial,
		Query:      SupplierQuerySchema,
	}
)

// PurchaseOrderStatus enumerates purchase order states.
type PurchaseOrderStatus string

const (
	PODraft           PurchaseOrderStatus = "DRAFT"
	POPendingApproval PurchaseOrderStatus = "PENDING_APPROVAL"
	POApproved        PurchaseOrderStatus = "APPROVED"
	POSent            PurchaseOrderStatus = "SENT"
	POReceived        PurchaseOrderStatus = "RECEIVED"
	POClosed          PurchaseOrderStatus = "CLOSED"
	POCancelled       PurchaseOrderStatus = "CANCELLED"
)

// PurchaseOrderLine is one ordered line.
type PurchaseOrderLine struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"required,gt=0"`
}

// CreatePurchaseOrder is the create contract for purchase orders.
type CreatePurchaseOrder struct {
	PONumber             string              `json:"poNumber" validate:"required,max=100"`
	SupplierID           string              `json:"supplierId" validate:"required,uuid"`
	TotalAmount          float64             `json:"totalAmount" validate:"required,gt=0"`
	Currency             Currency            `json:"currency" default:"USD" validate:"currency"`
	OrderDate            *string             `json:"orderDate,omitempty" validate:"omitempty,isodatetime"`
	ExpectedDeliveryDate *string             `json:"expectedDeliveryDate,omitempty" validate:"omitempty,isodatetime"`
	Description          *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status               PurchaseOrderStatus `json:"status" default:"DRAFT" validate:"oneof=DRAFT PENDING_APPROVAL APPROVED SENT RECEIVED CLOSED CANCELLED"`
	LineItems            []PurchaseOrderLine `json:"lineItems,omitempty" validate:"omitempty,dive"`
}

// PurchaseOrderQuery filters the purchase order list.
type PurchaseOrderQuery struct {
	Search     *string              `json:"search,omitempty"`
	Status     *PurchaseOrderStatus `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED SENT RECEIVED CLOSED CANCELLED"`
	SupplierID *string              `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	MinAmount  *float64             `json:"minAmount,omitempty" validate:"omitempty,gte=0"`
	MaxAmount  *float64             `json:"maxAmount,omitempty" validate:"omitempty,gte=0"`
	From       *string              `json:"from,omitempty"`
	To         *string              `json:"to,omitempty"`
	SortBy     string               `json:"sortBy" default:"createdAt" validate:"oneof=createdAt poNumber totalAmount orderDate"`
	Pagination
}

var (
	CreatePurchaseOrderSchema = Object[CreatePurchaseOrder]()
	UpdatePurchaseOrderSchema = PartialWithAtLeastOne[CreatePurchaseOrder]()
	PurchaseOrderQuerySchema  = Query[PurchaseOrderQuery]()

	purchaseOrderContract = Contract{
		Name:       "purchase_order",
		Create:     CreatePurchaseOrderSchema,
		Update:     UpdatePurchaseOrderSchema,
		UpdateKind: UpdatePartial,
		Query:      PurchaseOrderQuerySchema,
	}
)

// ContractStatus enumerates supplier contract states.
type ContractStatus string

const (
	ContractDraft      ContractStatus = "DRAFT"
	ContractActive     ContractStatus = "ACTIVE"
	ContractExpiring   ContractStatus = "EXPIRING"
	ContractExpired    ContractStatus = "EXPIRED"
	ContractTerminated ContractStatus = "TERMINATED"
)

// CreateContract is the create contract for supplier contracts.
type CreateContract struct {
	SupplierID        string         `json:"supplierId" validate:"required,uuid"`
	Title             string         `json:"title" validate:"required,max=200"`
	Value             float64        `json:"value" validate:"required,gt=0"`
	Currency          Currency       `json:"currency" default:"USD" validate:"currency"`
	StartDate         string         `json:"startDate" validate:"required,isodatetime"`
	EndDate           string         `json:"endDate" validate:"required,isodatetime"`
	Description       *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status            ContractStatus `json:"status" default:"DRAFT" validate:"oneof=DRAFT ACTIVE EXPIRING EXPIRED TERMINATED"`
	AutoRenew         bool           `json:"autoRenew" default:"false"`
	RenewalNoticeDays *int           `json:"renewalNoticeDays,omitempty" validate:"omitempty,gte=0"`
	DocumentURL       *string        `json:"documentUrl,omitempty" validate:"omitempty,url"`
}

// ContractQuery filters the contract list.
type ContractQuery struct {
	Search     *string         `json:"search,omitempty"`
	Status     *ContractStatus `json:"status,omitempty" validate:"omitempty,oneof=DRAFT ACTIVE EXPIRING EXPIRED TERMINATED"`
	SupplierID *string         `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	From       *string         `json:"from,omitempty"`
	To         *string         `json:"to,omitempty"`
	SortBy     string          `json:"sortBy" default:"createdAt" validate:"oneof=createdAt endDate value title"`
	Pagination
}

var (
	CreateContractSchema = Object[CreateContract]()
	UpdateContractSchema = PartialWithAtLeastOne[CreateContract]()
	ContractQuerySchema  = Query[ContractQuery]()

	contractContract = Contract{
		Name:       "contract",
		Create:     CreateContractSchema,
		Update:     UpdateContractSchema,
		UpdateKind: UpdatePartial,
		Query:      ContractQuerySchema,
	}
)

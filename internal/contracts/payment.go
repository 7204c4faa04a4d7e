package contracts

// PaymentBatchStatus enumerates payment batch states.
type PaymentBatchStatus string

const (
	BatchPending    PaymentBatchStatus = "PENDING"
	BatchProcessing PaymentBatchStatus = "PROCESSING"
	BatchCompleted  PaymentBatchStatus = "COMPLETED"
	BatchFailed     PaymentBatchStatus = "FAILED"
)

// CreatePaymentBatch groups approved invoices into one payment run.
type CreatePaymentBatch struct {
	Name          *string       `json:"name,omitempty" validate:"omitempty,max=200"`
	InvoiceIDs    []string      `json:"invoiceIds" validate:"required,min=1,dive,uuid"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=ACH WIRE VIRTUAL_CARD CHECK SEPA BACS"`
	Currency      Currency      `json:"currency" default:"USD" validate:"currency"`
	ScheduledDate *string       `json:"scheduledDate,omitempty" validate:"omitempty,isodatetime"`
	Notes         *string       `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdatePaymentBatch only moves a batch between states; totals and members are fixed once
// the batch exists.
type UpdatePaymentBatch struct {
	Status PaymentBatchStatus `json:"status" validate:"required,oneof=PENDING PROCESSING COMPLETED FAILED"`
}

// PaymentBatchQuery filters the payment batch list.
type PaymentBatchQuery struct {
	Status        *PaymentBatchStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING PROCESSING COMPLETED FAILED"`
	PaymentMethod *PaymentMethod      `json:"paymentMethod,omitempty" validate:"omitempty,oneof=ACH WIRE VIRTUAL_CARD CHECK SEPA BACS"`
	From          *string             `json:"from,omitempty"`
	To            *string             `json:"to,omitempty"`
	SortBy        string              `json:"sortBy" default:"createdAt" validate:"oneof=createdAt scheduledDate totalAmount"`
	Pagination
}

var (
	CreatePaymentBatchSchema = Object[CreatePaymentBatch]()
	UpdatePaymentBatchSchema = Object[UpdatePaymentBatch]()
	PaymentBatchQuerySchema  = Query[PaymentBatchQuery]()

	paymentBatchContract = Contract{
		Name:       "payment_batch",
		Create:     CreatePaymentBatchSchema,
		Update:     UpdatePaymentBatchSchema,
		UpdateKind: UpdateNarrow,
		Query:      PaymentBatchQuerySchema,
	}
)

// VirtualCardStatus enumerates virtual card states.
type VirtualCardStatus string

const (
	CardActive    VirtualCardStatus = "ACTIVE"
	CardUsed      VirtualCardStatus = "USED"
	CardCancelled VirtualCardStatus = "CANCELLED"
	CardExpired   VirtualCardStatus = "EXPIRED"
)

// CreateVirtualCard issues a single- or multi-use card for a supplier payment.
type CreateVirtualCard struct {
	SupplierID       *string  `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	InvoiceID        *string  `json:"invoiceId,omitempty" validate:"omitempty,uuid"`
	Amount           float64  `json:"amount" validate:"required,gt=0"`
	Currency         Currency `json:"currency" default:"USD" validate:"currency"`
	ExpiresAt        *string  `json:"expiresAt,omitempty" validate:"omitempty,isodatetime"`
	SingleUse        bool     `json:"singleUse" default:"true"`
	MerchantCategory *string  `json:"merchantCategory,omitempty" validate:"omitempty,max=100"`
}

// UpdateVirtualCard changes the card state or its remaining amount.
type UpdateVirtualCard struct {
	Status *VirtualCardStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE USED CANCELLED EXPIRED"`
	Amount *float64           `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

// VirtualCardQuery filters the virtual card list.
type VirtualCardQuery struct {
	Status     *VirtualCardStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE USED CANCELLED EXPIRED"`
	SupplierID *string            `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	SortBy     string             `json:"sortBy" default:"createdAt" validate:"oneof=createdAt amount expiresAt"`
	Pagination
}

var (
	CreateVirtualCardSchema = Object[CreateVirtualCard]()
	UpdateVirtualCardSchema = Object[UpdateVirtualCard](AtLeastOne())
	VirtualCardQuerySchema  = Query[VirtualCardQuery]()

	virtualCardContract = Contract{
		Name:       "virtual_card",
		Create:     CreateVirtualCardSchema,
		Update:     UpdateVirtualCardSchema,
		UpdateKind: UpdateNarrow,
		Query:      VirtualCardQuerySchema,
	}
)

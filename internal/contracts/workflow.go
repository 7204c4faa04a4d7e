package contracts

// WorkflowEntity is the document type an approval workflow routes.
type WorkflowEntity string

const (
	WorkflowInvoice       WorkflowEntity = "invoice"
	WorkflowPurchaseOrder WorkflowEntity = "purchase_order"
	WorkflowExpense       WorkflowEntity = "expense"
	WorkflowPaymentBatch  WorkflowEntity = "payment_batch"
)

// ApprovalStep is one approver in the chain.
type ApprovalStep struct {
	ApproverID string `json:"approverId" validate:"required,uuid"`
	Order      int    `json:"order" validate:"required,gte=1"`
	Role       *Role  `json:"role,omitempty" validate:"omitempty,oneof=ADMIN APPROVER AP_CLERK VIEWER"`
}

// CreateApprovalWorkflow is the create contract for approval workflows.
type CreateApprovalWorkflow struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	EntityType  WorkflowEntity `json:"entityType" default:"invoice" validate:"oneof=invoice purchase_order expense payment_batch"`
	MinAmount   *float64       `json:"minAmount,omitempty" validate:"omitempty,gte=0"`
	MaxAmount   *float64       `json:"maxAmount,omitempty" validate:"omitempty,gt=0"`
	Steps       []ApprovalStep `json:"steps" validate:"required,min=1,dive"`
	IsActive    bool           `json:"isActive" default:"true"`
}

// ApprovalWorkflowQuery filters the workflow list.
type ApprovalWorkflowQuery struct {
	Search     *string         `json:"search,omitempty"`
	EntityType *WorkflowEntity `json:"entityType,omitempty" validate:"omitempty,oneof=invoice purchase_order expense payment_batch"`
	IsActive   *bool           `json:"isActive,omitempty"`
	SortBy     string          `json:"sortBy" default:"createdAt" validate:"oneof=name createdAt"`
	Pagination
}

var (
	CreateApprovalWorkflowSchema = Object[CreateApprovalWorkflow]()
	UpdateApprovalWorkflowSchema = PartialWithAtLeastOne[CreateApprovalWorkflow]()
	ApprovalWorkflowQuerySchema  = Query[ApprovalWorkflowQuery]()

	approvalWorkflowContract = Contract{
		Name:       "approval_workflow",
		Create:     CreateApprovalWorkflowSchema,
		Update:     UpdateApprovalWorkflowSchema,
		UpdateKind: UpdatePartial,
		Query:      ApprovalWorkflowQuerySchema,
	}
)

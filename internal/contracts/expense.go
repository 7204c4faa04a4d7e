package contracts

// ExpenseCategory enumerates expense categories.
type ExpenseCategory string

const (
	ExpenseTravel    ExpenseCategory = "TRAVEL"
	ExpenseMeals     ExpenseCategory = "MEALS"
	ExpenseSupplies  ExpenseCategory = "SUPPLIES"
	ExpenseSoftware  ExpenseCategory = "SOFTWARE"
	ExpenseEquipment ExpenseCategory = "EQUIPMENT"
	ExpenseOther     ExpenseCategory = "OTHER"
)

// ExpenseStatus enumerates reimbursement states.
type ExpenseStatus string

const (
	ExpensePending    ExpenseStatus = "PENDING"
	ExpenseApproved   ExpenseStatus = "APPROVED"
	ExpenseRejected   ExpenseStatus = "REJECTED"
	ExpenseReimbursed ExpenseStatus = "REIMBURSED"
)

// CreateExpense is the create contract for employee expenses.
type CreateExpense struct {
	Description string          `json:"description" validate:"required,max=500"`
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Currency    Currency        `json:"currency" default:"USD" validate:"currency"`
	Category    ExpenseCategory `json:"category" validate:"required,oneof=TRAVEL MEALS SUPPLIES SOFTWARE EQUIPMENT OTHER"`
	ExpenseDate string          `json:"expenseDate" validate:"required,isodatetime"`
	Merchant    *string         `json:"merchant,omitempty" validate:"omitempty,max=200"`
	ReceiptURL  *string         `json:"receiptUrl,omitempty" validate:"omitempty,url"`
	EmployeeID  *string         `json:"employeeId,omitempty" validate:"omitempty,uuid"`
	Notes       *string         `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateExpense adds the reimbursement status to the create fields.
type UpdateExpense struct {
	CreateExpense
	Status *ExpenseStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED REIMBURSED"`
}

// ExpenseQuery filters the expense list.
type ExpenseQuery struct {
	Search     *string          `json:"search,omitempty"`
	Category   *ExpenseCategory `json:"category,omitempty" validate:"omitempty,oneof=TRAVEL MEALS SUPPLIES SOFTWARE EQUIPMENT OTHER"`
	Status     *ExpenseStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED REIMBURSED"`
	EmployeeID *string          `json:"employeeId,omitempty" validate:"omitempty,uuid"`
	MinAmount  *float64         `json:"minAmount,omitempty" validate:"omitempty,gte=0"`
	MaxAmount  *float64         `json:"maxAmount,omitempty" validate:"omitempty,gte=0"`
	From       *string          `json:"from,omitempty"`
	To         *string          `json:"to,omitempty"`
	SortBy     string           `json:"sortBy" default:"createdAt" validate:"oneof=createdAt expenseDate amount"`
	Pagination
}

var (
	CreateExpenseSchema = Object[CreateExpense]()
	UpdateExpenseSchema = PartialWithAtLeastOne[UpdateExpense]()
	ExpenseQuerySchema  = Query[ExpenseQuery]()

	expenseContract = Contract{
		Name:       "expense",
		Create:     CreateExpenseSchema,
		Update:     UpdateExpenseSchema,
		UpdateKind: UpdatePartial,
		Query:      ExpenseQuerySchema,
	}
)

// CreateExpensePolicy is the create contract for expense policies.
type CreateExpensePolicy struct {
	Name              string           `json:"name" validate:"required,max=200"`
	Category          *ExpenseCategory `json:"category,omitempty" validate:"omitempty,oneof=TRAVEL MEALS SUPPLIES SOFTWARE EQUIPMENT OTHER"`
	MaxAmount         float64          `json:"maxAmount" validate:"required,gt=0"`
	Currency          Currency         `json:"currency" default:"USD" validate:"currency"`
	RequiresReceipt   bool             `json:"requiresReceipt" default:"true"`
	RequiresApproval  bool             `json:"requiresApproval" default:"true"`
	ApprovalThreshold *float64         `json:"approvalThreshold,omitempty" validate:"omitempty,gte=0"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsActive          bool             `json:"isActive" default:"true"`
}

// ExpensePolicyQuery filters the expense policy list.
type ExpensePolicyQuery struct {
	Search   *string          `json:"search,omitempty"`
	Category *ExpenseCategory `json:"category,omitempty" validate:"omitempty,oneof=TRAVEL MEALS SUPPLIES SOFTWARE EQUIPMENT OTHER"`
	IsActive *bool            `json:"isActive,omitempty"`
	SortBy   string           `json:"sortBy" default:"createdAt" validate:"oneof=name createdAt maxAmount"`
	Pagination
}

var (
	CreateExpensePolicySchema = Object[CreateExpensePolicy]()
	UpdateExpensePolicySchema = PartialWithAtLeastOne[CreateExpensePolicy]()
	ExpensePolicyQuerySchema  = Query[ExpensePolicyQuery]()

	expensePolicyContract = Contract{
		Name:       "expense_policy",
		Create:     CreateExpensePolicySchema,
		Update:     UpdateExpensePolicySchema,
		UpdateKind: UpdatePartial,
		Query:      ExpensePolicyQuerySchema,
	}
)

package contracts

// ConversationStatus enumerates supplier conversation states.
type ConversationStatus string

const (
	ConversationOpen     ConversationStatus = "OPEN"
	ConversationPending  ConversationStatus = "PENDING"
	ConversationResolved ConversationStatus = "RESOLVED"
	ConversationClosed   ConversationStatus = "CLOSED"
)

// Priority ranks conversations and alerts.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// CreateSupplierConversation opens a thread with a supplier.
type CreateSupplierConversation struct {
	SupplierID     string   `json:"supplierId" validate:"required,uuid"`
	Subject        string   `json:"subject" validate:"required,max=200"`
	Priority       Priority `json:"priority" default:"MEDIUM" validate:"oneof=LOW MEDIUM HIGH URGENT"`
	InitialMessage *string  `json:"initialMessage,omitempty" validate:"omitempty,max=5000"`
}

// UpdateSupplierConversation moves a thread between states or reprioritizes it.
type UpdateSupplierConversation struct {
	Status   *ConversationStatus `json:"status,omitempty" validate:"omitempty,oneof=OPEN PENDING RESOLVED CLOSED"`
	Priority *Priority           `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// SupplierConversationQuery filters the conversation list.
type SupplierConversationQuery struct {
	Search     *string             `json:"search,omitempty"`
	Status     *ConversationStatus `json:"status,omitempty" validate:"omitempty,oneof=OPEN PENDING RESOLVED CLOSED"`
	Priority   *Priority           `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	SupplierID *string             `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	SortBy     string              `json:"sortBy" default:"createdAt" validate:"oneof=createdAt updatedAt priority"`
	Pagination
}

var (
	CreateSupplierConversationSchema = Object[CreateSupplierConversation]()
	UpdateSupplierConversationSchema = Object[UpdateSupplierConversation](AtLeastOne())
	SupplierConversationQuerySchema  = Query[SupplierConversationQuery]()

	supplierConversationContract = Contract{
		Name:       "supplier_conversation",
		Create:     CreateSupplierConversationSchema,
		Update:     UpdateSupplierConversationSchema,
		UpdateKind: UpdateNarrow,
		Query:      SupplierConversationQuerySchema,
	}
)

// SenderType identifies who wrote a conversation message.
type SenderType string

const (
	SenderBuyer    SenderType = "BUYER"
	SenderSupplier SenderType = "SUPPLIER"
	SenderSystem   SenderType = "SYSTEM"
)

// CreateConversationMessage posts a message into a conversation.
type CreateConversationMessage struct {
	ConversationID string     `json:"conversationId" validate:"required,uuid"`
	Content        string     `json:"content" validate:"required,max=5000"`
	SenderType     SenderType `json:"senderType" default:"BUYER" validate:"oneof=BUYER SUPPLIER SYSTEM"`
	Attachments    []string   `json:"attachments,omitempty" validate:"omitempty,dive,url"`
}

// ConversationMessageQuery filters messages of a conversation.
type ConversationMessageQuery struct {
	ConversationID *string     `json:"conversationId,omitempty" validate:"omitempty,uuid"`
	SenderType     *SenderType `json:"senderType,omitempty" validate:"omitempty,oneof=BUYER SUPPLIER SYSTEM"`
	SortBy         string      `json:"sortBy" default:"createdAt" validate:"oneof=createdAt"`
	Pagination
}

var (
	CreateConversationMessageSchema = Object[CreateConversationMessage]()
	UpdateConversationMessageSchema = PartialWithAtLeastOne[CreateConversationMessage]()
	ConversationMessageQuerySchema  = Query[ConversationMessageQuery]()

	conversationMessageContract = Contract{
		Name:       "conversation_message",
		Create:     CreateConversationMessageSchema,
		Update:     UpdateConversationMessageSchema,
		UpdateKind: UpdatePartial,
		Query:      ConversationMessageQuerySchema,
	}
)

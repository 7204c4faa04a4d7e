package contracts

// NotificationType enumerates in-app notification kinds.
type NotificationType string

const (
	NotifyInfo             NotificationType = "INFO"
	NotifyWarning          NotificationType = "WARNING"
	NotifyError            NotificationType = "ERROR"
	NotifySuccess          NotificationType = "SUCCESS"
	NotifyApprovalRequired NotificationType = "APPROVAL_REQUIRED"
	NotifyPaymentDue       NotificationType = "PAYMENT_DUE"
)

// CreateNotification is the create contract for notifications.
type CreateNotification struct {
	UserID     string           `json:"userId" validate:"required,uuid"`
	Type       NotificationType `json:"type" default:"INFO" validate:"oneof=INFO WARNING ERROR SUCCESS APPROVAL_REQUIRED PAYMENT_DUE"`
	Title      string           `json:"title" validate:"required,max=200"`
	Message    string           `json:"message" validate:"required,max=2000"`
	Link       *string          `json:"link,omitempty" validate:"omitempty,max=500"`
	EntityType *string          `json:"entityType,omitempty" validate:"omitempty,max=100"`
	EntityID   *string          `json:"entityId,omitempty" validate:"omitempty,max=100"`
}

// UpdateNotification marks a notification read or unread.
type UpdateNotification struct {
	IsRead *bool `json:"isRead,omitempty"`
}

// NotificationQuery filters a user's notifications.
type NotificationQuery struct {
	Type   *NotificationType `json:"type,omitempty" validate:"omitempty,oneof=INFO WARNING ERROR SUCCESS APPROVAL_REQUIRED PAYMENT_DUE"`
	IsRead *bool             `json:"isRead,omitempty"`
	SortBy string            `json:"sortBy" default:"createdAt" validate:"oneof=createdAt"`
	Pagination
}

var (
	CreateNotificationSchema = Object[CreateNotification]()
	UpdateNotificationSchema = Object[UpdateNotification](AtLeastOne())
	NotificationQuerySchema  = Query[NotificationQuery]()

	notificationContract = Contract{
		Name:       "notification",
		Create:     CreateNotificationSchema,
		Update:     UpdateNotificationSchema,
		UpdateKind: UpdateNarrow,
		Query:      NotificationQuerySchema,
	}
)

// RiskEntity is the kind of record a risk alert points at.
type RiskEntity string

const (
	RiskEntitySupplier RiskEntity = "SUPPLIER"
	RiskEntityInvoice  RiskEntity = "INVOICE"
	RiskEntityPayment  RiskEntity = "PAYMENT"
	RiskEntityContract RiskEntity = "CONTRACT"
)

// RiskAlertStatus enumerates investigation states.
type RiskAlertStatus string

const (
	AlertOpen          RiskAlertStatus = "OPEN"
	AlertInvestigating RiskAlertStatus = "INVESTIGATING"
	AlertResolved      RiskAlertStatus = "RESOLVED"
	AlertDismissed     RiskAlertStatus = "DISMISSED"
)

// CreateRiskAlert is the create contract for risk alerts.
type CreateRiskAlert struct {
	EntityType  RiskEntity `json:"entityType" validate:"required,oneof=SUPPLIER INVOICE PAYMENT CONTRACT"`
	EntityID    string     `json:"entityId" validate:"required,uuid"`
	Severity    RiskLevel  `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	RiskScore   *float64   `json:"riskScore,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// UpdateRiskAlert moves an alert through investigation or reprioritizes it.
type UpdateRiskAlert struct {
	Status   *RiskAlertStatus `json:"status,omitempty" validate:"omitempty,oneof=OPEN INVESTIGATING RESOLVED DISMISSED"`
	Priority *Priority        `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// RiskAlertQuery filters the alert list.
type RiskAlertQuery struct {
	Severity   *RiskLevel       `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status     *RiskAlertStatus `json:"status,omitempty" validate:"omitempty,oneof=OPEN INVESTIGATING RESOLVED DISMISSED"`
	EntityType *RiskEntity      `json:"entityType,omitempty" validate:"omitempty,oneof=SUPPLIER INVOICE PAYMENT CONTRACT"`
	SortBy     string           `json:"sortBy" default:"createdAt" validate:"oneof=createdAt severity riskScore"`
	Pagination
}

var (
	CreateRiskAlertSchema = Object[CreateRiskAlert]()
	UpdateRiskAlertSchema = Object[UpdateRiskAlert](AtLeastOne())
	RiskAlertQuerySchema  = Query[RiskAlertQuery]()

	riskAlertContract = Contract{
		Name:       "risk_alert",
		Create:     CreateRiskAlertSchema,
		Update:     UpdateRiskAlertSchema,
		UpdateKind: UpdateNarrow,
		Query:      RiskAlertQuerySchema,
	}
)

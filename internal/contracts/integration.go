package contracts

// ERPProvider names a supported ERP system.
type ERPProvider string

const (
	ERPNetSuite   ERPProvider = "NETSUITE"
	ERPSAP        ERPProvider = "SAP"
	ERPQuickBooks ERPProvider = "QUICKBOOKS"
	ERPXero       ERPProvider = "XERO"
	ERPSage       ERPProvider = "SAGE"
	ERPDynamics   ERPProvider = "DYNAMICS"
	ERPOracle     ERPProvider = "ORACLE"
)

// SyncFrequency is how often an ERP connection pulls changes.
type SyncFrequency string

const (
	SyncRealtime SyncFrequency = "REALTIME"
	SyncHourly   SyncFrequency = "HOURLY"
	SyncDaily    SyncFrequency = "DAILY"
	SyncWeekly   SyncFrequency = "WEEKLY"
)

// CreateERPConnection is the create contract for ERP connections.
type CreateERPConnection struct {
	Name          string            `json:"name" validate:"required,max=200"`
	Provider      ERPProvider       `json:"provider" validate:"required,oneof=NETSUITE SAP QUICKBOOKS XERO SAGE DYNAMICS ORACLE"`
	BaseURL       *string           `json:"baseUrl,omitempty" validate:"omitempty,url"`
	Credentials   map[string]string `json:"credentials,omitempty"`
	SyncFrequency SyncFrequency     `json:"syncFrequency" default:"DAILY" validate:"oneof=REALTIME HOURLY DAILY WEEKLY"`
	IsActive      bool              `json:"isActive" default:"true"`
}

// ERPConnectionQuery filters the connection list.
type ERPConnectionQuery struct {
	Provider *ERPProvider `json:"provider,omitempty" validate:"omitempty,oneof=NETSUITE SAP QUICKBOOKS XERO SAGE DYNAMICS ORACLE"`
	IsActive *bool        `json:"isActive,omitempty"`
	SortBy   string       `json:"sortBy" default:"createdAt" validate:"oneof=createdAt name lastSyncAt"`
	Pagination
}

var (
	CreateERPConnectionSchema = Object[CreateERPConnection]()
	UpdateERPConnectionSchema = PartialWithAtLeastOne[CreateERPConnection]()
	ERPConnectionQuerySchema  = Query[ERPConnectionQuery]()

	erpConnectionContract = Contract{
		Name:       "erp_connection",
		Create:     CreateERPConnectionSchema,
		Update:     UpdateERPConnectionSchema,
		UpdateKind: UpdatePartial,
		Query:      ERPConnectionQuerySchema,
	}
)

// CreateWebhook is the create contract for outbound webhooks.
type CreateWebhook struct {
	URL         string   `json:"url" validate:"required,url"`
	Events      []string `json:"events" validate:"required,min=1,dive,min=1"`
	Secret      *string  `json:"secret,omitempty" validate:"omitempty,min=16"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    bool     `json:"isActive" default:"true"`
}

// WebhookQuery filters the webhook list.
type WebhookQuery struct {
	Event    *string `json:"event,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	SortBy   string  `json:"sortBy" default:"createdAt" validate:"oneof=createdAt url"`
	Pagination
}

var (
	CreateWebhookSchema = Object[CreateWebhook]()
	UpdateWebhookSchema = PartialWithAtLeastOne[CreateWebhook]()
	WebhookQuerySchema  = Query[WebhookQuery]()

	webhookContract = Contract{
		Name:       "webhook",
		Create:     CreateWebhookSchema,
		Update:     UpdateWebhookSchema,
		UpdateKind: UpdatePartial,
		Query:      WebhookQuerySchema,
	}
)

package contracts

// ReportType enumerates the report generators.
type ReportType string

const (
	ReportSpendAnalysis     ReportType = "SPEND_ANALYSIS"
	ReportAPAging           ReportType = "AP_AGING"
	ReportCashFlow          ReportType = "CASH_FLOW"
	ReportVendorPerformance ReportType = "VENDOR_PERFORMANCE"
	ReportCompliance        ReportType = "COMPLIANCE"
	ReportCustom            ReportType = "CUSTOM"
)

// ReportSchedule is how often a saved report is regenerated.
type ReportSchedule string

const (
	ScheduleDaily     ReportSchedule = "DAILY"
	ScheduleWeekly    ReportSchedule = "WEEKLY"
	ScheduleMonthly   ReportSchedule = "MONTHLY"
	ScheduleQuarterly ReportSchedule = "QUARTERLY"
)

// ReportFormat is the output document format.
type ReportFormat string

const (
	FormatPDF  ReportFormat = "PDF"
	FormatCSV  ReportFormat = "CSV"
	FormatXLSX ReportFormat = "XLSX"
)

// CreateReport is the create contract for saved reports.
type CreateReport struct {
	Name       string          `json:"name" validate:"required,max=200"`
	Type       ReportType      `json:"type" validate:"required,oneof=SPEND_ANALYSIS AP_AGING CASH_FLOW VENDOR_PERFORMANCE COMPLIANCE CUSTOM"`
	Parameters map[string]any  `json:"parameters,omitempty"`
	Schedule   *ReportSchedule `json:"schedule,omitempty" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY QUARTERLY"`
	Format     ReportFormat    `json:"format" default:"PDF" validate:"oneof=PDF CSV XLSX"`
	Recipients []string        `json:"recipients,omitempty" validate:"omitempty,dive,email"`
}

// ReportQuery filters the report list.
type ReportQuery struct {
	Search *string     `json:"search,omitempty"`
	Type   *ReportType `json:"type,omitempty" validate:"omitempty,oneof=SPEND_ANALYSIS AP_AGING CASH_FLOW VENDOR_PERFORMANCE COMPLIANCE CUSTOM"`
	SortBy string      `json:"sortBy" default:"createdAt" validate:"oneof=createdAt name"`
	Pagination
}

var (
	CreateReportSchema = Object[CreateReport]()
	UpdateReportSchema = PartialWithAtLeastOne[CreateReport]()
	ReportQuerySchema  = Query[ReportQuery]()

	reportContract = Contract{
		Name:       "report",
		Create:     CreateReportSchema,
		Update:     UpdateReportSchema,
		UpdateKind: UpdatePartial,
		Query:      ReportQuerySchema,
	}
)

// CreateAuditLog records one audited action.
type CreateAuditLog struct {
	Action     string         `json:"action" validate:"required,max=100"`
	EntityType string         `json:"entityType" validate:"required,max=100"`
	EntityID   string         `json:"entityId" validate:"required,max=100"`
	UserID     *string        `json:"userId,omitempty" validate:"omitempty,uuid"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  *string        `json:"ipAddress,omitempty" validate:"omitempty,ip"`
	UserAgent  *string        `json:"userAgent,omitempty" validate:"omitempty,max=500"`
}

// AuditLogQuery filters the audit trail.
type AuditLogQuery struct {
	Search     *string `json:"search,omitempty"`
	Action     *string `json:"action,omitempty"`
	EntityType *string `json:"entityType,omitempty"`
	EntityID   *string `json:"entityId,omitempty"`
	UserID     *string `json:"userId,omitempty" validate:"omitempty,uuid"`
	From       *string `json:"from,omitempty"`
	To         *string `json:"to,omitempty"`
	SortBy     string  `json:"sortBy" default:"createdAt" validate:"oneof=createdAt action"`
	Pagination
}

var (
	CreateAuditLogSchema = Object[CreateAuditLog]()
	UpdateAuditLogSchema = PartialWithAtLeastOne[CreateAuditLog]()
	AuditLogQuerySchema  = Query[AuditLogQuery]()

	auditLogContract = Contract{
		Name:       "audit_log",
		Create:     CreateAuditLogSchema,
		Update:     UpdateAuditLogSchema,
		UpdateKind: UpdatePartial,
		Query:      AuditLogQuerySchema,
	}
)

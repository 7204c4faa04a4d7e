package contracts

// SCFProgramStatus enumerates supply-chain-finance program states.
type SCFProgramStatus string

const (
	SCFActive SCFProgramStatus = "ACTIVE"
	SCFPaused SCFProgramStatus = "PAUSED"
	SCFClosed SCFProgramStatus = "CLOSED"
)

// CreateSCFProgram is the create contract for supply-chain-finance programs. The rate
// bounds are checked independently; an inverted range is accepted.
type CreateSCFProgram struct {
	Funder       string           `json:"funder" validate:"required,max=200"`
	ProgramSize  float64          `json:"programSize" validate:"required,gt=0"`
	RateRangeMin *float64         `json:"rateRangeMin" validate:"required,gte=0"`
	RateRangeMax float64          `json:"rateRangeMax" validate:"required,gt=0"`
	Utilization  float64          `json:"utilization" default:"0" validate:"gte=0,lte=100"`
	Suppliers    int              `json:"suppliers" default:"0" validate:"gte=0"`
	Status       SCFProgramStatus `json:"status" default:"ACTIVE" validate:"oneof=ACTIVE PAUSED CLOSED"`
	Currency     Currency         `json:"currency" default:"USD" validate:"currency"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// SCFProgramQuery filters the program list.
type SCFProgramQuery struct {
	Search *string           `json:"search,omitempty"`
	Status *SCFProgramStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE PAUSED CLOSED"`
	SortBy string            `json:"sortBy" default:"createdAt" validate:"oneof=createdAt programSize utilization"`
	Pagination
}

var (
	CreateSCFProgramSchema = Object[CreateSCFProgram]()
	UpdateSCFProgramSchema = PartialWithAtLeastOne[CreateSCFProgram]()
	SCFProgramQuerySchema  = Query[SCFProgramQuery]()

	scfProgramContract = Contract{
		Name:       "scf_program",
		Create:     CreateSCFProgramSchema,
		Update:     UpdateSCFProgramSchema,
		UpdateKind: UpdatePartial,
		Query:      SCFProgramQuerySchema,
	}
)

// ForecastScenario selects the assumptions behind a forecast.
type ForecastScenario string

const (
	ScenarioBase        ForecastScenario = "BASE"
	ScenarioOptimistic  ForecastScenario = "OPTIMISTIC"
	ScenarioPessimistic ForecastScenario = "PESSIMISTIC"
)

// CreateCashFlowForecast is the create contract for cash flow forecasts.
type CreateCashFlowForecast struct {
	PeriodStart      string           `json:"periodStart" validate:"required,isodatetime"`
	PeriodEnd        string           `json:"periodEnd" validate:"required,isodatetime"`
	ProjectedInflow  *float64         `json:"projectedInflow" validate:"required,gte=0"`
	ProjectedOutflow *float64         `json:"projectedOutflow" validate:"required,gte=0"`
	Currency         Currency         `json:"currency" default:"USD" validate:"currency"`
	Scenario         ForecastScenario `json:"scenario" default:"BASE" validate:"oneof=BASE OPTIMISTIC PESSIMISTIC"`
	Notes            *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CashFlowForecastQuery filters the forecast list.
type CashFlowForecastQuery struct {
	Scenario *ForecastScenario `json:"scenario,omitempty" validate:"omitempty,oneof=BASE OPTIMISTIC PESSIMISTIC"`
	From     *string           `json:"from,omitempty"`
	To       *string           `json:"to,omitempty"`
	SortBy   string            `json:"sortBy" default:"periodStart" validate:"oneof=periodStart createdAt"`
	Pagination
}

var (
	CreateCashFlowForecastSchema = Object[CreateCashFlowForecast]()
	UpdateCashFlowForecastSchema = PartialWithAtLeastOne[CreateCashFlowForecast]()
	CashFlowForecastQuerySchema  = Query[CashFlowForecastQuery]()

	cashFlowForecastContract = Contract{
		Name:       "cash_flow_forecast",
		Create:     CreateCashFlowForecastSchema,
		Update:     UpdateCashFlowForecastSchema,
		UpdateKind: UpdatePartial,
		Query:      CashFlowForecastQuerySchema,
	}
)

package contracts

// Role is a user's permission tier.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleApprover Role = "APPROVER"
	RoleAPClerk  Role = "AP_CLERK"
	RoleViewer   Role = "VIEWER"
)

// CreateUser is the create contract for tenant users.
type CreateUser struct {
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name" validate:"required,max=200"`
	Password   string  `json:"password" validate:"required,min=8,max=128"`
	Role       Role    `json:"role" default:"VIEWER" validate:"oneof=ADMIN APPROVER AP_CLERK VIEWER"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	IsActive   bool    `json:"isActive" default:"true"`
}

// UserQuery filters the user list.
type UserQuery struct {
	Search   *string `json:"search,omitempty"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,oneof=ADMIN APPROVER AP_CLERK VIEWER"`
	IsActive *bool   `json:"isActive,omitempty"`
	SortBy   string  `json:"sortBy" default:"createdAt" validate:"oneof=name email createdAt"`
	Pagination
}

var (
	CreateUserSchema = Object[CreateUser]()
	// Password stays subject to the create rules when present, so edits may rotate it
	// without having to resend it.
	UpdateUserSchema = PartialWithAtLeastOne[CreateUser]()
	UserQuerySchema  = Query[UserQuery]()

	userContract = Contract{
		Name:       "user",
		Create:     CreateUserSchema,
		Update:     UpdateUserSchema,
		UpdateKind: UpdatePartial,
		Query:      UserQuerySchema,
	}
)

// Plan is a tenant subscription tier.
type Plan string

const (
	PlanFree         Plan = "FREE"
	PlanStarter      Plan = "STARTER"
	PlanProfessional Plan = "PROFESSIONAL"
	PlanEnterprise   Plan = "ENTERPRISE"
)

// CreateTenant is the create contract for tenants.
type CreateTenant struct {
	Name     string         `json:"name" validate:"required,max=200"`
	Slug     string         `json:"slug" validate:"required,min=3,max=50,slug"`
	Plan     Plan           `json:"plan" default:"FREE" validate:"oneof=FREE STARTER PROFESSIONAL ENTERPRISE"`
	Domain   *string        `json:"domain,omitempty" validate:"omitempty,fqdn"`
	Settings map[string]any `json:"settings,omitempty"`
	IsActive bool           `json:"isActive" default:"true"`
}

// TenantQuery filters the tenant list.
type TenantQuery struct {
	Search   *string `json:"search,omitempty"`
	Plan     *Plan   `json:"plan,omitempty" validate:"omitempty,oneof=FREE STARTER PROFESSIONAL ENTERPRISE"`
	IsActive *bool   `json:"isActive,omitempty"`
	SortBy   string  `json:"sortBy" default:"createdAt" validate:"oneof=createdAt name"`
	Pagination
}

var (
	CreateTenantSchema = Object[CreateTenant]()
	UpdateTenantSchema = PartialWithAtLeastOne[CreateTenant]()
	TenantQuerySchema  = Query[TenantQuery]()

	tenantContract = Contract{
		Name:       "tenant",
		Create:     CreateTenantSchema,
		Update:     UpdateTenantSchema,
		UpdateKind: UpdatePartial,
		Query:      TenantQuerySchema,
	}
)

// CreateAPIKey is the create contract for developer API keys.
type CreateAPIKey struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Scopes    []string `json:"scopes" validate:"required,min=1,dive,min=1"`
	ExpiresAt *string  `json:"expiresAt,omitempty" validate:"omitempty,isodatetime"`
}

// UpdateAPIKey renames, rescopes or toggles a key.
type UpdateAPIKey struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Scopes   []string `json:"scopes,omitempty" validate:"omitnil,min=1,dive,min=1"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// APIKeyQuery filters the API key list.
type APIKeyQuery struct {
	Search   *string `json:"search,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	SortBy   string  `json:"sortBy" default:"createdAt" validate:"oneof=createdAt name lastUsedAt"`
	Pagination
}

var (
	CreateAPIKeySchema = Object[CreateAPIKey]()
	UpdateAPIKeySchema = Object[UpdateAPIKey](AtLeastOne())
	APIKeyQuerySchema  = Query[APIKeyQuery]()

	apiKeyContract = Contract{
		Name:       "api_key",
		Create:     CreateAPIKeySchema,
		Update:     UpdateAPIKeySchema,
		UpdateKind: UpdateNarrow,
		Query:      APIKeyQuerySchema,
	}
)

// CreateFeatureFlag is the create contract for feature flags.
type CreateFeatureFlag struct {
	Key               string   `json:"key" validate:"required,max=100"`
	Name              string   `json:"name" validate:"required,max=200"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Enabled           bool     `json:"enabled" default:"false"`
	RolloutPercentage int      `json:"rolloutPercentage" default:"0" validate:"gte=0,lte=100"`
	TenantIDs         []string `json:"tenantIds,omitempty" validate:"omitempty,dive,uuid"`
}

// FeatureFlagQuery filters the feature flag list.
type FeatureFlagQuery struct {
	Search  *string `json:"search,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
	SortBy  string  `json:"sortBy" default:"createdAt" validate:"oneof=key createdAt"`
	Pagination
}

var (
	CreateFeatureFlagSchema = Object[CreateFeatureFlag]()
	UpdateFeatureFlagSchema = PartialWithAtLeastOne[CreateFeatureFlag]()
	FeatureFlagQuerySchema  = Query[FeatureFlagQuery]()

	featureFlagContract = Contract{
		Name:       "feature_flag",
		Create:     CreateFeatureFlagSchema,
		Update:     UpdateFeatureFlagSchema,
		UpdateKind: UpdatePartial,
		Query:      FeatureFlagQuerySchema,
	}
)

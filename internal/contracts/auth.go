package contracts

// Credential payloads. Failures only ever report paths and fixed messages, so passwords and
// access codes are never echoed back.

// Login is the buyer sign-in payload.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register is the self-service sign-up payload.
type Register struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required"`
	CompanyName     *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
}

// Refine checks that both password entries match.
func (r *Register) Refine() FieldErrors {
	if r.Password != r.ConfirmPassword {
		return FieldErrors{{Path: []string{"confirmPassword"}, Message: "Passwords do not match"}}
	}
	return nil
}

// SupplierLogin is the supplier portal sign-in payload.
type SupplierLogin struct {
	Email      string `json:"email" validate:"required,email"`
	AccessCode string `json:"accessCode" validate:"required"`
}

// MagicLink requests a passwordless sign-in email.
type MagicLink struct {
	Email      string  `json:"email" validate:"required,email"`
	RedirectTo *string `json:"redirectTo,omitempty" validate:"omitempty,url"`
}

var (
	LoginSchema         = Object[Login]()
	RegisterSchema      = Object[Register]()
	SupplierLoginSchema = Object[SupplierLogin]()
	MagicLinkSchema     = Object[MagicLink]()

	loginContract         = Contract{Name: "login", Create: LoginSchema}
	registerContract      = Contract{Name: "register", Create: RegisterSchema}
	supplierLoginContract = Contract{Name: "supplier_login", Create: SupplierLoginSchema}
	magicLinkContract     = Contract{Name: "magic_link", Create: MagicLinkSchema}
)

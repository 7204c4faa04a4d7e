package contracts

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCurrency is applied to create payloads that omit a currency.
const DefaultCurrency = "USD"

var (
	currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// validate is shared by every contract. validator.Validate is safe for concurrent use
// once all custom rules are registered, which happens here at package init.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("contracts: register %s: %v", tag, err))
		}
	}
	must("uuid", isUUID)
	must("isodatetime", isISODateTime)
	must("currency", isCurrency)
	must("slug", isSlug)
	return v
}

func isUUID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isISODateTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339Nano, fl.Field().String())
	return err == nil
}

func isCurrency(fl validator.FieldLevel) bool {
	return currencyPattern.MatchString(fl.Field().String())
}

func isSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// Currency is an ISO-4217-shaped code. Decoding upper-cases the input so "usd" and "USD"
// normalize to the same value; the currency rule then checks it is exactly 3 letters.
type Currency string

// UnmarshalJSON normalizes the code to upper case.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Currency(upper(s))
	return nil
}

// UnmarshalText lets query strings carry currency filters.
func (c *Currency) UnmarshalText(text []byte) error {
	*c = Currency(upper(string(text)))
	return nil
}

func upper(s string) string {
	// cases.Caser keeps state between calls and must not be shared across goroutines.
	return cases.Upper(language.Und).String(s)
}

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination is embedded into every query contract.
type Pagination struct {
	Page      int       `json:"page" default:"1" validate:"gte=1"`
	Limit     int       `json:"limit" default:"20" validate:"gte=1,lte=100"`
	SortOrder SortOrder `json:"sortOrder" default:"desc" validate:"oneof=asc desc"`
}

// message renders a validator failure with the wording shared by every entity.
func message(fe validator.FieldError) string {
	kind := fe.Kind()
	numeric := isNumericKind(kind)
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "Required"
	case "gt":
		if numeric {
			if param == "0" {
				return "Must be a positive number"
			}
			return "Must be greater than " + param
		}
		return "Must contain more than " + param + " item(s)"
	case "gte":
		if numeric {
			if param == "0" {
				return "Must be a non-negative number"
			}
			return "Must be greater than or equal to " + param
		}
		return lengthMessage(kind, "at least", param)
	case "lt":
		return "Must be less than " + param
	case "lte":
		if numeric {
			return "Must be less than or equal to " + param
		}
		return lengthMessage(kind, "at most", param)
	case "min":
		if numeric {
			return "Must be greater than or equal to " + param
		}
		return lengthMessage(kind, "at least", param)
	case "max":
		if numeric {
			return "Must be less than or equal to " + param
		}
		return lengthMessage(kind, "at most", param)
	case "len":
		return lengthMessage(kind, "exactly", param)
	case "oneof":
		opts := strings.Fields(param)
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		return "Invalid enum value. Expected " + strings.Join(opts, " | ")
	case "uuid":
		return "Invalid UUID"
	case "email":
		return "Invalid email address"
	case "url", "http_url":
		return "Invalid URL"
	case "ip":
		return "Invalid IP address"
	case "fqdn":
		return "Invalid domain name"
	case "isodatetime":
		return "Invalid ISO date string"
	case "currency":
		return "Currency must be a 3-letter code"
	case "slug":
		return "Slug may only contain lowercase letters, numbers, and hyphens"
	case "eqfield":
		return "Must match " + param
	}
	return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
}

func lengthMessage(kind reflect.Kind, qualifier, n string) string {
	switch kind {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "Must contain " + qualifier + " " + n + " item(s)"
	default:
		return "Must be " + qualifier + " " + n + " characters"
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

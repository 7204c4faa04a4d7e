package contracts

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Refiner is implemented by contracts carrying a cross-field rule. Refine runs only after
// every field-level rule has passed.
type Refiner interface {
	Refine() FieldErrors
}

// BodySchema validates a JSON payload and returns the normalized value.
type BodySchema interface {
	ParseAny(data []byte) (any, error)
}

// QueryParser validates list-endpoint query parameters.
type QueryParser interface {
	ParseAny(values url.Values) (any, error)
}

// ObjectOption tunes an ObjectSchema.
type ObjectOption func(*objectConfig)

type objectConfig struct {
	atLeastOne bool
}

// AtLeastOne rejects payloads in which no field is present. It turns an ObjectSchema whose
// fields are all optional into a narrow patch contract.
func AtLeastOne() ObjectOption {
	return func(c *objectConfig) { c.atLeastOne = true }
}

// ObjectSchema validates create payloads and narrow patches for T.
type ObjectSchema[T any] struct {
	cfg objectConfig
}

// Object builds the schema for T. T must be a struct type.
func Object[T any](opts ...ObjectOption) *ObjectSchema[T] {
	mustStruct[T]()
	s := &ObjectSchema[T]{}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Parse decodes data into a fresh T, applies defaults and runs every rule.
func (s *ObjectSchema[T]) Parse(data []byte) (*T, error) {
	out := new(T)
	dst := reflect.ValueOf(out).Elem()
	d, rootErr := decodeBody(data, dst)
	if rootErr != nil {
		return nil, FieldErrors{*rootErr}
	}
	if !s.cfg.atLeastOne {
		applyDefaults(dst, d)
	}
	if errs := check(out, d, false); len(errs) > 0 {
		return nil, errs
	}
	if s.cfg.atLeastOne && len(d.present) == 0 {
		return nil, FieldErrors{rootError(MsgNoFieldsForUpdate)}
	}
	if r, ok := any(out).(Refiner); ok {
		if errs := r.Refine(); len(errs) > 0 {
			return nil, errs
		}
	}
	return out, nil
}

// ParseAny implements BodySchema.
func (s *ObjectSchema[T]) ParseAny(data []byte) (any, error) {
	out, err := s.Parse(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Patch is a validated partial update: Value holds the decoded fields and Fields lists the
// keys that were supplied, in declaration order.
type Patch[T any] struct {
	Value  *T
	Fields []string
}

// Has reports whether key was part of the patch.
func (p Patch[T]) Has(key string) bool {
	return slices.Contains(p.Fields, key)
}

// MarshalJSON emits only the supplied fields. Each field is encoded on its own so that an
// explicit empty list or object survives omitempty.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return []byte("{}"), nil
	}
	v := reflect.ValueOf(p.Value).Elem()
	out := make(map[string]json.RawMessage, len(p.Fields))
	for _, f := range fieldsOf(v.Type()) {
		if !p.Has(f.key) {
			continue
		}
		b, err := json.Marshal(v.FieldByIndex(f.index).Interface())
		if err != nil {
			return nil, err
		}
		out[f.key] = b
	}
	return json.Marshal(out)
}

// PartialSchema is the update contract derived from a create contract: every field becomes
// optional, no defaults are applied, and at least one field must be present.
type PartialSchema[T any] struct{}

// PartialWithAtLeastOne derives the update contract of T.
func PartialWithAtLeastOne[T any]() *PartialSchema[T] {
	mustStruct[T]()
	return &PartialSchema[T]{}
}

// Parse validates the fields present in data against the same rules as T's create contract.
func (s *PartialSchema[T]) Parse(data []byte) (Patch[T], error) {
	out := new(T)
	dst := reflect.ValueOf(out).Elem()
	d, rootErr := decodeBody(data, dst)
	if rootErr != nil {
		return Patch[T]{}, FieldErrors{*rootErr}
	}
	if errs := check(out, d, true); len(errs) > 0 {
		return Patch[T]{}, errs
	}
	if len(d.present) == 0 {
		return Patch[T]{}, FieldErrors{rootError(MsgNoFieldsForUpdate)}
	}
	return Patch[T]{Value: out, Fields: d.keys(fieldsOf(dst.Type()))}, nil
}

// ParseAny implements BodySchema.
func (s *PartialSchema[T]) ParseAny(data []byte) (any, error) {
	out, err := s.Parse(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QuerySchema validates list filters for T, coercing strings and applying defaults.
type QuerySchema[T any] struct{}

// Query builds the query contract for T.
func Query[T any]() *QuerySchema[T] {
	mustStruct[T]()
	return &QuerySchema[T]{}
}

// Parse coerces values into a fresh T.
func (s *QuerySchema[T]) Parse(values url.Values) (*T, error) {
	out := new(T)
	dst := reflect.ValueOf(out).Elem()
	d := decodeQuery(values, dst)
	applyDefaults(dst, d)
	if errs := check(out, d, false); len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// ParseAny implements QueryParser.
func (s *QuerySchema[T]) ParseAny(values url.Values) (any, error) {
	out, err := s.Parse(values)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mustStruct[T any]() {
	if t := reflect.TypeOf((*T)(nil)).Elem(); t.Kind() != reflect.Struct {
		panic("contracts: schema type " + t.String() + " is not a struct")
	}
}

// check runs the validator over v and merges its failures with decoding errors. With
// onlyPresent set, failures on absent keys are dropped. Errors come back in declaration
// order.
func check(v any, d *decoded, onlyPresent bool) FieldErrors {
	root := reflect.TypeOf(v).Elem()
	order := map[string]int{}
	for _, f := range fieldsOf(root) {
		order[f.key] = f.order
	}

	collected := slices.Clone(d.errs)
	err := validate.Struct(v)
	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		collected = append(collected, orderedError{order: len(order), err: rootError(err.Error())})
	}
	for _, fe := range verrs {
		path, leaf, named := jsonPath(root, fe.StructNamespace())
		if len(path) == 0 {
			continue
		}
		top := path[0]
		if d.typeFailed[top] || (onlyPresent && !d.present[top]) {
			continue
		}
		msg := message(fe)
		if fe.Tag() == "required" && named && d.suppliedAt(path) {
			msg = suppliedZero(fe, leaf)
		}
		collected = append(collected, orderedError{order: order[top], err: FieldError{Path: path, Message: msg}})
	}
	if len(collected) == 0 {
		return nil
	}
	slices.SortStableFunc(collected, func(a, b orderedError) int { return a.order - b.order })
	out := make(FieldErrors, len(collected))
	for i, c := range collected {
		out[i] = c.err
	}
	return out
}

// suppliedZero handles a zero value that was sent explicitly, such as "totalAmount": 0.
// The rules after "required" are run against it so the caller sees the bound it breaks.
// An empty string that breaks nothing else stays "Required".
func suppliedZero(fe validator.FieldError, leaf reflect.StructField) string {
	rules := strings.Split(leaf.Tag.Get("validate"), ",")
	if i := slices.Index(rules, "dive"); i >= 0 {
		rules = rules[:i]
	}
	rules = slices.DeleteFunc(rules, func(r string) bool { return r == "required" || r == "omitempty" })
	if len(rules) == 0 {
		return message(fe)
	}
	var verrs validator.ValidationErrors
	if errors.As(validate.Var(fe.Value(), strings.Join(rules, ",")), &verrs) && len(verrs) > 0 {
		return message(verrs[0])
	}
	return message(fe)
}

// jsonPath converts a validator struct namespace ("CreateInvoice.LineItems[0].Quantity")
// into JSON path segments (["lineItems", "0", "quantity"]). Embedded structs without a
// json tag contribute no segment. leaf is the struct field the namespace ends on; named
// is false when the namespace ends on a collection element instead.
func jsonPath(root reflect.Type, ns string) (path []string, leaf reflect.StructField, named bool) {
	segs := strings.Split(ns, ".")
	if len(segs) < 2 {
		return nil, leaf, false
	}
	t := root
	for _, seg := range segs[1:] {
		name, indexes := splitIndexes(seg)
		t = deref(t)
		if t.Kind() != reflect.Struct {
			return path, leaf, false
		}
		sf, ok := t.FieldByName(name)
		if !ok {
			return append(path, name), leaf, false
		}
		tag := sf.Tag.Get("json")
		key := strings.Split(tag, ",")[0]
		t = sf.Type
		leaf, named = sf, len(indexes) == 0
		if sf.Anonymous && tag == "" {
			continue
		}
		if key == "" {
			key = sf.Name
		}
		path = append(path, key)
		for _, idx := range indexes {
			path = append(path, idx)
			t = deref(t)
			switch t.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				t = t.Elem()
			}
		}
	}
	return path, leaf, named
}

func splitIndexes(seg string) (string, []string) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, nil
	}
	name := seg[:open]
	var idx []string
	for _, part := range strings.Split(seg[open:], "]") {
		part = strings.TrimPrefix(part, "[")
		if part != "" {
			idx = append(idx, part)
		}
	}
	return name, idx
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

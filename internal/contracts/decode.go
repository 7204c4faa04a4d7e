package contracts

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// field is one decodable key of a contract struct. Anonymous embedded structs are
// flattened, matching encoding/json.
type field struct {
	key    string
	index  []int
	order  int
	def    string
	hasDef bool
}

var fieldCache sync.Map // reflect.Type -> []field

func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}
	var out []field
	collectFields(t, nil, &out)
	for i := range out {
		out[i].order = i
	}
	actual, _ := fieldCache.LoadOrStore(t, out)
	return actual.([]field)
}

func collectFields(t reflect.Type, prefix []int, out *[]field) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		index := append(append([]int{}, prefix...), i)
		tag := sf.Tag.Get("json")
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && tag == "" {
			collectFields(sf.Type, index, out)
			continue
		}
		key := strings.Split(tag, ",")[0]
		if key == "-" {
			continue
		}
		if key == "" {
			key = sf.Name
		}
		def, hasDef := sf.Tag.Lookup("default")
		*out = append(*out, field{key: key, index: index, def: def, hasDef: hasDef})
	}
}

// decoded records which keys were supplied and which failed type conversion.
type decoded struct {
	present    map[string]bool
	typeFailed map[string]bool
	errs       []orderedError
	raw        map[string]json.RawMessage
}

type orderedError struct {
	order int
	err   FieldError
}

func newDecoded() *decoded {
	return &decoded{present: map[string]bool{}, typeFailed: map[string]bool{}}
}

// keys returns the supplied keys in declaration order.
func (d *decoded) keys(fields []field) []string {
	out := make([]string, 0, len(d.present))
	for _, f := range fields {
		if d.present[f.key] {
			out = append(out, f.key)
		}
	}
	return out
}

// suppliedAt reports whether path names a non-null value in the payload. Query values have
// no nesting, so only the top-level key is consulted for them.
func (d *decoded) suppliedAt(path []string) bool {
	if len(path) == 0 || !d.present[path[0]] {
		return false
	}
	if d.raw == nil {
		return true
	}
	cur := d.raw[path[0]]
	for _, seg := range path[1:] {
		switch jsonKind(cur) {
		case "object":
			var obj map[string]json.RawMessage
			if json.Unmarshal(cur, &obj) != nil {
				return false
			}
			next, ok := obj[seg]
			if !ok {
				return false
			}
			cur = next
		case "array":
			var items []json.RawMessage
			i, err := strconv.Atoi(seg)
			if err != nil || json.Unmarshal(cur, &items) != nil || i < 0 || i >= len(items) {
				return false
			}
			cur = items[i]
		default:
			return false
		}
	}
	return jsonKind(cur) != "null"
}

// decodeBody decodes a JSON object into dst one field at a time so a type error on one
// key does not hide errors on the others. JSON null counts as absent.
func decodeBody(data []byte, dst reflect.Value) (*decoded, *FieldError) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		fe := rootError(msgExpectedObject + ", received nothing")
		return nil, &fe
	}
	if !json.Valid(trimmed) {
		fe := rootError("Malformed JSON")
		return nil, &fe
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil || raw == nil {
		fe := rootError(msgExpectedObject + ", received " + jsonKind(trimmed))
		return nil, &fe
	}

	d := newDecoded()
	d.raw = raw
	for _, f := range fieldsOf(dst.Type()) {
		rm, ok := raw[f.key]
		if !ok || jsonKind(rm) == "null" {
			continue
		}
		d.present[f.key] = true
		target := dst.FieldByIndex(f.index)
		if err := json.Unmarshal(rm, target.Addr().Interface()); err != nil {
			target.Set(reflect.Zero(target.Type()))
			d.typeFailed[f.key] = true
			d.errs = append(d.errs, orderedError{order: f.order, err: typeError([]string{f.key}, target.Type(), rm)})
		}
	}
	return d, nil
}

// decodeQuery coerces query-string values into dst. Empty values count as absent.
func decodeQuery(values url.Values, dst reflect.Value) *decoded {
	d := newDecoded()
	for _, f := range fieldsOf(dst.Type()) {
		vals := nonEmpty(values[f.key])
		if len(vals) == 0 {
			continue
		}
		d.present[f.key] = true
		target := dst.FieldByIndex(f.index)
		var err error
		if target.Kind() == reflect.Slice && !implementsText(target) {
			err = setSlice(target, vals)
		} else {
			err = setFromString(target, vals[0])
		}
		if err != nil {
			target.Set(reflect.Zero(target.Type()))
			d.typeFailed[f.key] = true
			d.errs = append(d.errs, orderedError{
				order: f.order,
				err:   FieldError{Path: []string{f.key}, Message: "Expected " + kindName(target.Type()) + ", received string"},
			})
		}
	}
	return d
}

func nonEmpty(vals []string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// applyDefaults fills absent fields from their `default` tag.
func applyDefaults(dst reflect.Value, d *decoded) {
	for _, f := range fieldsOf(dst.Type()) {
		if !f.hasDef || d.present[f.key] {
			continue
		}
		if err := setFromString(dst.FieldByIndex(f.index), f.def); err != nil {
			panic(fmt.Sprintf("contracts: bad default %q for %s.%s: %v", f.def, dst.Type().Name(), f.key, err))
		}
	}
}

var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func implementsText(v reflect.Value) bool {
	return v.CanAddr() && v.Addr().Type().Implements(textUnmarshaler)
}

func setFromString(v reflect.Value, s string) error {
	if v.Kind() == reflect.Pointer {
		elem := reflect.New(v.Type().Elem())
		if err := setFromString(elem.Elem(), s); err != nil {
			return err
		}
		v.Set(elem)
		return nil
	}
	if implementsText(v) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}

func setSlice(v reflect.Value, vals []string) error {
	out := reflect.MakeSlice(v.Type(), len(vals), len(vals))
	for i, s := range vals {
		if err := setFromString(out.Index(i), s); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

// typeError walks raw alongside t down to the innermost value that failed to decode, so
// nested paths carry array indexes the same way validator paths do.
func typeError(path []string, t reflect.Type, raw json.RawMessage) FieldError {
	et := deref(t)
	if !customDecoder(et) {
		switch {
		case (et.Kind() == reflect.Slice || et.Kind() == reflect.Array) && jsonKind(raw) == "array":
			var items []json.RawMessage
			if json.Unmarshal(raw, &items) == nil {
				for i, item := range items {
					if json.Unmarshal(item, reflect.New(et.Elem()).Interface()) != nil {
						return typeError(append(slices.Clone(path), strconv.Itoa(i)), et.Elem(), item)
					}
				}
			}
		case et.Kind() == reflect.Struct && jsonKind(raw) == "object":
			var obj map[string]json.RawMessage
			if json.Unmarshal(raw, &obj) == nil {
				for _, f := range fieldsOf(et) {
					rm, ok := obj[f.key]
					if !ok || jsonKind(rm) == "null" {
						continue
					}
					ft := et.FieldByIndex(f.index).Type
					if json.Unmarshal(rm, reflect.New(ft).Interface()) != nil {
						return typeError(append(slices.Clone(path), f.key), ft, rm)
					}
				}
			}
		}
	}
	return FieldError{Path: path, Message: "Expected " + kindName(t) + ", received " + jsonKind(raw)}
}

var jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

func customDecoder(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshaler) || pt.Implements(textUnmarshaler)
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	}
	return "value"
}

func jsonKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	return "number"
}

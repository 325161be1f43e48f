package dota2api

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is a single field of a decoded payload: a tagged union over the JSON
// value types. The zero Value is null. Accessors return ok=false when the
// value holds another kind.
type Value struct {
	data any
}

func (v Value) Kind() Kind {
	switch v.data.(type) {
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}
	return KindNull
}

func (v Value) Bool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

func (v Value) Float() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok
}

// Int reports the value as an int64. Numbers with a fractional part are not
// integers and return ok=false.
func (v Value) Int() (int64, bool) {
	f, ok := v.data.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func (v Value) Text() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

func (v Value) Object() (*Response, bool) {
	m, ok := v.data.(map[string]any)
	if !ok {
		return nil, false
	}
	return &Response{fields: m}, true
}

func (v Value) Array() ([]Value, bool) {
	raw, ok := v.data.([]any)
	if !ok {
		return nil, false
	}
	items := make([]Value, len(raw))
	for i, item := range raw {
		items[i] = Value{data: item}
	}
	return items, true
}

// Interface returns the underlying decoded value.
func (v Value) Interface() any {
	return v.data
}

// String renders the value for display. It implements fmt.Stringer and is not
// an accessor; use Text for string fields.
func (v Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindString:
		return v.data.(string)
	case KindObject, KindArray:
		buf, err := json.Marshal(v.data)
		if err != nil {
			return fmt.Sprintf("%v", v.data)
		}
		return string(buf)
	}
	return fmt.Sprintf("%v", v.data)
}

// Response presents one decoded JSON payload, already stripped of the Valve
// envelope. All access goes through Get or the typed getters; a field that is
// not present fails with *MissingFieldError, uniformly for every endpoint.
// A Response never mutates the data it wraps.
type Response struct {
	fields map[string]any
}

func newResponse(fields map[string]any) *Response {
	return &Response{fields: fields}
}

// Get returns the named top-level field.
func (r *Response) Get(field string) (Value, error) {
	v, ok := r.fields[field]
	if !ok {
		return Value{}, &MissingFieldError{Field: field}
	}
	return Value{data: v}, nil
}

// Has reports whether the named field is present.
func (r *Response) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Fields returns the names of all top-level fields in sorted order.
func (r *Response) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Response) Bool(field string) (bool, error) {
	v, err := r.Get(field)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, &FieldKindError{Field: field, Want: KindBool, Got: v.Kind()}
	}
	return b, nil
}

func (r *Response) Int(field string) (int64, error) {
	v, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	n, ok := v.Int()
	if !ok {
		return 0, &FieldKindError{Field: field, Want: KindNumber, Got: v.Kind()}
	}
	return n, nil
}

func (r *Response) Float(field string) (float64, error) {
	v, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, &FieldKindError{Field: field, Want: KindNumber, Got: v.Kind()}
	}
	return f, nil
}

func (r *Response) String(field string) (string, error) {
	v, err := r.Get(field)
	if err != nil {
		return "", err
	}
	s, ok := v.Text()
	if !ok {
		return "", &FieldKindError{Field: field, Want: KindString, Got: v.Kind()}
	}
	return s, nil
}

// Object returns a nested object field as a Response of its own.
func (r *Response) Object(field string) (*Response, error) {
	v, err := r.Get(field)
	if err != nil {
		return nil, err
	}
	obj, ok := v.Object()
	if !ok {
		return nil, &FieldKindError{Field: field, Want: KindObject, Got: v.Kind()}
	}
	return obj, nil
}

// Array returns a sequence field as a slice of Values.
func (r *Response) Array(field string) ([]Value, error) {
	v, err := r.Get(field)
	if err != nil {
		return nil, err
	}
	items, ok := v.Array()
	if !ok {
		return nil, &FieldKindError{Field: field, Want: KindArray, Got: v.Kind()}
	}
	return items, nil
}

// Decode unmarshals the payload into a typed struct such as MatchDetails.
func (r *Response) Decode(v any) error {
	buf, err := json.Marshal(r.fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}

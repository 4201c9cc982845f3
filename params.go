package mechdraw

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Params is the flat named-field record a part generator consumes. Values
// arrive from JSON or YAML decoding, so numbers may be float64, int or
// float32; the accessors normalize. Unknown fields are ignored by
// generators; missing required fields fail validation before any drawing
// occurs.
type Params map[string]any

// PartSpec pairs a part-type name with its parameter record.
type PartSpec struct {
	Type       string `json:"type" yaml:"type"`
	Parameters Params `json:"parameters" yaml:"parameters"`
}

// Has reports whether the field is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Float returns the numeric field value. The second result is false when the
// field is absent; a present non-numeric value also reports false.
func (p Params) Float(key string) (float32, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

// FloatDefault returns the numeric field value, or def when the field is
// absent. A caller-supplied value is never overridden.
func (p Params) FloatDefault(key string, def float32) float32 {
	if v, ok := p.Float(key); ok {
		return v
	}
	return def
}

// Int returns the field value as an integer. A fractional numeric value does
// not report ok: counts are either whole or wrong, never truncated.
func (p Params) Int(key string) (int, bool) {
	v, ok := p.Float(key)
	if !ok || v != math32.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// String returns the string field value.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Clone returns a shallow copy so resolved defaults can be merged without
// mutating the caller's record.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Require returns a ParamError unless every named field is present.
func (p Params) Require(part string, fields ...string) error {
	for _, f := range fields {
		if !p.Has(f) {
			return &ParamError{Part: part, Field: f, Reason: "required field missing"}
		}
	}
	return nil
}

// RequireFloat returns the named field as a number or a ParamError naming
// the field.
func (p Params) RequireFloat(part, key string) (float32, error) {
	if !p.Has(key) {
		return 0, &ParamError{Part: part, Field: key, Reason: "required field missing"}
	}
	v, ok := p.Float(key)
	if !ok {
		return 0, &ParamError{Part: part, Field: key, Reason: fmt.Sprintf("not a number: %v", p[key])}
	}
	return v, nil
}

// RequireInt returns the named field as a whole number or a ParamError
// naming the field. Fractional values are rejected, not truncated.
func (p Params) RequireInt(part, key string) (int, error) {
	v, err := p.RequireFloat(part, key)
	if err != nil {
		return 0, err
	}
	if v != math32.Trunc(v) {
		return 0, &ParamError{Part: part, Field: key, Reason: fmt.Sprintf("must be a whole number, got %g", v)}
	}
	return int(v), nil
}

// RequirePositive returns the named field as a strictly positive number or a
// ParamError naming the field and the violated constraint.
func (p Params) RequirePositive(part, key string) (float32, error) {
	v, err := p.RequireFloat(part, key)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &ParamError{Part: part, Field: key, Reason: fmt.Sprintf("must be greater than 0, got %g", v)}
	}
	return v, nil
}

// Package validation is a small field-rule validator for JSON request
// bodies. It accumulates one human-readable message per field instead of
// failing fast, so a response can report every bad field at once.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type StringRules struct {
	Required bool
	Min      int // minimum length, 0 = unchecked
	Max      int // maximum length, 0 = unchecked
}

type NumberRules struct {
	Required bool
	Min      *float64
	Max      *float64
}

type BoolRules struct {
	Required bool
}

type ArrayRules struct {
	Required bool
	MinItems int
}

// Num is a shorthand for numeric bound literals.
func Num(f float64) *float64 { return &f }

type Validator struct {
	data   map[string]interface{}
	errors map[string]string
}

func New(data map[string]interface{}) *Validator {
	return &Validator{data: data, errors: map[string]string{}}
}

// Error makes a failed validator usable as an error value; the envelope
// formatter picks the field details up through Errors().
func (v *Validator) Error() string { return "Validation failed" }

func (v *Validator) Errors() map[string]string { return v.errors }

func (v *Validator) Valid() bool { return len(v.errors) == 0 }

func (v *Validator) String(field string, r StringRules) *Validator {
	val, present := v.data[field]
	if r.Required && (!present || val == nil || val == "") {
		v.errors[field] = field + " is required"
		return v
	}
	// Falsy non-required values skip every later check.
	if !present || falsy(val) {
		return v
	}
	s, ok := val.(string)
	switch {
	case !ok:
		v.errors[field] = field + " must be a string"
	case r.Min > 0 && utf8.RuneCountInString(s) < r.Min:
		v.errors[field] = fmt.Sprintf("%s must be at least %d characters", field, r.Min)
	case r.Max > 0 && utf8.RuneCountInString(s) > r.Max:
		v.errors[field] = fmt.Sprintf("%s must be at most %d characters", field, r.Max)
	}
	return v
}

func (v *Validator) Number(field string, r NumberRules) *Validator {
	val, present := v.data[field]
	if r.Required && (!present || val == nil) {
		v.errors[field] = field + " is required"
		return v
	}
	if !present || val == nil {
		return v
	}
	n, ok := toNumber(val)
	switch {
	case !ok:
		v.errors[field] = field + " must be a number"
	case n == 0:
		// Zero is treated as unset for bounds purposes; the checks below
		// never run for it. Callers relying on a positive minimum must not
		// assume zero gets rejected.
	case r.Min != nil && n < *r.Min:
		v.errors[field] = fmt.Sprintf("%s must be at least %v", field, *r.Min)
	case r.Max != nil && n > *r.Max:
		v.errors[field] = fmt.Sprintf("%s must be at most %v", field, *r.Max)
	}
	return v
}

func (v *Validator) Boolean(field string, r BoolRules) *Validator {
	val, present := v.data[field]
	if r.Required && (!present || val == nil) {
		v.errors[field] = field + " is required"
		return v
	}
	if !present || val == nil {
		return v
	}
	if _, ok := val.(bool); !ok {
		v.errors[field] = field + " must be a boolean"
	}
	return v
}

func (v *Validator) Array(field string, r ArrayRules) *Validator {
	val, present := v.data[field]
	arr, isArr := val.([]interface{})
	if r.Required && (!present || val == nil || !isArr) {
		v.errors[field] = field + " is required and must be an array"
		return v
	}
	if !present || falsy(val) {
		return v
	}
	switch {
	case !isArr:
		v.errors[field] = field + " must be an array"
	case r.MinItems > 0 && len(arr) < r.MinItems:
		v.errors[field] = fmt.Sprintf("%s must have at least %d items", field, r.MinItems)
	}
	return v
}

func (v *Validator) Email(field string, r BoolRules) *Validator {
	val, present := v.data[field]
	if r.Required && (!present || val == nil || val == "") {
		v.errors[field] = field + " is required"
		return v
	}
	if !present || falsy(val) {
		return v
	}
	s, ok := val.(string)
	if !ok || !emailRe.MatchString(s) {
		v.errors[field] = field + " must be a valid email"
	}
	return v
}

func (v *Validator) Enum(field string, values []string, r BoolRules) *Validator {
	val, present := v.data[field]
	if r.Required && (!present || val == nil) {
		v.errors[field] = field + " is required"
		return v
	}
	if !present || falsy(val) {
		return v
	}
	s, ok := val.(string)
	if ok {
		for _, allowed := range values {
			if s == allowed {
				return v
			}
		}
	}
	v.errors[field] = fmt.Sprintf("%s must be one of: %s", field, strings.Join(values, ", "))
	return v
}

// falsy mirrors loose truthiness: nil, empty string, zero and false all
// count as unset.
func falsy(val interface{}) bool {
	switch x := val.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	}
	if n, ok := toNumber(val); ok {
		return n == 0
	}
	return false
}

func toNumber(val interface{}) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

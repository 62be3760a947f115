// Package validation provides pure pre-submission validators. Validators run
// entirely client-side: no network access, no side effects. Every form
// validator returns a Result whose Errors map is keyed by input field name.
package validation

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Result is the outcome of validating a form.
type Result struct {
	Errors map[string]string
}

// Valid reports whether validation passed.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Validator is a function that validates a string value and returns an error
// message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty.
func Required(message string) Validator {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return message
		}
		return ""
	}
}

// MinLen validates that a field has at least minLen characters.
// Uses rune count for proper Unicode support.
func MinLen(minLen int, message string) Validator {
	return func(v string) string {
		if utf8.RuneCountInString(v) < minLen {
			return message
		}
		return ""
	}
}

// EmailSuffix validates that a non-empty value ends with the given domain
// suffix (e.g. "@stud.noroff.no").
func EmailSuffix(suffix, message string) Validator {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if !strings.HasSuffix(strings.TrimSpace(v), suffix) {
			return message
		}
		return ""
	}
}

// WebURL validates that a non-empty value parses as an absolute http(s) URL.
func WebURL(message string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		p, err := url.Parse(v)
		if err != nil || (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
			return message
		}
		return ""
	}
}

// FieldValidator accumulates field-keyed validation errors.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, seen := fv.errors[field]; seen {
		return fv
	}
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Fail records an error message for a field directly, keeping the first
// message when the field already failed.
func (fv *FieldValidator) Fail(field, message string) *FieldValidator {
	if _, seen := fv.errors[field]; !seen {
		fv.errors[field] = message
	}
	return fv
}

// Result returns the accumulated validation outcome.
func (fv *FieldValidator) Result() Result {
	return Result{Errors: fv.errors}
}

// dateOrderOK reports whether to is strictly after from.
func dateOrderOK(from, to time.Time) bool {
	return to.After(from)
}

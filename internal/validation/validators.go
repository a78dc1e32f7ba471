// Package validation provides small composable field validators shared by
// browser forms and the account service.
package validation

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies why a value failed validation.
type Kind string

const (
	// LengthError means the value is shorter or longer than allowed.
	LengthError Kind = "length"
	// FormatError means the value does not have the expected syntax.
	FormatError Kind = "format"
	// RequiredError means the value is missing.
	RequiredError Kind = "required"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Rule pairs a Validator with the Kind reported when it fails.
type Rule struct {
	Kind  Kind
	Check Validator
}

// Required fails with RequiredError when the value is blank.
func Required(fieldName string) Rule {
	return Rule{Kind: RequiredError, Check: func(v string) string {
		if strings.TrimSpace(v) == "" {
			return fieldName + " is required."
		}
		return ""
	}}
}

// MinLength fails with LengthError when v has fewer than n characters.
// Characters are counted as runes; the value is not trimmed.
func MinLength(n int, message string) Rule {
	return Rule{Kind: LengthError, Check: func(v string) string {
		if utf8.RuneCountInString(v) < n {
			return message
		}
		return ""
	}}
}

// MaxLength fails with LengthError when v has more than n characters (runes).
func MaxLength(n int, message string) Rule {
	return Rule{Kind: LengthError, Check: func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return message
		}
		return ""
	}}
}

// MaxBytes fails with LengthError when v is longer than n bytes. Use it for
// limits imposed by byte-oriented consumers such as bcrypt.
func MaxBytes(n int, message string) Rule {
	return Rule{Kind: LengthError, Check: func(v string) string {
		if len(v) > n {
			return message
		}
		return ""
	}}
}

// Email fails with FormatError unless v is a bare, syntactically valid address.
func Email(message string) Rule {
	return Rule{Kind: FormatError, Check: func(v string) string {
		if !IsEmail(v) {
			return message
		}
		return ""
	}}
}

// IsEmail reports whether v is a bare address ("local@example.com") with a
// dotted domain whose last label is at least two letters.
func IsEmail(v string) bool {
	if v == "" || strings.ContainsAny(v, " \t\r\n<>") {
		return false
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != v {
		return false
	}
	at := strings.LastIndexByte(v, '@')
	if at <= 0 {
		return false
	}
	return validDomain(v[at+1:])
}

func validDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if utf8.RuneCountInString(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Violation is a single failed rule for a field.
type Violation struct {
	Kind    Kind
	Message string
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	violations map[string]Violation
	order      []string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{violations: make(map[string]Violation)}
}

// Validate checks a field against one or more rules.
// It stops at the first failing rule for each field.
func (fv *FieldValidator) Validate(field, value string, rules ...Rule) *FieldValidator {
	if _, seen := fv.violations[field]; seen {
		return fv
	}
	for _, rule := range rules {
		if msg := rule.Check(value); msg != "" {
			fv.violations[field] = Violation{Kind: rule.Kind, Message: msg}
			fv.order = append(fv.order, field)
			break
		}
	}
	return fv
}

// Valid reports whether no rule failed.
func (fv *FieldValidator) Valid() bool {
	return len(fv.violations) == 0
}

// Violations returns the accumulated violations keyed by field.
func (fv *FieldValidator) Violations() map[string]Violation {
	return fv.violations
}

// Fields returns the failing fields in the order they were validated.
func (fv *FieldValidator) Fields() []string {
	return fv.order
}

// Errors returns the accumulated messages keyed by field.
func (fv *FieldValidator) Errors() map[string]string {
	out := make(map[string]string, len(fv.violations))
	for field, v := range fv.violations {
		out[field] = v.Message
	}
	return out
}

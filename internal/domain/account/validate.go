package account

import "github.com/target/chat-portal/internal/validation"

const (
	MinUsernameLength = 5
	MaxUsernameLength = 64
	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72

	MsgUsernameLength  = "Username must be at least 5 characters."
	MsgUsernameTooLong = "Username must be at most 64 characters."
	MsgEmailFormat     = "Please enter a valid email address."
	MsgPasswordLength  = "Password must be at least 8 characters."
	MsgPasswordTooLong = "Password must be at most 72 bytes."
)

// Violation describes why a single field failed.
type Violation = validation.Violation

// Violations maps failing fields to their violation. An empty set means valid.
type Violations map[Field]Violation

// Valid reports whether there are no violations.
func (v Violations) Valid() bool { return len(v) == 0 }

// Messages returns field name -> message, the shape templates render.
func (v Violations) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for field, violation := range v {
		out[string(field)] = violation.Message
	}
	return out
}

// First returns the earliest failing field in form order.
func (v Violations) First() (Field, Violation, bool) {
	for _, f := range Fields() {
		if violation, ok := v[f]; ok {
			return f, violation, true
		}
	}
	return "", Violation{}, false
}

type fieldSchema struct {
	field Field
	rules []validation.Rule
}

//nolint:gochecknoglobals // static read-only schema
var credentialsSchema = []fieldSchema{
	{field: FieldUsername, rules: []validation.Rule{
		validation.MinLength(MinUsernameLength, MsgUsernameLength),
		validation.MaxLength(MaxUsernameLength, MsgUsernameTooLong),
	}},
	{field: FieldEmail, rules: []validation.Rule{validation.Email(MsgEmailFormat)}},
	{field: FieldPassword, rules: []validation.Rule{
		validation.MinLength(MinPasswordLength, MsgPasswordLength),
		validation.MaxBytes(MaxPasswordBytes, MsgPasswordTooLong),
	}},
}

// Validate checks a draft against the credentials schema.
func Validate(c Credentials) Violations {
	fv := validation.New()
	for _, s := range credentialsSchema {
		fv.Validate(string(s.field), c.Value(s.field), s.rules...)
	}

	out := make(Violations, len(fv.Violations()))
	for field, violation := range fv.Violations() {
		out[Field(field)] = violation
	}
	return out
}

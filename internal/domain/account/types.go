// Package account holds the credential, form and result types shared by the
// login screen, the auth gateway client and the dev gateway service.
package account

// Field names a credential input. Values match the HTML form field names.
type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the credential fields in form order.
func Fields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword}
}

// Credentials is the draft a visitor types into the login/register form.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Value returns the draft value for f.
func (c Credentials) Value(f Field) string {
	switch f {
	case FieldUsername:
		return c.Username
	case FieldEmail:
		return c.Email
	case FieldPassword:
		return c.Password
	default:
		return ""
	}
}

// IsEmpty reports whether every field of the draft is blank.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" && c.Email == "" && c.Password == ""
}

// User is the account record returned by the auth service.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// AuthResult is the outcome of a create-user call.
type AuthResult struct {
	Success bool  `json:"success"`
	User    *User `json:"user,omitempty"`
}

// NoticeVariant selects toast styling.
type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a toast shown on the global notification surface.
type Notice struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     NoticeVariant `json:"variant,omitempty"`
}

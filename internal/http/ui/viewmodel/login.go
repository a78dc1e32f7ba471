package viewmodel

import (
	"time"

	"github.com/target/chat-portal/internal/domain/account"
)

// LoginForm is the login/register form as templates see it. The password is
// never echoed back.
type LoginForm struct {
	Mode     string
	IsLogin  bool
	Copy     account.Copy
	Username string
	Email    string
	Errors   map[string]string
}

// NewLoginForm converts the form state for rendering.
func NewLoginForm(f account.Form) LoginForm {
	return LoginForm{
		Mode:     f.Mode.String(),
		IsLogin:  f.Mode.IsLogin(),
		Copy:     f.Mode.Copy(),
		Username: f.Draft.Username,
		Email:    f.Draft.Email,
		Errors:   f.Messages(),
	}
}

// Error returns the message for field, or "".
func (f LoginForm) Error(field string) string {
	return f.Errors[field]
}

// LoginPage is the data for the login screen.
type LoginPage struct {
	Layout
	Form LoginForm
}

// LayoutData implements LayoutProvider.
func (p *LoginPage) LayoutData() *Layout { return &p.Layout }

// PrototypePage is the data for the create-user prototype screen.
type PrototypePage struct {
	Layout
	Demo      account.Credentials
	Called    bool
	Errors    map[string]string
	Result    account.AuthResult
	Error     string
	ErrorCode string
	Duration  time.Duration
}

// LayoutData implements LayoutProvider.
func (p *PrototypePage) LayoutData() *Layout { return &p.Layout }

// HomePage is the data for the landing page.
type HomePage struct {
	Layout
}

// LayoutData implements LayoutProvider.
func (p *HomePage) LayoutData() *Layout { return &p.Layout }

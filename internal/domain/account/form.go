package account

// HomePath is where a successful submit navigates to.
const HomePath = "/"

// Mode is the state of the login/register form. It has exactly two cases
// that share one validation and submit pipeline.
type Mode uint8

const (
	ModeLogin Mode = iota
	ModeRegister
)

// ModeFromFlag maps the caller's isLogin flag to a Mode.
func ModeFromFlag(isLogin bool) Mode {
	if isLogin {
		return ModeLogin
	}
	return ModeRegister
}

// ParseMode maps "login"/"register" to a Mode. Anything else is Login.
func ParseMode(s string) Mode {
	if s == "register" {
		return ModeRegister
	}
	return ModeLogin
}

// String returns the form value used for the mode.
func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// IsLogin reports whether m is the Login case.
func (m Mode) IsLogin() bool { return m != ModeRegister }

// Other returns the opposite case.
func (m Mode) Other() Mode {
	if m == ModeRegister {
		return ModeLogin
	}
	return ModeRegister
}

// Notice returns the toast emitted after a successful submit in this mode.
func (m Mode) Notice() Notice {
	if m == ModeRegister {
		return Notice{
			Title:       "Account created",
			Description: "Your account has been created successfully, now you need to confirm your email address.",
			Variant:     NoticeDefault,
		}
	}
	return Notice{
		Title:       "Logged in",
		Description: "You have been logged in successfully.",
		Variant:     NoticeDefault,
	}
}

// Copy is the per-mode text shown on the form.
type Copy struct {
	Heading      string
	SubmitLabel  string
	TogglePrompt string
	ToggleLabel  string
}

// Copy returns the presentation text for m.
func (m Mode) Copy() Copy {
	if m == ModeRegister {
		return Copy{
			Heading:      "Create new account",
			SubmitLabel:  "Register",
			TogglePrompt: "Already have an account?",
			ToggleLabel:  "Login",
		}
	}
	return Copy{
		Heading:      "Login into system",
		SubmitLabel:  "Login",
		TogglePrompt: "Don't have an account?",
		ToggleLabel:  "Register",
	}
}

// Form is the login/register view state: the current mode, the draft and
// the violations from the last submit.
type Form struct {
	Mode       Mode
	Draft      Credentials
	Violations Violations
}

// Outcome is what a successful submit asks the caller to do.
type Outcome struct {
	Notice   Notice
	Redirect string
}

// NewForm returns an empty form in the mode selected by isLogin.
func NewForm(isLogin bool) Form {
	return Form{Mode: ModeFromFlag(isLogin)}
}

// Toggle switches to the other mode and clears the draft and all messages.
func (f Form) Toggle() Form {
	return Form{Mode: f.Mode.Other()}
}

// Submit validates the draft. When any field fails it returns the form with
// violations set and ok=false; the caller must not navigate. Otherwise it
// returns the mode's notice and the home redirect.
func (f Form) Submit() (Form, Outcome, bool) {
	f.Violations = Validate(f.Draft)
	if !f.Violations.Valid() {
		return f, Outcome{}, false
	}
	return f, Outcome{Notice: f.Mode.Notice(), Redirect: HomePath}, true
}

// Messages returns field name -> message for rendering.
func (f Form) Messages() map[string]string {
	return f.Violations.Messages()
}

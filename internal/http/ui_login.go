package httpx

import (
	"net/http"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/http/ui/viewmodel"
	"github.com/target/chat-portal/internal/service"
)

// loginFormTemplate is the fragment swapped into #login-form.
const loginFormTemplate = "login-form"

func loginURL(mode account.Mode) string {
	if mode.IsLogin() {
		return "/login"
	}
	return "/login?mode=" + mode.String()
}

func (h *UIHandlers) loginPage(r *http.Request, form account.Form) *viewmodel.LoginPage {
	heading := form.Mode.Copy().Heading
	return &viewmodel.LoginPage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       pageTitle(heading),
			PageTitle:   heading,
			CurrentPage: PageLogin,
		}),
		Form: viewmodel.NewLoginForm(form),
	}
}

// renderLoginForm swaps only the form for htmx requests aimed at it and
// renders the whole screen otherwise.
func (h *UIHandlers) renderLoginForm(w http.ResponseWriter, r *http.Request, form account.Form, status int) {
	page := h.loginPage(r, form)
	if WantsPartial(r) && HXTarget(r) == loginFormTarget {
		h.renderFragment(w, r, loginFormTemplate, page, status)
		return
	}
	h.renderPage(w, r, page, status)
}

// LoginPage renders the form. The initial mode comes from ?mode=register;
// anything else is Login.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	mode := account.ParseMode(r.URL.Query().Get("mode"))
	h.renderLoginForm(w, r, account.NewForm(mode.IsLogin()), http.StatusOK)
}

// LoginToggle switches the form to the other mode. The draft and every
// message are cleared whatever was posted.
func (h *UIHandlers) LoginToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	current := account.Form{Mode: account.ParseMode(r.PostFormValue("mode"))}
	next := h.Login.Toggle(current)

	if IsHTMX(r) {
		HTMX(w).PushURL(loginURL(next.Mode))
	}
	h.renderLoginForm(w, r, next, http.StatusOK)
}

// LoginSubmit validates the posted draft. A blocked submit re-renders the
// form with inline messages and 422; a valid one queues the mode's notice
// and navigates home.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	inbox, _ := InboxFromContext(r.Context())
	res := h.Login.Submit(r.Context(), service.SubmitInput{
		Form: account.Form{
			Mode:  account.ParseMode(r.PostFormValue("mode")),
			Draft: postedCredentials(r),
		},
		Inbox: inbox,
	})

	if !res.OK {
		h.renderLoginForm(w, r, res.Form, http.StatusUnprocessableEntity)
		return
	}

	Redirect(w, r, res.Outcome.Redirect)
}

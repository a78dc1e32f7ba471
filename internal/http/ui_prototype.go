package httpx

import (
	"net/http"

	"github.com/target/chat-portal/internal/domain/account"
	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/http/ui/viewmodel"
	"github.com/target/chat-portal/internal/service"
)

// prototypeJSON is the non-browser view of a prototype run.
type prototypeJSON struct {
	Called     bool              `json:"called"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	Errors     map[string]string `json:"errors,omitempty"`
	Success    bool              `json:"success"`
	UserID     string            `json:"user_id,omitempty"`
	Error      string            `json:"error,omitempty"`
	ErrorCode  string            `json:"error_code,omitempty"`
	DurationMS int64             `json:"duration_ms"`
}

// PrototypeCreateUser issues one CreateUser call with the demo credentials
// per page load and shows the result.
func (h *UIHandlers) PrototypeCreateUser(w http.ResponseWriter, r *http.Request) {
	run := h.Prototype.Run(r.Context())

	if !IsBrowserRequest(r) {
		h.writePrototypeJSON(w, run)
		return
	}

	page := &viewmodel.PrototypePage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       pageTitle("Create user prototype"),
			PageTitle:   "Create user prototype",
			CurrentPage: PagePrototype,
		}),
		Demo:     run.Demo,
		Called:   run.Called(),
		Errors:   run.Violations.Messages(),
		Result:   run.Result,
		Duration: run.Duration,
	}
	page.Demo.Password = ""
	if run.Err != nil {
		page.Error = run.Err.Error()
		page.ErrorCode = string(apperrors.GetCode(run.Err))
	}
	if WantsPartial(r) {
		HTMX(w).Toast(prototypeNotice(run))
	}
	h.renderPage(w, r, page, http.StatusOK)
}

func prototypeNotice(run service.PrototypeRun) account.Notice {
	switch {
	case !run.Called():
		return account.Notice{
			Title:       "Create user skipped",
			Description: "The demo credentials did not pass validation.",
			Variant:     account.NoticeDestructive,
		}
	case run.Err != nil:
		return account.Notice{Title: "Create user failed", Description: run.Err.Error(), Variant: account.NoticeDestructive}
	default:
		return account.Notice{Title: "Create user succeeded", Variant: account.NoticeDefault}
	}
}

func (h *UIHandlers) writePrototypeJSON(w http.ResponseWriter, run service.PrototypeRun) {
	body := prototypeJSON{
		Called:   run.Called(),
		Username:   run.Demo.Username,
		Email:      run.Demo.Email,
		Errors:   run.Violations.Messages(),
		Success:    run.Result.Success,
		DurationMS: run.Duration.Milliseconds(),
	}
	if run.Result.User != nil {
		body.UserID = run.Result.User.ID
	}

	status := http.StatusOK
	switch {
	case !run.Called():
		status = http.StatusUnprocessableEntity
	case run.Err != nil:
		status = StatusForError(run.Err)
		body.Error = run.Err.Error()
		body.ErrorCode = string(apperrors.GetCode(run.Err))
	}
	WriteJSON(w, status, body)
}

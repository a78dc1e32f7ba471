package httpx

import (
	"errors"
	"net/http"

	"github.com/target/chat-portal/internal/domain/ui"
)

// EventThemeChanged tells the client to swap its palette without a reload.
const EventThemeChanged = "themeChanged"

// ToggleTheme flips dark and light (system becomes light), or sets the
// posted theme when one is given, then sends the visitor back.
func (h *UIHandlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	next := ThemeFromContext(r.Context()).Toggle()
	if requested := r.PostFormValue("theme"); requested != "" {
		parsed, ok := ui.ParseTheme(requested)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_theme",
				Err:     &ui.UnknownThemeError{Value: requested},
			})
			return
		}
		next = parsed
	}

	if err := h.Themes.Save(w, r, next); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrCookieTooLarge) {
			code = http.StatusBadRequest
		}
		h.logger().Error("failed to save theme", "error", err)
		WriteError(w, ErrorParams{Code: code, ErrCode: "theme_not_saved", Err: err})
		return
	}

	if IsHTMX(r) {
		HTMX(w).Trigger(EventThemeChanged, map[string]any{"theme": string(next), "dark": next.IsDark()})
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

package httpx

import (
	"errors"
	"net/http"
)

// NotFound renders an HTML 404 page for browsers and a JSON error otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) || h.T == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}

	theme := ThemeFromContext(r.Context())
	data := map[string]any{
		"Title":   pageTitle("Page Not Found"),
		"Code":    "404",
		"Message": "The page you're looking for doesn't exist.",
		"Theme":   string(theme),
		"IsDark":  theme.IsDark(),
	}

	rec := &bufferedResponse{header: w.Header()}
	if err := h.T.RenderError(rec, r, data); err != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	if _, err := w.Write(rec.body); err != nil {
		h.logger().Error("failed to write not found page", "error", err)
	}
}

const healthResponse = `{"status":"ok"}`

// healthHandler answers readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(healthResponse))
}

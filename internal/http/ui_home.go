package httpx

import (
	"net/http"

	"github.com/target/chat-portal/internal/http/ui/viewmodel"
)

// Home renders the landing page. Notices queued by a successful login or
// registration are drained and shown here.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	page := &viewmodel.HomePage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       appName,
			PageTitle:   "Home",
			CurrentPage: PageHome,
		}),
	}
	h.renderPage(w, r, page, http.StatusOK)
}

package httpx

// CurrentPage identifiers used by handlers, templates and navigation.
const (
	PageHome      = "home"
	PageLogin     = "login"
	PagePrototype = "prototype"
)

const appName = "Chat Portal"

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates" // from internal/http
)

// loginFormTarget is the element id htmx swaps on toggle and failed submits.
const loginFormTarget = "login-form"

//nolint:gochecknoglobals // static read-only lookup
var contentTemplates = map[string]string{
	PageHome:      "home-content",
	PageLogin:     "login-content",
	PagePrototype: "prototype-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages fall back to home-content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "home-content"
}

func pageTitle(page string) string {
	return page + " - " + appName
}

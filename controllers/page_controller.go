package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gitea.com/go-chi/session"
)

// PageController serves the pages without data of their own
type PageController struct{}

// NewPageController creates a new page controller
func NewPageController() *PageController {
	return &PageController{}
}

// ComingSoon handles the profile, settings and resources placeholders
func (c *PageController) ComingSoon(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		pageData
		Message string
	}{
		pageData: newPage(r),
		Message:  "This section is coming soon.",
	}

	renderTemplate(w, "placeholder", "placeholder.html", templateData)
}

// ToggleSidebar handles POST /sidebar/toggle
func (c *PageController) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	collapsed := isSidebarCollapsed(r)
	if sess := session.GetSession(r); sess != nil {
		sess.Set(sidebarCollapsedKey, strconv.FormatBool(!collapsed))
	}

	http.Redirect(w, r, sameSiteReferer(r, "/dashboard"), http.StatusSeeOther)
}

// sameSiteReferer returns the path and query of the Referer header, or
// fallback when the referer is missing or points at another host.
func sameSiteReferer(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

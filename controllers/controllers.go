package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/services"
	"github.com/hirecentive/dashboard/templates"
	"github.com/hirecentive/dashboard/userctx"
)

// Session keys
const (
	flashTypeKey        = "flash_type"
	flashMessageKey     = "flash_message"
	sidebarCollapsedKey = "sidebar_collapsed"
)

// decoder maps form and query values onto tagged structs
var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// pageData is the part of every page the layout reads
type pageData struct {
	Title            string
	CurrentPage      string
	Navigation       []models.NavItem
	Flash            *models.FlashMessage
	SidebarCollapsed bool
	Operator         string
}

// newPage builds the layout data for r and consumes any pending flash message
func newPage(r *http.Request) pageData {
	return pageData{
		Title:            models.PageTitle(r.URL.Path),
		CurrentPage:      r.URL.Path,
		Navigation:       models.Navigation,
		Flash:            popFlash(r),
		SidebarCollapsed: isSidebarCollapsed(r),
		Operator:         userctx.GetOperator(r.Context()),
	}
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl := template.New(templateName)
	tmpl.Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"eq":  func(a, b interface{}) bool { return a == b },
	})

	// Parse layout and page template
	_, err := tmpl.ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template does not leave a half-written page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// setFlash stores a message for the next rendered page
func setFlash(r *http.Request, flashType, message string) {
	sess := session.GetSession(r)
	if sess == nil {
		return
	}
	sess.Set(flashTypeKey, flashType)
	sess.Set(flashMessageKey, message)
}

// popFlash returns and clears the pending flash message
func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	message, _ := sess.Get(flashMessageKey).(string)
	if message == "" {
		return nil
	}
	flashType, _ := sess.Get(flashTypeKey).(string)
	sess.Delete(flashTypeKey)
	sess.Delete(flashMessageKey)
	return &models.FlashMessage{Type: flashType, Message: message}
}

func isSidebarCollapsed(r *http.Request) bool {
	sess := session.GetSession(r)
	if sess == nil {
		return false
	}
	collapsed, _ := sess.Get(sidebarCollapsedKey).(string)
	return collapsed == "true"
}

// Controllers holds all controller instances
type Controllers struct {
	Dashboard   *DashboardController
	Influencers *InfluencerController
	Logs        *LogController
	Pages       *PageController
	API         *APIController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		Dashboard:   NewDashboardController(services, logger),
		Influencers: NewInfluencerController(services, logger),
		Logs:        NewLogController(services, logger),
		Pages:       NewPageController(),
		API:         NewAPIController(services, logger),
	}
}

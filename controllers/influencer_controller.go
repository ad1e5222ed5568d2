package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
	"github.com/hirecentive/dashboard/services"
)

const influencersPath = "/dashboard/influencers"

var influencerColumns = []columnDef{
	{key: "name", label: "Name", sortable: true},
	{key: "email", label: "Contact", sortable: true},
	{key: "platform", label: "Platform", sortable: true},
	{key: "followers", label: "Followers", sortable: true},
	{key: "engagement", label: "Engagement", sortable: true},
	{key: "location", label: "Location", sortable: true},
	{key: "category", label: "Categories"},
	{key: "join_date", label: "Join Date", sortable: true},
	{key: "status", label: "Status", sortable: true},
}

// InfluencerController handles influencer management requests
type InfluencerController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewInfluencerController creates a new influencer controller
func NewInfluencerController(services *services.Services, logger *zap.Logger) *InfluencerController {
	return &InfluencerController{
		services: services,
		logger:   logger,
	}
}

type influencerPage struct {
	pageData
	Influencers []models.Influencer
	Total       int
	Query       datatable.Query
	Columns     []sortColumn
	Platforms   []models.Platform
	Statuses    []models.InfluencerStatus
	Categories  []string
	Dialog      models.DialogState
	Form        *models.InfluencerForm
	Errors      models.ValidationErrors
	ReturnQuery string
	AddHref     string
	CancelHref  string
}

// Index handles GET /dashboard/influencers
func (c *InfluencerController) Index(w http.ResponseWriter, r *http.Request) {
	params := decodeListParams(r.URL.Query())
	dialog := models.DialogFromParam(params.Dialog)
	c.render(w, r, http.StatusOK, params.influencerQuery(), dialog, &models.InfluencerForm{}, nil)
}

// Create handles POST /dashboard/influencers
func (c *InfluencerController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.InfluencerForm{}
	if err := decoder.Decode(form, r.PostForm); err != nil {
		http.Error(w, "Failed to decode form: "+err.Error(), http.StatusBadRequest)
		return
	}
	back := returnValues(r.PostForm.Get("return"))

	influencer, err := c.services.Influencers.Create(r.Context(), form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			// Keep the dialog open with what the operator typed
			params := decodeListParams(back)
			dialog := models.DialogOpen.Submit(err)
			c.render(w, r, http.StatusBadRequest, params.influencerQuery(), dialog, form, verrs)
			return
		}
		c.logger.Error("failed to create influencer", zap.Error(err))
		http.Error(w, "Failed to create influencer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	setFlash(r, "success", fmt.Sprintf("Influencer %s added", influencer.Name))
	http.Redirect(w, r, withQuery(influencersPath, back), http.StatusSeeOther)
}

// Toggle handles POST /dashboard/influencers/{id}/toggle
func (c *InfluencerController) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	back := returnValues(r.PostForm.Get("return"))

	id := chi.URLParam(r, "id")
	influencer, err := c.services.Influencers.ToggleStatus(r.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		setFlash(r, "error", "Influencer not found")
	case err != nil:
		c.logger.Error("failed to toggle influencer status", zap.String("id", id), zap.Error(err))
		http.Error(w, "Failed to update influencer: "+err.Error(), http.StatusInternalServerError)
		return
	default:
		setFlash(r, "success", fmt.Sprintf("%s is now %s", influencer.Name, influencer.Status))
	}

	http.Redirect(w, r, withQuery(influencersPath, back), http.StatusSeeOther)
}

func (c *InfluencerController) render(w http.ResponseWriter, r *http.Request, status int, q datatable.Query, dialog models.DialogState, form *models.InfluencerForm, verrs models.ValidationErrors) {
	view, err := c.services.Influencers.List(r.Context(), q)
	if err != nil {
		c.logger.Error("failed to list influencers", zap.Error(err))
		http.Error(w, "Failed to load influencers: "+err.Error(), http.StatusInternalServerError)
		return
	}
	all, err := c.services.Influencers.List(r.Context(), datatable.Query{})
	if err != nil {
		c.logger.Error("failed to count influencers", zap.Error(err))
		http.Error(w, "Failed to load influencers: "+err.Error(), http.StatusInternalServerError)
		return
	}

	values := q.Values()
	addValues := cloneValues(values)
	addValues.Set("dialog", "new")

	templateData := influencerPage{
		pageData:    newPage(r),
		Influencers: view,
		Total:       len(all),
		Query:       q,
		Columns:     sortColumns(influencersPath, q, influencerColumns),
		Platforms:   models.Platforms,
		Statuses:    models.InfluencerStatuses,
		Categories:  models.InfluencerCategories,
		Dialog:      dialog,
		Form:        form,
		Errors:      verrs,
		ReturnQuery: values.Encode(),
		AddHref:     withQuery(influencersPath, addValues),
		CancelHref:  withQuery(influencersPath, values),
	}

	if err := renderTemplateWithStatus(w, status, "influencers", "influencers.html", templateData); err != nil {
		c.logger.Error("failed to render influencers", zap.Error(err))
	}
}

func cloneValues(values url.Values) url.Values {
	clone := make(url.Values, len(values))
	for key, vals := range values {
		clone[key] = append([]string(nil), vals...)
	}
	return clone
}

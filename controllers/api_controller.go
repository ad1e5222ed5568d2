package controllers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
	"github.com/hirecentive/dashboard/services"
)

// maxBodyBytes bounds API request bodies
const maxBodyBytes = 1 << 20

// APIController serves the JSON API under /api/v1
type APIController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewAPIController creates a new API controller
func NewAPIController(services *services.Services, logger *zap.Logger) *APIController {
	return &APIController{
		services: services,
		logger:   logger,
	}
}

type listResponse[T any] struct {
	Data  []T             `json:"data"`
	Count int             `json:"count"`
	Query datatable.Query `json:"query"`
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields models.ValidationErrors `json:"fields,omitempty"`
}

// ListInfluencers handles GET /api/v1/influencers
func (c *APIController) ListInfluencers(w http.ResponseWriter, r *http.Request) {
	q := decodeListParams(r.URL.Query()).influencerQuery()
	view, err := c.services.Influencers.List(r.Context(), q)
	if err != nil {
		c.internalError(w, "failed to list influencers", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[models.Influencer]{Data: view, Count: len(view), Query: q})
}

// CreateInfluencer handles POST /api/v1/influencers. It accepts a JSON body
// or a urlencoded form with the same field names.
func (c *APIController) CreateInfluencer(w http.ResponseWriter, r *http.Request) {
	form := &models.InfluencerForm{}
	if err := decodeBody(w, r, form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	influencer, err := c.services.Influencers.Create(r.Context(), form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verrs})
			return
		}
		c.internalError(w, "failed to create influencer", err)
		return
	}
	writeJSON(w, http.StatusCreated, influencer)
}

// ToggleInfluencer handles POST /api/v1/influencers/{id}/toggle
func (c *APIController) ToggleInfluencer(w http.ResponseWriter, r *http.Request) {
	influencer, err := c.services.Influencers.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "influencer not found"})
			return
		}
		c.internalError(w, "failed to toggle influencer status", err)
		return
	}
	writeJSON(w, http.StatusOK, influencer)
}

// ListLogs handles GET /api/v1/logs
func (c *APIController) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := decodeListParams(r.URL.Query()).logQuery(services.DefaultLogSort)
	entries, err := c.services.Logs.List(r.Context(), q)
	if err != nil {
		c.internalError(w, "failed to list activity logs", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[models.LogEntry]{Data: entries, Count: len(entries), Query: q})
}

// ListAudit handles GET /api/v1/audit
func (c *APIController) ListAudit(w http.ResponseWriter, r *http.Request) {
	params := decodeListParams(r.URL.Query())
	entries, err := c.services.Audit.Recent(r.Context(), params.Limit)
	if err != nil {
		c.internalError(w, "failed to load audit log", err)
		return
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	writeJSON(w, http.StatusOK, struct {
		Data  []models.AuditLogEntry `json:"data"`
		Count int                    `json:"count"`
	}{Data: entries, Count: len(entries)})
}

func (c *APIController) internalError(w http.ResponseWriter, msg string, err error) {
	c.logger.Error(msg, zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst *models.InfluencerForm) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		return decoder.Decode(dst, r.PostForm)
	}
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

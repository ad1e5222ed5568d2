package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/services"
)

const logsPath = "/dashboard/logs"

var logColumns = []columnDef{
	{key: "timestamp", label: "Timestamp", sortable: true},
	{key: "action", label: "Action", sortable: true},
	{key: "user", label: "User", sortable: true},
	{key: "details", label: "Details", sortable: true},
	{key: "category", label: "Category", sortable: true},
	{key: "ip_address", label: "IP Address", sortable: true},
	{key: "status", label: "Status", sortable: true},
}

// LogController handles activity log requests
type LogController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, logger *zap.Logger) *LogController {
	return &LogController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /dashboard/logs
func (c *LogController) Index(w http.ResponseWriter, r *http.Request) {
	q := decodeListParams(r.URL.Query()).logQuery(services.DefaultLogSort)

	entries, err := c.services.Logs.List(r.Context(), q)
	if err != nil {
		c.logger.Error("failed to list activity logs", zap.Error(err))
		http.Error(w, "Failed to load activity logs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	all, err := c.services.Logs.List(r.Context(), datatable.Query{})
	if err != nil {
		c.logger.Error("failed to count activity logs", zap.Error(err))
		http.Error(w, "Failed to load activity logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		pageData
		Entries    []models.LogEntry
		Total      int
		Query      datatable.Query
		Columns    []sortColumn
		Categories []models.LogCategory
		Statuses   []models.LogStatus
	}{
		pageData:   newPage(r),
		Entries:    entries,
		Total:      len(all),
		Query:      q,
		Columns:    sortColumns(logsPath, q, logColumns),
		Categories: models.LogCategories,
		Statuses:   models.LogStatuses,
	}

	if err := renderTemplate(w, "logs", "logs.html", templateData); err != nil {
		c.logger.Error("failed to render activity logs", zap.Error(err))
	}
}

package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		logger:   logger,
	}
}

// Root handles GET /
func (c *DashboardController) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Index handles GET /dashboard
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Dashboard.GetDashboardData(r.Context())
	if err != nil {
		c.logger.Error("failed to load dashboard data", zap.Error(err))
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		pageData
		Data *services.DashboardData
	}{
		pageData: newPage(r),
		Data:     data,
	}

	if err := renderTemplate(w, "dashboard", "dashboard.html", templateData); err != nil {
		c.logger.Error("failed to render dashboard", zap.Error(err))
	}
}

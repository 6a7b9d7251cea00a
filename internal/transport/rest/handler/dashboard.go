package handler

import (
	"net/http"

	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// DashboardHandler serves the multi-assessment analytics views
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get handles GET /v1/dashboard?mode=latest|trend|overall
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	mode := model.ParseViewMode(r.URL.Query().Get("mode"))

	dashboard, err := h.dashboardSvc.Get(r.Context(), userID, mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

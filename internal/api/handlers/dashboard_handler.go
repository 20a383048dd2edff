package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

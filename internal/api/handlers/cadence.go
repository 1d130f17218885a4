package handlers

import (
	"net/http"
	"time"

	"communication-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CadenceHandler handles HTTP requests for the dashboard and notifications
type CadenceHandler struct {
	service service.CadenceServiceInterface
}

// NewCadenceHandler creates a new cadence handler
func NewCadenceHandler(service service.CadenceServiceInterface) *CadenceHandler {
	return &CadenceHandler{service: service}
}

// GetDashboard handles GET /api/dashboard
// @Summary Company cadence dashboard
// @Description Get every company with its last five contacts, next due communication and status
// @Tags cadence
// @Produce json
// @Success 200 {object} Response{data=service.DashboardResponse} "Successfully computed dashboard"
// @Failure 500 {object} Response "Internal server error"
// @Router /dashboard [get]
func (h *CadenceHandler) GetDashboard(c *gin.Context) {
	// One evaluation instant per request so every row agrees on "today".
	dashboard, err := h.service.Dashboard(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dashboard)
}

// GetNotifications handles GET /api/notifications
// @Summary Overdue and due-today notifications
// @Description Get the companies needing attention today, grouped with counts
// @Tags cadence
// @Produce json
// @Success 200 {object} Response{data=service.NotificationsResponse} "Successfully computed notifications"
// @Failure 500 {object} Response "Internal server error"
// @Router /notifications [get]
func (h *CadenceHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.service.Notifications(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, notifications)
}

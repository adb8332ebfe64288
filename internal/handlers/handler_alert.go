package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/SscSPs/fx_risk_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type alertHandler struct {
	riskEngine portssvc.RiskEngineSvcFacade
	now        func() time.Time
}

// registerAlertRoutes registers the alert and dashboard routes.
func registerAlertRoutes(rg *gin.RouterGroup, riskEngine portssvc.RiskEngineSvcFacade) {
	h := &alertHandler{riskEngine: riskEngine, now: time.Now}

	rg.GET("/alerts", h.listAlerts)
	rg.GET("/dashboard", h.getDashboard)
}

// listAlerts godoc
// @Summary List risk alerts
// @Description Evaluates all positions and returns HIGH_RISK_POSITION alerts followed by LOW_BALANCE alerts
// @Tags alerts
// @Produce  json
// @Success 200 {array} dto.AlertResponse
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Security BearerAuth
// @Router /fx/alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	alerts, err := h.riskEngine.ListAlerts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list alerts")
		return
	}

	logger.Info("Alerts listed successfully", slog.Int("count", len(alerts)))
	c.JSON(http.StatusOK, dto.ToListAlertResponse(alerts))
}

// getDashboard godoc
// @Summary Get the risk dashboard
// @Description Returns all enriched positions, the current alerts and the refresh time in one payload
// @Tags alerts
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 424 {object} map[string]string "Exchange rate missing for a position"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /fx/dashboard [get]
func (h *alertHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	positions, err := h.riskEngine.ListPositions(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to build dashboard")
		return
	}
	alerts, err := h.riskEngine.ListAlerts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Positions:   dto.ToListPositionResponse(positions),
		Alerts:      dto.ToListAlertResponse(alerts),
		LastUpdated: h.now(),
	})
}

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/SscSPs/fx_risk_dashboard/internal/middleware"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// positionHandler handles HTTP requests related to currency positions.
type positionHandler struct {
	riskEngine    portssvc.RiskEngineSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newPositionHandler(riskEngine portssvc.RiskEngineSvcFacade, posthogClient *utils.PosthogClientWrapper) *positionHandler {
	return &positionHandler{riskEngine: riskEngine, posthogClient: posthogClient}
}

// registerPositionRoutes registers routes related to positions.
func registerPositionRoutes(rg *gin.RouterGroup, riskEngine portssvc.RiskEngineSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newPositionHandler(riskEngine, posthogClient)

	rg.GET("/positions", h.listPositions)
	rg.GET("/positions/low-balance", h.listLowBalancePositions)
	rg.GET("/position/:currency", h.getPosition)
	rg.POST("/position", h.updatePosition)
}

// listPositions godoc
// @Summary List currency positions
// @Description Lists all positions enriched with their latest USD rate, optionally filtered by stored risk level
// @Tags positions
// @Produce  json
// @Param   riskLevel query string false "Risk level filter" Enums(LOW, MEDIUM, HIGH)
// @Success 200 {array} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid risk level"
// @Failure 424 {object} map[string]string "Exchange rate missing for a position"
// @Failure 500 {object} map[string]string "Failed to list positions"
// @Security BearerAuth
// @Router /fx/positions [get]
func (h *positionHandler) listPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		positions []domain.CurrencyPosition
		err       error
	)
	if raw := c.Query("riskLevel"); raw != "" {
		level, parseErr := domain.ParseRiskLevel(strings.ToUpper(raw))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
			return
		}
		logger = logger.With(slog.String("risk_level", string(level)))
		positions, err = h.riskEngine.ListPositionsByRiskLevel(c.Request.Context(), level)
	} else {
		positions, err = h.riskEngine.ListPositions(c.Request.Context())
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to list positions")
		return
	}

	logger.Info("Positions listed successfully", slog.Int("count", len(positions)))
	c.JSON(http.StatusOK, dto.ToListPositionResponse(positions))
}

// listLowBalancePositions godoc
// @Summary List low balance positions
// @Description Lists positions whose absolute net exposure is below the low balance threshold
// @Tags positions
// @Produce  json
// @Success 200 {array} dto.PositionResponse
// @Failure 424 {object} map[string]string "Exchange rate missing for a position"
// @Failure 500 {object} map[string]string "Failed to list positions"
// @Security BearerAuth
// @Router /fx/positions/low-balance [get]
func (h *positionHandler) listLowBalancePositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	positions, err := h.riskEngine.ListLowBalancePositions(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list low balance positions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPositionResponse(positions))
}

// getPosition godoc
// @Summary Get a currency position
// @Description Retrieves one position enriched with its latest USD rate
// @Tags positions
// @Produce  json
// @Param   currency path string true "Currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.PositionResponse
// @Failure 404 {object} map[string]string "Position not found"
// @Failure 424 {object} map[string]string "Exchange rate missing"
// @Failure 500 {object} map[string]string "Failed to retrieve position"
// @Security BearerAuth
// @Router /fx/position/{currency} [get]
func (h *positionHandler) getPosition(c *gin.Context) {
	currency := domain.NormalizeCurrencyCode(c.Param("currency"))
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", currency))

	position, found, err := h.riskEngine.GetPosition(c.Request.Context(), currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve position")
		return
	}
	if !found {
		logger.Info("Position not found")
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No position for currency %s", currency)})
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionResponse(position))
}

// updatePosition godoc
// @Summary Create or update a currency position
// @Description Upserts the position for a currency. The risk level is always derived from the amounts; any riskLevel in the body is ignored.
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   position body dto.UpsertPositionRequest true "Position details"
// @Success 200 {object} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update position"
// @Security BearerAuth
// @Router /fx/position [post]
func (h *positionHandler) updatePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency", req.Currency))
	position, err := h.riskEngine.UpdatePosition(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update position")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "position_updated", map[string]any{
		"currency":   position.Currency,
		"risk_level": string(position.RiskLevel),
	})
	c.JSON(http.StatusOK, dto.ToPositionResponse(position))
}

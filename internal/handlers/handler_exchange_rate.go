package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/SscSPs/fx_risk_dashboard/internal/middleware"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// defaultHistoryWindow is used when the history request omits start.
const defaultHistoryWindow = 24 * time.Hour

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	posthogClient       *utils.PosthogClientWrapper
	now                 func() time.Time
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, posthogClient *utils.PosthogClientWrapper) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		posthogClient:       posthogClient,
		now:                 time.Now,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newExchangeRateHandler(exchangeRateService, posthogClient)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.recordRate)
		rates.GET("/:pair/latest", h.getLatestRate)
		rates.GET("/:pair/history", h.getRateHistory)
	}
}

// recordRate godoc
// @Summary Record an exchange rate quote
// @Description Stores a USD quote for a currency pair. Timestamp defaults to now and source to MANUAL.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.RecordExchangeRateRequest true "Exchange rate quote"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record exchange rate"
// @Security BearerAuth
// @Router /fx/rates [post]
func (h *exchangeRateHandler) recordRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.exchangeRateService.RecordRate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record exchange rate")
		return
	}

	logger.Info("Exchange rate recorded", slog.String("pair", rate.CurrencyPair), slog.Int64("rate_id", rate.ExchangeRateID))
	middleware.PosthogEvent(c, h.posthogClient, "rate_recorded", map[string]any{
		"pair":   rate.CurrencyPair,
		"source": rate.Source,
	})
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getLatestRate godoc
// @Summary Get the latest exchange rate
// @Description Retrieves the most recent quote for a pair such as EURUSD
// @Tags exchange rates
// @Produce  json
// @Param   pair path string true "Currency pair (6 letters)" MinLength(6) MaxLength(6)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency pair"
// @Failure 424 {object} map[string]string "No rate recorded for the pair"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /fx/rates/{pair}/latest [get]
func (h *exchangeRateHandler) getLatestRate(c *gin.Context) {
	pair := domain.NormalizeCurrencyCode(c.Param("pair"))
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("pair", pair))

	if !domain.IsCurrencyPair(pair) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency pair must be 6 letters, e.g. EURUSD"})
		return
	}

	rate, err := h.exchangeRateService.GetLatestRate(c.Request.Context(), pair)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getRateHistory godoc
// @Summary Get exchange rate history
// @Description Retrieves quotes for a pair within [start, end], newest first. Defaults to the last 24 hours.
// @Tags exchange rates
// @Produce  json
// @Param   pair path string true "Currency pair (6 letters)" MinLength(6) MaxLength(6)
// @Param   start query string false "Window start (RFC 3339)"
// @Param   end query string false "Window end (RFC 3339)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid pair or time window"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate history"
// @Security BearerAuth
// @Router /fx/rates/{pair}/history [get]
func (h *exchangeRateHandler) getRateHistory(c *gin.Context) {
	pair := domain.NormalizeCurrencyCode(c.Param("pair"))
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("pair", pair))

	if !domain.IsCurrencyPair(pair) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency pair must be 6 letters, e.g. EURUSD"})
		return
	}

	var params dto.RateHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	end := h.now()
	if params.End != "" {
		parsed, err := time.Parse(time.RFC3339, params.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be an RFC 3339 timestamp"})
			return
		}
		end = parsed
	}
	start := end.Add(-defaultHistoryWindow)
	if params.Start != "" {
		parsed, err := time.Parse(time.RFC3339, params.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be an RFC 3339 timestamp"})
			return
		}
		start = parsed
	}

	rates, err := h.exchangeRateService.GetRateHistory(c.Request.Context(), pair, start, end)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate history")
		return
	}

	logger.Info("Exchange rate history retrieved", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

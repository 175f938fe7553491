package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to stored exchange rates.
type exchangeRateHandler struct {
	rateService     portssvc.ExchangeRateSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade, cs portssvc.CurrencyReaderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService:     rs,
		currencyService: cs,
	}
}

// registerExchangeRateRoutes registers routes related to stored exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := newExchangeRateHandler(rateService, currencyService)

	rates := rg.Group("/currency/exchange-rate")
	{
		rates.GET("/current", h.listCurrentRates)
		rates.GET("/current/:code", h.getCurrentRateByCurrency)
		rates.PATCH("/:code", h.updateRateByCurrency)
	}
}

// listCurrentRates godoc
// @Summary List stored exchange rates
// @Tags exchange-rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /currency/exchange-rate/current [get]
func (h *exchangeRateHandler) listCurrentRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.FindAllCurrent(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getCurrentRateByCurrency godoc
// @Summary Get the stored base to currency rate
// @Tags exchange-rates
// @Produce  json
// @Param   code path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Unknown currency or rate not found"
// @Security BearerAuth
// @Router /currency/exchange-rate/current/{code} [get]
func (h *exchangeRateHandler) getCurrentRateByCurrency(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", code))

	rate, err := h.rateService.FindCurrentRateByCurrency(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateRateByCurrency godoc
// @Summary Update the stored base to currency rate
// @Description Overwrites the rate of an existing row in place
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   code path string true "Target currency code"
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid rate"
// @Failure 404 {object} map[string]string "Unknown currency or rate not found"
// @Security BearerAuth
// @Router /currency/exchange-rate/{code} [patch]
func (h *exchangeRateHandler) updateRateByCurrency(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", code))

	// unknown codes are reported before the body is looked at
	if _, err := h.currencyService.GetCurrencyByCode(code); err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.UpdateByCurrency(c.Request.Context(), code, req, actorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

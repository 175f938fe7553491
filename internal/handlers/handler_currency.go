package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currency")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/code/:code", h.getCurrencyByCode)
		currencies.GET("/base", h.getBaseCurrency)
		currencies.GET("/legal", h.getLegalTenderCurrency)
		currencies.GET("/active", h.listActiveCurrencies)
		currencies.GET("/exchange/:from/:to/:amount", h.exchange)
		currencies.GET("/calculate-rate/:from/:to", h.calculateRate)
		currencies.GET("/rate-path/:from/:to", h.getRatePath)
		currencies.GET("/rate/base-to-legal/latest", h.getBaseToLegalLatestRate)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currency [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.currencyService.ListCurrencies()))
}

// listActiveCurrencies godoc
// @Summary List active currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currency/active [get]
func (h *currencyHandler) listActiveCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.currencyService.ListActiveCurrencies()))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency, the code is case-insensitive
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currency/code/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	curr, err := h.currencyService.GetCurrencyByCode(c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(curr))
}

func (h *currencyHandler) getBaseCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(h.currencyService.GetBaseCurrency()))
}

func (h *currencyHandler) getLegalTenderCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(h.currencyService.GetLegalTenderCurrency()))
}

// exchange godoc
// @Summary Convert an amount between currencies
// @Tags currencies
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Param   amount path string true "Amount, a positive decimal"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} map[string]string "Invalid amount or inactive currency"
// @Failure 404 {object} map[string]string "Unknown currency or no rate path"
// @Security BearerAuth
// @Router /currency/exchange/{from}/{to}/{amount} [get]
func (h *currencyHandler) exchange(c *gin.Context) {
	from, to, amount := c.Param("from"), c.Param("to"), c.Param("amount")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("from", from), slog.String("to", to))

	result, err := h.currencyService.Exchange(c.Request.Context(), from, to, amount)
	if err != nil {
		respondError(c, logger, err, "Failed to exchange currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeResponse(result))
}

// calculateRate godoc
// @Summary Calculate the rate between two currencies
// @Description Returns the rate as a JSON string with 10 fractional digits
// @Tags currencies
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {string} string "1.0000000000"
// @Failure 404 {object} map[string]string "Unknown currency or no rate path"
// @Security BearerAuth
// @Router /currency/calculate-rate/{from}/{to} [get]
func (h *currencyHandler) calculateRate(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("from", from), slog.String("to", to))

	rate, err := h.currencyService.CalculateRate(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate exchange rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}

// getRatePath godoc
// @Summary Explain how a rate is obtained
// @Tags currencies
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.RatePathResponse
// @Failure 404 {object} map[string]string "Unknown currency or no rate path"
// @Security BearerAuth
// @Router /currency/rate-path/{from}/{to} [get]
func (h *currencyHandler) getRatePath(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("from", from), slog.String("to", to))

	resolved, err := h.currencyService.ResolveRate(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve exchange rate path")
		return
	}
	c.JSON(http.StatusOK, dto.ToRatePathResponse(resolved))
}

// getBaseToLegalLatestRate godoc
// @Summary Latest base to legal tender rate
// @Tags currencies
// @Produce  json
// @Success 200 {string} string "200.0000000000"
// @Failure 404 {object} map[string]string "No rate stored"
// @Security BearerAuth
// @Router /currency/rate/base-to-legal/latest [get]
func (h *currencyHandler) getBaseToLegalLatestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.currencyService.BaseToLegalLatestRate(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve base to legal tender rate")
		return
	}
	c.JSON(http.StatusOK, utils.FormatRate(rate))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/SscSPs/currency_registry/internal/middleware"
	"github.com/SscSPs/currency_registry/internal/utils"
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

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/format", h.formatCurrencyByCode)
	}
	rg.POST("/format", h.formatCurrency)
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every registered currency ordered by alpha code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list currencies")

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	currencyResponses := dto.ToListCurrencyResponse(currencies)
	logger.Info("Currencies listed successfully", slog.Int("count", len(currencyResponses)))
	c.JSON(http.StatusOK, currencyResponses)
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a currency by its 3-letter alpha code (any case) or its numeric code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Alpha or numeric ISO 4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	key := domain.ParseCurrencyKey(c.Param("code"))
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", key.String()))
	logger.Info("Received request to get currency by code")

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), key)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}

	logger.Info("Currency retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// formatCurrencyByCode godoc
// @Summary Format an amount
// @Description Formats an amount in the given currency using the number format of a locale
// @Tags currencies
// @Produce  json
// @Param   code path string true "Alpha or numeric ISO 4217 code"
// @Param   amount query string true "Decimal amount, e.g. 1000.5"
// @Param   locale query string false "BCP 47 locale tag; the configured default when omitted"
// @Success 200 {object} dto.FormatCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to format amount"
// @Router /currencies/{code}/format [get]
func (h *currencyHandler) formatCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.FormatCurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for FormatCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := domain.ParseAmount(query.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}

	h.format(c, logger, dto.FormatCurrencyRequest{
		Amount: &amount,
		Code:   c.Param("code"),
		Locale: query.Locale,
	})
}

// formatCurrency godoc
// @Summary Format an amount
// @Description Formats an amount in the given currency using the number format of a locale
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatCurrencyRequest true "Amount, currency code and optional locale"
// @Success 200 {object} dto.FormatCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to format amount"
// @Router /format [post]
func (h *currencyHandler) formatCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.format(c, logger, req)
}

func (h *currencyHandler) format(c *gin.Context, logger *slog.Logger, req dto.FormatCurrencyRequest) {
	key := domain.ParseCurrencyKey(req.Code)
	logger = logger.With(slog.String("currency_code", key.String()), slog.String("locale", req.Locale))

	if err := domain.ValidateAmount(*req.Amount); err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), key)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}

	formatted, err := h.currencyService.FormatCurrencyForLocale(c.Request.Context(), *req.Amount, key, req.Locale)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}

	c.JSON(http.StatusOK, dto.FormatCurrencyResponse{
		Code:      currency.AlphaCode(),
		Amount:    req.Amount.String(),
		Rounded:   utils.FormatWithCurrencyPrecision(*req.Amount, currency),
		Locale:    req.Locale,
		Formatted: formatted,
	})
}

// respondError maps service errors to HTTP status codes.
func respondError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

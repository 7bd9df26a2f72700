package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/ecucondor/exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for current exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:from/:to", h.getRate)
	}
}

// getRate godoc
// @Summary Get current exchange rate
// @Description Returns the current platform rate for a currency pair. The source field reports whether the rate came from the live feed or the degrade fallback.
// @Tags rates
// @Produce json
// @Param from path string true "Source currency code" example(USD)
// @Param to path string true "Target currency code" example(ARS)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Failure 404 {object} ErrorResponse "No rate available"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from := domain.Currency(strings.ToUpper(c.Param("from")))
	to := domain.Currency(strings.ToUpper(c.Param("to")))

	if !from.IsSupported() || !to.IsSupported() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported currency pair"})
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), domain.CurrencyPair{From: from, To: to})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No rate available for pair"})
			return
		}
		logger.Error("Failed to get rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

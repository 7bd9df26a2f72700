package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/ecucondor/exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for conversion quotes.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
	}
}

// registerExchangeRoutes registers routes related to conversion quotes.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	exchange := rg.Group("/exchange")
	{
		exchange.POST("/quote", h.quote)
	}
}

// quote godoc
// @Summary Compute a conversion quote
// @Description Prices an amount in the given direction at the current rate, including commission. The quote is informational; submitting a transaction reprices at the then-current rate.
// @Tags exchange
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Amount and direction"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or direction"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/quote [post]
func (h *exchangeHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.exchangeService.Quote(c.Request.Context(), req.Amount, domain.Direction(req.Direction))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute quote"})
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

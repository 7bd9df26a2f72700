package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/ecucondor/exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests for P2P orders and user limits.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// RegisterOrderRoutes registers routes related to P2P orders. Exported so
// handler tests can mount them on a bare router.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
	}

	rg.GET("/limits", h.getLimits)
}

// createOrder godoc
// @Summary Create a P2P order
// @Description Validates the order against the currency/type allow-lists and the user's limits, then records it in open. Structural problems report as 400; authorization problems as 403.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid currency, type, or amount"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "User unverified or limit exceeded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUserNotVerified):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "User has not completed verification"})
		case errors.Is(err, apperrors.ErrLimitExceeded):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create order"})
		}
		return
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List own orders
// @Description Returns the authenticated user's P2P orders, newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// getLimits godoc
// @Summary Get own limits
// @Description Returns the authenticated user's verification flag and per-order maximum.
// @Tags orders
// @Produce json
// @Success 200 {object} dto.UserLimitsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No limits record"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /limits [get]
func (h *orderHandler) getLimits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limits, err := h.orderService.GetLimits(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No limits record for user"})
			return
		}
		logger.Error("Failed to get limits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get limits"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserLimitsResponse(limits))
}

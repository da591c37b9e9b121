package http

import (
	"net/http"

	"boostmarket/internal/entity"
	"boostmarket/internal/usecase"
	"boostmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       *logger.Logger
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

type PlaceOrderRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// PlaceOrder godoc
// @Summary      Place an order
// @Description  Spends wallet balance to create a pending order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaceOrderRequest true "Order amount"
// @Success      201  {object}  entity.Order
// @Failure      402  {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	accountID := c.GetString("user_id")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.PlaceOrder(accountID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary      List own orders
// @Description  Orders of the authenticated user, optionally filtered by status
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending, approved or rejected"
// @Success      200  {object}  map[string]interface{}
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	accountID := c.GetString("user_id")

	var (
		orders []*entity.Order
		err    error
	)
	switch status := c.Query("status"); status {
	case "":
		orders, err = h.orderUseCase.ListByAccount(accountID)
	case string(entity.OrderStatusPending), string(entity.OrderStatusApproved), string(entity.OrderStatusRejected):
		orders, err = h.orderUseCase.ListByAccountAndStatus(accountID, entity.OrderStatus(status))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

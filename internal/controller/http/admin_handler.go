package http

import (
	"net/http"

	"boostmarket/internal/usecase"
	"boostmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	orderUseCase   usecase.OrderUseCase
	accountUseCase usecase.AccountUseCase
	logger         *logger.Logger
}

func NewAdminHandler(orderUseCase usecase.OrderUseCase, accountUseCase usecase.AccountUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		orderUseCase:   orderUseCase,
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

type DecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

type AssignOrderRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Amount     int    `json:"amount" binding:"required,min=1"`
	PostURL    string `json:"post_url"`
}

// ListPendingOrders godoc
// @Summary      List pending orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/orders/pending [get]
func (h *AdminHandler) ListPendingOrders(c *gin.Context) {
	orders, err := h.orderUseCase.ListPending()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// DecideOrder godoc
// @Summary      Approve or reject an order
// @Description  Moves a pending order to its terminal status; a rejection refunds the order amount
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id path string true "Order ID"
// @Param        request body DecisionRequest true "Decision"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/orders/{order_id}/decision [post]
func (h *AdminHandler) DecideOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.Decide(orderID, req.Action)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// AssignOrder godoc
// @Summary      Manually assign an approved order
// @Description  Creates a pre-approved order for a user without touching their wallet
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AssignOrderRequest true "Order details"
// @Success      201  {object}  entity.Order
// @Failure      404  {object}  map[string]string
// @Router       /admin/orders/assign [post]
func (h *AdminHandler) AssignOrder(c *gin.Context) {
	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.ManualAssign(req.TelegramID, req.Amount, req.PostURL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListAccounts godoc
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/accounts [get]
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "count": len(accounts)})
}

// ListNotifications godoc
// @Summary      List admin notifications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.accountUseCase.AdminNotifications()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// ClearNotifications godoc
// @Summary      Clear admin notifications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /admin/notifications/clear [post]
func (h *AdminHandler) ClearNotifications(c *gin.Context) {
	if err := h.accountUseCase.ClearAdminNotifications(); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications cleared"})
}

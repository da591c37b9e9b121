package http

import (
	"net/http"
	"strconv"

	"boostmarket/internal/usecase"
	"boostmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	walletUseCase  usecase.WalletUseCase
	logger         *logger.Logger
}

func NewAccountHandler(accountUseCase usecase.AccountUseCase, walletUseCase usecase.WalletUseCase, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		walletUseCase:  walletUseCase,
		logger:         logger,
	}
}

// Dashboard godoc
// @Summary      Get dashboard
// @Description  Balance, orders and notifications for the authenticated user
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Dashboard
// @Router       /dashboard [get]
func (h *AccountHandler) Dashboard(c *gin.Context) {
	accountID := c.GetString("user_id")

	dashboard, err := h.accountUseCase.Dashboard(accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// ClearNotifications godoc
// @Summary      Clear notifications
// @Description  Clears the authenticated user's notification log
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /notifications/clear [post]
func (h *AccountHandler) ClearNotifications(c *gin.Context) {
	accountID := c.GetString("user_id")

	if err := h.accountUseCase.ClearNotifications(accountID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications cleared"})
}

// GetTransactions godoc
// @Summary      Get wallet transactions
// @Description  Audit log of wallet movements for the authenticated user
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of transactions"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /wallet/transactions [get]
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	accountID := c.GetString("user_id")
	limit := 50
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	transactions, err := h.walletUseCase.Transactions(accountID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

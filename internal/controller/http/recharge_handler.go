package http

import (
	"errors"
	"net/http"

	"boostmarket/internal/entity"
	"boostmarket/internal/usecase"
	"boostmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RechargeHandler struct {
	rechargeUseCase usecase.RechargeUseCase
	logger          *logger.Logger
}

func NewRechargeHandler(rechargeUseCase usecase.RechargeUseCase, logger *logger.Logger) *RechargeHandler {
	return &RechargeHandler{
		rechargeUseCase: rechargeUseCase,
		logger:          logger,
	}
}

type RechargeRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// CreateCheckout godoc
// @Summary      Request a wallet recharge
// @Description  Creates a hosted checkout session and returns its URL
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RechargeRequest true "Recharge amount"
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /wallet/recharge [post]
func (h *RechargeHandler) CreateCheckout(c *gin.Context) {
	accountID := c.GetString("user_id")

	var req RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.rechargeUseCase.CreateCheckout(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_url": session.URL,
		"session_id":   session.ID,
	})
}

// ConfirmRecharge godoc
// @Summary      Confirm a recharge
// @Description  Reconciles a completed checkout session into a wallet credit. The gateway redirect carries no token, so the route is public; it is keyed by session id alone and idempotent. Safe to call repeatedly; a replay reports already_credited.
// @Tags         wallet
// @Produce      json
// @Param        session_id query string true "Checkout session id"
// @Success      200  {object}  map[string]interface{}
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /wallet/recharge/confirm [get]
func (h *RechargeHandler) ConfirmRecharge(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session ID"})
		return
	}

	result, err := h.rechargeUseCase.Reconcile(c.Request.Context(), sessionID)
	if err != nil {
		// A reload of the confirmation page is success from the user's side
		if errors.Is(err, entity.ErrAlreadyReconciled) {
			c.JSON(http.StatusOK, gin.H{"status": "already_credited", "session_id": sessionID})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "credited",
		"session_id": result.SessionID,
		"amount":     result.Amount,
	})
}

package http

import (
	"net/http"

	"boostmarket/internal/usecase"
	"boostmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         *logger.Logger
}

func NewAuthHandler(accountUseCase usecase.AccountUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

type LoginRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in by telegram id
// @Description  Authenticates by numeric telegram id, creating the account with generated credentials on first login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Telegram id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, created, err := h.accountUseCase.Login(req.TelegramID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := gin.H{
		"token":   token,
		"account": account,
		"created": created,
	}
	// Generated credentials are shown once, on first login
	if created {
		resp["credentials"] = gin.H{
			"username": account.Username,
			"password": account.Password,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// AdminLogin godoc
// @Summary      Admin login
// @Description  Authenticates an administrator against configured credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Admin credentials"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.accountUseCase.AdminLogin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

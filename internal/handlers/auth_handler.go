package handlers

import (
	"net/http"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/otp/request", h.RequestOTP)
		auth.POST("/otp/verify", h.VerifyOTP)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// RequestOTP отправляет одноразовый код на телефон
// @Summary Запрос кода входа
// @Tags auth
// @Accept json
// @Param request body dto.RequestOTPInput true "Номер телефона"
// @Success 204
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// VerifyOTP проверяет код и выдает токены
// @Summary Проверка кода входа
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPInput true "Номер и код"
// @Success 200 {object} dto.AuthResponse
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh меняет refresh токен на новую пару токенов
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout отзывает refresh токен
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/middleware"
	"jobswipe_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	*BaseHandler
	swipeService services.SwipeService
}

func NewSwipeHandler(base *BaseHandler, swipeService services.SwipeService) *SwipeHandler {
	return &SwipeHandler{
		BaseHandler:  base,
		swipeService: swipeService,
	}
}

func (h *SwipeHandler) RegisterRoutes(r *gin.RouterGroup) {
	swipes := r.Group("/swipes")
	swipes.Use(middleware.AuthMiddleware())
	{
		swipes.POST("", h.RecordSwipe)
	}
}

// RecordSwipe записывает свайп текущего пользователя
// @Summary Запись свайпа
// @Tags swipes
// @Accept json
// @Produce json
// @Param request body dto.SwipeInput true "Свайп"
// @Success 200 {object} dto.SwipeResult
// @Security BearerAuth
// @Router /swipes [post]
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SwipeInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Результат всегда структурный: ошибки хранилища приходят в поле error,
	// а не как HTTP 5xx.
	result := h.swipeService.RecordSwipe(userID, &req)
	c.JSON(http.StatusOK, result)
}

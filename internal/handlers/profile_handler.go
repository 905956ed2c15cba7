package handlers

import (
	"net/http"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/middleware"
	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/services"
	"jobswipe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Каталог навыков публичный: нужен на экране онбординга до входа
	r.GET("/skills", h.GetSkills)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/cards", h.GetCards)
		protected.GET("/favorites", h.GetFavorites)
		protected.GET("/accepts", h.GetAccepts)
		protected.GET("/matches", h.GetMatches)
		protected.GET("/me/roles", h.GetMyRoles)
		protected.GET("/me/profile", h.GetMyProfile)
		protected.PATCH("/me/profile", h.UpdateMyProfile)
		protected.POST("/profiles/worker", h.CreateWorkerProfile)
		protected.POST("/jobs", h.CreateJobPosting)
	}
}

// GetCards возвращает колоду для активной роли
// @Summary Карточки для свайпа
// @Tags cards
// @Produce json
// @Param role query string true "worker или employer"
// @Success 200 {array} dto.Card
// @Security BearerAuth
// @Router /cards [get]
func (h *ProfileHandler) GetCards(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.CardsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	c.JSON(http.StatusOK, h.profileService.GetSwipeableCards(userID, models.Role(query.Role)))
}

func (h *ProfileHandler) GetFavorites(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.profileService.GetFavorites(userID))
}

func (h *ProfileHandler) GetAccepts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.profileService.GetAccepts(userID))
}

func (h *ProfileHandler) GetMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.profileService.GetMatches(userID))
}

func (h *ProfileHandler) GetMyRoles(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.profileService.GetUserRoles(userID))
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile := h.profileService.GetUserProfile(userID)
	if profile == nil {
		apperrors.HandleError(c, apperrors.ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMyProfileInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateMyProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.GetSkills())
}

// CreateWorkerProfile — онбординг работника
// @Summary Создание анкеты работника
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkerProfileInput true "Анкета"
// @Success 201 {object} dto.WorkerProfileView
// @Security BearerAuth
// @Router /profiles/worker [post]
func (h *ProfileHandler) CreateWorkerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkerProfileInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateWorkerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// CreateJobPosting — онбординг работодателя
func (h *ProfileHandler) CreateJobPosting(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostingInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	posting, err := h.profileService.CreateJobPosting(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, posting)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.TokenManager
	userRepo    repositories.UserRepository
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
		userRepo:    userRepo,
	}
}

// RegisterRoutes mounts the auth routes under /auth.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register/candidate", h.RegisterCandidate)
		authGroup.POST("/register/company", h.RegisterCompany)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.AuthMiddleware(h.tokens, h.userRepo))
	{
		protected.GET("/profile", h.Profile)
		protected.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req dto.RegisterCandidateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.RegisterCandidate(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.RegisterCompany(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Refresh(h.GetDB(c), req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(h.GetDB(c), req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Profile returns the identity behind the access token. The middleware
// already re-resolved the user and enforced the active flag.
func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:   middleware.GetUserID(c),
		Email:    middleware.GetUserEmail(c),
		UserType: middleware.GetUserType(c),
	})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	// Public Routes, with the strict rate limit on credential endpoints
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", loginLimit, handler.Register)
		publicAuth.POST("/login", loginLimit, handler.Login)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/logout", handler.Logout)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with profile data, skills and educations. The address is resolved from the CEP when possible.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a bearer token and the full profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		Token: token,
		User:  user,
	})
}

// Me godoc
// @Summary      Current User
// @Description  Return the authenticated user's profile with skills and educations.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.Me(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the current access token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("AuthToken")

	if err := h.authUC.Logout(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

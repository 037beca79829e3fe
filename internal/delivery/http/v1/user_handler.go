package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	// Address lookup needs no account, the register form uses it.
	public.GET("/cep/:cep", handler.LookupAddress)

	protected.GET("/profile", handler.GetProfile)
	protected.DELETE("/profile", handler.DeleteAccount)

	// Both roles share one update handler behind role-named paths.
	protected.PUT("/candidate-profile", handler.UpdateProfile)
	protected.PUT("/manager-profile", handler.UpdateProfile)
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Return the authenticated user's profile with skills and educations.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.userUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", user)
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Partially update the profile. Sending skills or educations replaces the whole set.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.UpdateProfileInput  true  "Fields to update"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /candidate-profile [put]
// @Router       /manager-profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var input domain.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", user)
}

// DeleteAccount godoc
// @Summary      Delete Account
// @Description  Permanently delete the authenticated account and its related data.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /profile [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.userUC.DeleteAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}

// LookupAddress godoc
// @Summary      CEP Lookup
// @Description  Resolve a Brazilian postal code to an address. Accepts formatted (01310-100) and bare (01310100) codes.
// @Tags         address
// @Produce      json
// @Param        cep   path      string  true  "Postal code"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      408    {object}  response.Response
// @Router       /cep/{cep} [get]
func (h *UserHandler) LookupAddress(c *gin.Context) {
	addr, err := h.userUC.LookupAddress(c.Request.Context(), c.Param("cep"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Address found", addr)
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.ListSkills)
}

// ListSkills godoc
// @Summary      List Skills
// @Description  Return the skill catalog, ordered by id.
// @Tags         skills
// @Produce      json
// @Success      200    {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills", skills)
}

package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
)

type ManagerHandler struct {
	managerUC domain.ManagerUsecase
}

func NewManagerHandler(manager *gin.RouterGroup, managerUC domain.ManagerUsecase) {
	handler := &ManagerHandler{managerUC: managerUC}

	manager.GET("/candidates", handler.ListCandidates)
	manager.GET("/candidates/:id", handler.GetCandidate)
	manager.POST("/candidates/:id/schedule-interview", handler.ScheduleInterview)
	manager.PUT("/candidates/:id/reschedule-interview", handler.RescheduleInterview)
	manager.DELETE("/candidates/:id/cancel-interview", handler.CancelInterview)
	manager.GET("/interviews", handler.ListScheduledInterviews)
}

type InterviewRequest struct {
	InterviewDate string `json:"interview_date"`
	InterviewTime string `json:"interview_time"`
}

// ListCandidates godoc
// @Summary      List Candidates
// @Description  Paginated candidate directory with optional name and skill filters.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Name substring filter"
// @Param        skills  query     string  false  "Skill name substring filter"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /candidates [get]
func (h *ManagerHandler) ListCandidates(c *gin.Context) {
	// "skill" survives as an alias for older clients.
	skills := c.Query("skills")
	if skills == "" {
		skills = c.Query("skill")
	}

	filter := domain.CandidateFilter{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Search: c.Query("search"),
		Skill:  skills,
	}

	users, total, err := h.managerUC.ListCandidates(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessPaged(c, http.StatusOK, "Candidates", users,
		response.NewPagination(total, filter.Page, filter.Limit))
}

// GetCandidate godoc
// @Summary      Candidate Detail
// @Description  Full candidate profile with skills, educations and interview state.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *ManagerHandler) GetCandidate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.managerUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", user)
}

// ScheduleInterview godoc
// @Summary      Schedule Interview
// @Description  Book an interview slot for a candidate who has none. The candidate is notified by email.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int               true  "Candidate ID"
// @Param        interview  body      InterviewRequest  true  "Slot"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /candidates/{id}/schedule-interview [post]
func (h *ManagerHandler) ScheduleInterview(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	req, err := bindInterview(c)
	if err != nil {
		c.Error(err)
		return
	}

	managerID := c.GetInt64(string(domain.KeyUserID))
	schedule, err := h.managerUC.ScheduleInterview(c.Request.Context(), id, managerID, req.InterviewDate, req.InterviewTime)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview scheduled successfully", schedule)
}

// RescheduleInterview godoc
// @Summary      Reschedule Interview
// @Description  Move an existing interview to a new slot. The candidate is notified with both old and new slots.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int               true  "Candidate ID"
// @Param        interview  body      InterviewRequest  true  "New slot"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id}/reschedule-interview [put]
func (h *ManagerHandler) RescheduleInterview(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	req, err := bindInterview(c)
	if err != nil {
		c.Error(err)
		return
	}

	managerID := c.GetInt64(string(domain.KeyUserID))
	schedule, err := h.managerUC.RescheduleInterview(c.Request.Context(), id, managerID, req.InterviewDate, req.InterviewTime)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview rescheduled successfully", schedule)
}

// CancelInterview godoc
// @Summary      Cancel Interview
// @Description  Clear a candidate's interview selection, date and time. No notification is sent.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id}/cancel-interview [delete]
func (h *ManagerHandler) CancelInterview(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.managerUC.CancelInterview(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled successfully", nil)
}

// ListScheduledInterviews godoc
// @Summary      List Scheduled Interviews
// @Description  Candidates with a booked interview, ordered by date and time. Optional exact-date filter.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size"
// @Param        date   query     string  false  "Exact date (YYYY-MM-DD)"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /interviews [get]
func (h *ManagerHandler) ListScheduledInterviews(c *gin.Context) {
	filter := domain.InterviewFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
		Date:  c.Query("date"),
	}

	users, total, err := h.managerUC.ListScheduledInterviews(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessPaged(c, http.StatusOK, "Scheduled interviews", users,
		response.NewPagination(total, filter.Page, filter.Limit))
}

func bindInterview(c *gin.Context) (InterviewRequest, error) {
	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperror.BadRequest(err.Error())
	}
	if req.InterviewDate == "" || req.InterviewTime == "" {
		return req, apperror.BadRequest("interview date and time are required")
	}
	return req, nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid id parameter")
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

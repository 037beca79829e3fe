package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"talent-portal-backend/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubManagerUC satisfies domain.ManagerUsecase; only the listing call is
// wired, the rest are never reached by these tests.
type stubManagerUC struct {
	listCandidates func(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error)
}

func (s *stubManagerUC) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
	return s.listCandidates(ctx, filter)
}

func (s *stubManagerUC) GetCandidate(ctx context.Context, id int64) (*domain.User, error) {
	return nil, nil
}

func (s *stubManagerUC) ScheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*domain.InterviewSchedule, error) {
	return nil, nil
}

func (s *stubManagerUC) RescheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*domain.InterviewSchedule, error) {
	return nil, nil
}

func (s *stubManagerUC) CancelInterview(ctx context.Context, candidateID int64) error {
	return nil
}

func (s *stubManagerUC) ListScheduledInterviews(ctx context.Context, filter domain.InterviewFilter) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func registeredRoutes(r *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, info := range r.Routes() {
		routes[info.Method+" "+info.Path] = true
	}
	return routes
}

func TestManagerRoutes_ActionNamedPaths(t *testing.T) {
	r := gin.New()
	NewManagerHandler(r.Group("/v1"), &stubManagerUC{})

	routes := registeredRoutes(r)
	for _, want := range []string{
		"GET /v1/candidates",
		"GET /v1/candidates/:id",
		"POST /v1/candidates/:id/schedule-interview",
		"PUT /v1/candidates/:id/reschedule-interview",
		"DELETE /v1/candidates/:id/cancel-interview",
		"GET /v1/interviews",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestProfileRoutes_RoleNamedUpdatePaths(t *testing.T) {
	r := gin.New()
	v1 := r.Group("/v1")
	NewUserHandler(v1, v1, nil)

	routes := registeredRoutes(r)
	for _, want := range []string{
		"GET /v1/profile",
		"DELETE /v1/profile",
		"PUT /v1/candidate-profile",
		"PUT /v1/manager-profile",
		"GET /v1/cep/:cep",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestListCandidates_SkillsQueryParam(t *testing.T) {
	var got domain.CandidateFilter
	stub := &stubManagerUC{
		listCandidates: func(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
			got = filter
			return []domain.User{}, 0, nil
		},
	}

	r := gin.New()
	NewManagerHandler(r.Group("/v1"), stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/candidates?search=ana&skills=React", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", got.Search)
	assert.Equal(t, "React", got.Skill)
}

func TestListCandidates_SkillAliasStillAccepted(t *testing.T) {
	var got domain.CandidateFilter
	stub := &stubManagerUC{
		listCandidates: func(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
			got = filter
			return []domain.User{}, 0, nil
		},
	}

	r := gin.New()
	NewManagerHandler(r.Group("/v1"), stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/candidates?skill=Go", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Go", got.Skill)
}

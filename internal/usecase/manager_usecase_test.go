package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
	"talent-portal-backend/pkg/logger"
)

func init() {
	logger.Init()
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func candidateFixture() *domain.User {
	return &domain.User{
		ID:    7,
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Role:  domain.RoleCandidate,
	}
}

func managerFixture() *domain.User {
	return &domain.User{
		ID:    1,
		Name:  "Carlos Lima",
		Email: "carlos@example.com",
		Role:  domain.RoleManager,
	}
}

func assertAppErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestScheduleInterview_Success(t *testing.T) {
	repo := new(MockUserRepo)
	notifier := new(MockNotifier)
	uc := NewManagerUsecase(repo, notifier, fixedClock)

	candidate := candidateFixture()
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(managerFixture(), nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), true, strPtr("2099-01-10"), strPtr("09:30")).Return(nil)
	notifier.On("SendInterviewScheduled", mock.Anything).Return(nil).Maybe()

	schedule, err := uc.ScheduleInterview(context.Background(), 7, 1, "2099-01-10", "09:30")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), schedule.CandidateID)
	assert.True(t, schedule.SelectedForInterview)
	assert.Equal(t, "2099-01-10", schedule.InterviewDate)
	assert.Equal(t, "09:30", schedule.InterviewTime)
	repo.AssertExpectations(t)
}

func TestScheduleInterview_NormalizesSingleDigitHour(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), true, strPtr("2099-01-10"), strPtr("09:30")).Return(nil)

	schedule, err := uc.ScheduleInterview(context.Background(), 7, 1, "2099-01-10", "9:30")

	assert.NoError(t, err)
	assert.Equal(t, "09:30", schedule.InterviewTime)
	repo.AssertExpectations(t)
}

func TestScheduleInterview_OutsideBusinessHours(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)

	_, err := uc.ScheduleInterview(context.Background(), 7, 1, "2099-01-10", "19:00")

	assert.ErrorIs(t, err, domain.ErrOutsideBusinessHours)
	assertAppErrorCode(t, err, http.StatusBadRequest)
	repo.AssertNotCalled(t, "UpdateInterview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleInterview_PastDate(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)

	_, err := uc.ScheduleInterview(context.Background(), 7, 1, "2020-01-01", "09:30")

	assert.ErrorIs(t, err, domain.ErrPastDateTime)
	assertAppErrorCode(t, err, http.StatusBadRequest)
}

func TestScheduleInterview_AlreadyScheduled(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	candidate := candidateFixture()
	candidate.SelectedForInterview = true
	candidate.InterviewDate = strPtr("2099-01-10")
	candidate.InterviewTime = strPtr("09:30")
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)

	_, err := uc.ScheduleInterview(context.Background(), 7, 1, "2099-02-01", "10:00")

	assert.ErrorIs(t, err, domain.ErrAlreadyScheduled)
	assertAppErrorCode(t, err, http.StatusConflict)
}

func TestScheduleInterview_CandidateNotFound(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := uc.ScheduleInterview(context.Background(), 99, 1, "2099-01-10", "09:30")

	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestScheduleInterview_ManagerTargetRejected(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(1)).Return(managerFixture(), nil)

	_, err := uc.ScheduleInterview(context.Background(), 1, 1, "2099-01-10", "09:30")

	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestScheduleInterview_NotifierFailureDoesNotFail(t *testing.T) {
	repo := new(MockUserRepo)
	notifier := new(MockNotifier)
	uc := NewManagerUsecase(repo, notifier, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(managerFixture(), nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), true, mock.Anything, mock.Anything).Return(nil)
	notifier.On("SendInterviewScheduled", mock.Anything).Return(errors.New("smtp down")).Maybe()

	_, err := uc.ScheduleInterview(context.Background(), 7, 1, "2099-01-10", "09:30")

	assert.NoError(t, err)
}

func TestRescheduleInterview_Success(t *testing.T) {
	repo := new(MockUserRepo)
	notifier := new(MockNotifier)
	uc := NewManagerUsecase(repo, notifier, fixedClock)

	candidate := candidateFixture()
	candidate.SelectedForInterview = true
	candidate.InterviewDate = strPtr("2099-01-10")
	candidate.InterviewTime = strPtr("09:30")
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(managerFixture(), nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), true, strPtr("2099-02-01"), strPtr("14:00")).Return(nil)
	notifier.On("SendInterviewRescheduled", mock.Anything).Return(nil).Maybe()

	schedule, err := uc.RescheduleInterview(context.Background(), 7, 1, "2099-02-01", "14:00")

	assert.NoError(t, err)
	assert.Equal(t, "2099-02-01", schedule.InterviewDate)
	assert.Equal(t, "14:00", schedule.InterviewTime)
	repo.AssertExpectations(t)
}

// Rescheduling to the slot already booked is allowed and leaves the same
// state behind.
func TestRescheduleInterview_SameSlotIsIdempotent(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	candidate := candidateFixture()
	candidate.SelectedForInterview = true
	candidate.InterviewDate = strPtr("2099-01-10")
	candidate.InterviewTime = strPtr("09:30")
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), true, strPtr("2099-01-10"), strPtr("09:30")).Return(nil)

	schedule, err := uc.RescheduleInterview(context.Background(), 7, 1, "2099-01-10", "09:30")

	assert.NoError(t, err)
	assert.Equal(t, "2099-01-10", schedule.InterviewDate)
	assert.Equal(t, "09:30", schedule.InterviewTime)
	repo.AssertExpectations(t)
}

func TestRescheduleInterview_NotScheduled(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)

	_, err := uc.RescheduleInterview(context.Background(), 7, 1, "2099-02-01", "14:00")

	assert.ErrorIs(t, err, domain.ErrNotScheduled)
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestRescheduleInterview_ValidatesSlot(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	candidate := candidateFixture()
	candidate.SelectedForInterview = true
	candidate.InterviewDate = strPtr("2099-01-10")
	candidate.InterviewTime = strPtr("09:30")
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)

	_, err := uc.RescheduleInterview(context.Background(), 7, 1, "2099-02-01", "19:30")

	assert.ErrorIs(t, err, domain.ErrOutsideBusinessHours)
	repo.AssertNotCalled(t, "UpdateInterview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelInterview_Success(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	candidate := candidateFixture()
	candidate.SelectedForInterview = true
	candidate.InterviewDate = strPtr("2099-01-10")
	candidate.InterviewTime = strPtr("09:30")
	repo.On("GetByID", mock.Anything, int64(7)).Return(candidate, nil)
	repo.On("UpdateInterview", mock.Anything, int64(7), false, (*string)(nil), (*string)(nil)).Return(nil)

	err := uc.CancelInterview(context.Background(), 7)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancelInterview_NotScheduled(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetByID", mock.Anything, int64(7)).Return(candidateFixture(), nil)

	err := uc.CancelInterview(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrNotScheduled)
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestListCandidates_NormalizesPagination(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("ListCandidates", mock.Anything, domain.CandidateFilter{Page: 1, Limit: 10, Search: "ana"}).
		Return([]domain.User{*candidateFixture()}, int64(1), nil)

	users, total, err := uc.ListCandidates(context.Background(), domain.CandidateFilter{Page: 0, Limit: 0, Search: "ana"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)
	repo.AssertExpectations(t)
}

func TestListCandidates_TrimsFilters(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("ListCandidates", mock.Anything, domain.CandidateFilter{Page: 1, Limit: 10, Search: "ana", Skill: "React"}).
		Return([]domain.User{*candidateFixture()}, int64(1), nil)

	_, _, err := uc.ListCandidates(context.Background(),
		domain.CandidateFilter{Page: 1, Limit: 10, Search: " ana ", Skill: "\tReact "})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListScheduledInterviews_RejectsBadDateFilter(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	_, _, err := uc.ListScheduledInterviews(context.Background(), domain.InterviewFilter{Date: "10/01/2099"})

	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	assertAppErrorCode(t, err, http.StatusBadRequest)
}

func TestGetCandidate_NotFoundForManagerRole(t *testing.T) {
	repo := new(MockUserRepo)
	uc := NewManagerUsecase(repo, nil, fixedClock)

	repo.On("GetWithRelations", mock.Anything, int64(1)).Return(managerFixture(), nil)

	_, err := uc.GetCandidate(context.Background(), 1)

	assertAppErrorCode(t, err, http.StatusNotFound)
}

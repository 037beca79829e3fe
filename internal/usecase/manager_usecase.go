package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
	"talent-portal-backend/pkg/logger"
)

const defaultPageSize = 10

type managerUsecase struct {
	users    domain.UserRepository
	notifier domain.Notifier
	now      func() time.Time
}

// NewManagerUsecase wires the manager-facing operations. The clock is
// injected so slot validation is testable.
func NewManagerUsecase(users domain.UserRepository, notifier domain.Notifier, now func() time.Time) domain.ManagerUsecase {
	if now == nil {
		now = time.Now
	}
	return &managerUsecase{
		users:    users,
		notifier: notifier,
		now:      now,
	}
}

func (u *managerUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	// Stray whitespace would leak into the ILIKE pattern otherwise.
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Skill = strings.TrimSpace(filter.Skill)
	return u.users.ListCandidates(ctx, filter)
}

func (u *managerUsecase) GetCandidate(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.users.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}
	return user, nil
}

func (u *managerUsecase) ScheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*domain.InterviewSchedule, error) {
	candidate, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.SelectedForInterview {
		return nil, apperror.New(http.StatusConflict, domain.ErrAlreadyScheduled.Error(), domain.ErrAlreadyScheduled)
	}

	slot, err := validateInterviewSlot(u.now(), date, timeOfDay)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	normalized := canonicalTime(slot)

	if err := u.users.UpdateInterview(ctx, candidateID, true, &date, &normalized); err != nil {
		return nil, err
	}

	u.notifyAsync(ctx, managerID, domain.InterviewNotice{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		Date:           displayDate(date),
		Time:           normalized,
	}, false)

	return &domain.InterviewSchedule{
		CandidateID:          candidateID,
		SelectedForInterview: true,
		InterviewDate:        date,
		InterviewTime:        normalized,
	}, nil
}

func (u *managerUsecase) RescheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*domain.InterviewSchedule, error) {
	candidate, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !candidate.SelectedForInterview {
		return nil, apperror.New(http.StatusNotFound, domain.ErrNotScheduled.Error(), domain.ErrNotScheduled)
	}

	// A reschedule goes through the same slot checks as the original
	// booking.
	slot, err := validateInterviewSlot(u.now(), date, timeOfDay)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	normalized := canonicalTime(slot)

	oldDate := "previous date"
	oldTime := "previous time"
	if candidate.InterviewDate != nil {
		oldDate = displayDate(*candidate.InterviewDate)
	}
	if candidate.InterviewTime != nil {
		oldTime = *candidate.InterviewTime
	}

	if err := u.users.UpdateInterview(ctx, candidateID, true, &date, &normalized); err != nil {
		return nil, err
	}

	u.notifyAsync(ctx, managerID, domain.InterviewNotice{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		Date:           displayDate(date),
		Time:           normalized,
		OldDate:        oldDate,
		OldTime:        oldTime,
	}, true)

	return &domain.InterviewSchedule{
		CandidateID:          candidateID,
		SelectedForInterview: true,
		InterviewDate:        date,
		InterviewTime:        normalized,
	}, nil
}

func (u *managerUsecase) CancelInterview(ctx context.Context, candidateID int64) error {
	candidate, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	if !candidate.SelectedForInterview {
		return apperror.New(http.StatusNotFound, domain.ErrNotScheduled.Error(), domain.ErrNotScheduled)
	}

	// Cancelling clears the whole interview tuple; no notification is sent.
	return u.users.UpdateInterview(ctx, candidateID, false, nil, nil)
}

func (u *managerUsecase) ListScheduledInterviews(ctx context.Context, filter domain.InterviewFilter) ([]domain.User, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Date != "" {
		if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
			return nil, 0, apperror.New(http.StatusBadRequest, domain.ErrInvalidDateFormat.Error(), domain.ErrInvalidDateFormat)
		}
	}
	return u.users.ListScheduled(ctx, filter)
}

func (u *managerUsecase) loadCandidate(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}
	return user, nil
}

// notifyAsync sends the interview email off the request path. Delivery
// failures are logged, never surfaced to the caller.
func (u *managerUsecase) notifyAsync(ctx context.Context, managerID int64, notice domain.InterviewNotice, rescheduled bool) {
	if u.notifier == nil {
		return
	}

	if manager, err := u.users.GetByID(ctx, managerID); err == nil && manager != nil {
		notice.ManagerName = manager.Name
	} else {
		notice.ManagerName = "The recruitment team"
	}

	go func() {
		var err error
		if rescheduled {
			err = u.notifier.SendInterviewRescheduled(notice)
		} else {
			err = u.notifier.SendInterviewScheduled(notice)
		}
		if err != nil {
			logger.Log.Warn("interview notification failed",
				"candidate_email", notice.CandidateEmail, "error", err)
		}
	}()
}

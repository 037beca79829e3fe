package domain

import "errors"

// Interview slot validation failures. The scheduling usecase wraps these in
// HTTP-coded errors; callers can still match them with errors.Is.
var (
	ErrInvalidTimeFormat    = errors.New("invalid interview time format, use HH:MM")
	ErrInvalidDateFormat    = errors.New("invalid interview date format, use YYYY-MM-DD")
	ErrPastDateTime         = errors.New("interview date and time must be in the future")
	ErrOutsideBusinessHours = errors.New("interview time must be between 08:00 and 18:00")
	ErrNotScheduled         = errors.New("candidate is not scheduled for an interview")
	ErrAlreadyScheduled     = errors.New("candidate is already scheduled for an interview")
)

// InterviewSchedule is the interview state returned after a successful
// schedule or reschedule.
type InterviewSchedule struct {
	CandidateID          int64  `json:"candidate_id"`
	SelectedForInterview bool   `json:"selected_for_interview"`
	InterviewDate        string `json:"interview_date"` // YYYY-MM-DD
	InterviewTime        string `json:"interview_time"` // HH:MM
}

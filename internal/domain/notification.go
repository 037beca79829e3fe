package domain

import "time"

// InterviewNotice carries the data for interview emails. Dates are already
// formatted for display (DD/MM/YYYY). OldDate/OldTime are only set for
// reschedule notices.
type InterviewNotice struct {
	CandidateName  string
	CandidateEmail string
	ManagerName    string
	Date           string
	Time           string
	OldDate        string
	OldTime        string
}

// Notifier sends templated emails. Implementations may block on the
// network; callers dispatch them outside the request's write path and
// treat failures as log-only.
type Notifier interface {
	SendWelcome(user *User) error
	SendLoginAlert(user *User, at time.Time) error
	SendInterviewScheduled(notice InterviewNotice) error
	SendInterviewRescheduled(notice InterviewNotice) error
}

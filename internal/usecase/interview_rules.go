package usecase

import (
	"regexp"
	"strconv"
	"time"

	"talent-portal-backend/internal/domain"
)

// Interview slots are only offered during business hours, inclusive on
// both ends.
const (
	businessHoursStart = 8
	businessHoursEnd   = 18
)

var interviewTimeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// validateInterviewSlot checks a proposed date/time pair and returns the
// resulting instant. Checks run in a fixed order so clients always see the
// most specific failure first: time format, date format, future, business
// hours.
func validateInterviewSlot(now time.Time, dateStr, timeStr string) (time.Time, error) {
	m := interviewTimeRe.FindStringSubmatch(timeStr)
	if m == nil {
		return time.Time{}, domain.ErrInvalidTimeFormat
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	slot := time.Date(day.Year(), day.Month(), day.Day(), hours, minutes, 0, 0, now.Location())

	if !slot.After(now) {
		return time.Time{}, domain.ErrPastDateTime
	}
	if hours < businessHoursStart || hours > businessHoursEnd {
		return time.Time{}, domain.ErrOutsideBusinessHours
	}
	return slot, nil
}

// canonicalTime normalizes an accepted slot time to zero-padded HH:MM.
func canonicalTime(t time.Time) string {
	return t.Format("15:04")
}

// displayDate converts a stored YYYY-MM-DD date to DD/MM/YYYY for emails.
func displayDate(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("02/01/2006")
}

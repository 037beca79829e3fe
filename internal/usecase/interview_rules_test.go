package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talent-portal-backend/internal/domain"
)

func TestValidateInterviewSlot(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		time    string
		wantErr error
	}{
		{"valid morning slot", "2025-06-16", "09:30", nil},
		{"valid single-digit hour", "2025-06-16", "9:30", nil},
		{"valid boundary start", "2025-06-16", "08:00", nil},
		{"valid boundary end", "2025-06-16", "18:59", nil},
		{"bad time format", "2025-06-16", "25:00", domain.ErrInvalidTimeFormat},
		{"bad time minutes", "2025-06-16", "10:75", domain.ErrInvalidTimeFormat},
		{"empty time", "2025-06-16", "", domain.ErrInvalidTimeFormat},
		{"bad date format", "16/06/2025", "09:30", domain.ErrInvalidDateFormat},
		{"past date", "2020-01-01", "09:30", domain.ErrPastDateTime},
		{"same day earlier time", "2025-06-15", "09:00", domain.ErrPastDateTime},
		{"too early", "2025-06-16", "07:59", domain.ErrOutsideBusinessHours},
		{"too late", "2025-06-16", "19:00", domain.ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := validateInterviewSlot(now, tt.date, tt.time)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, slot.After(now))
		})
	}
}

// The time format is checked before the date so a request that is wrong in
// both ways reports the time problem.
func TestValidateInterviewSlot_TimeCheckedFirst(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := validateInterviewSlot(now, "not-a-date", "not-a-time")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)
}

func TestCanonicalTime(t *testing.T) {
	slot := time.Date(2025, 6, 16, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "09:05", canonicalTime(slot))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "16/06/2025", displayDate("2025-06-16"))
	assert.Equal(t, "garbage", displayDate("garbage"))
}

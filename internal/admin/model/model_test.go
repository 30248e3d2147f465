package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsMasterAdmin(t *testing.T) {
	u := &User{Email: "Admin@CareConnect.example"}

	assert.True(t, u.IsMasterAdmin("admin@careconnect.example"))
	assert.False(t, u.IsMasterAdmin("other@careconnect.example"))
	assert.False(t, u.IsMasterAdmin(""))
}

func TestNewHireFullName(t *testing.T) {
	n := &NewHire{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", n.FullName())
}

func TestSameCalendarDay(t *testing.T) {
	loc := time.UTC
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, loc)
	night := time.Date(2026, 3, 14, 23, 59, 0, 0, loc)
	nextDay := time.Date(2026, 3, 15, 0, 1, 0, 0, loc)

	assert.True(t, SameCalendarDay(morning, night, loc))
	assert.False(t, SameCalendarDay(night, nextDay, loc))
}

func TestSameCalendarDayAcrossZones(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)

	// 22:00 UTC and 04:00 UTC next day are the same day in UTC+10
	a := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 15, 4, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(a, b, loc))
	assert.False(t, SameCalendarDay(a, b, time.UTC))
}

func TestUserDocumentIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		row  UserDocument
		want bool
	}{
		{"past due not started", UserDocument{Status: DocStatusNotStarted, DueAt: &past}, true},
		{"past due started", UserDocument{Status: DocStatusStarted, DueAt: &past}, true},
		{"past due completed", UserDocument{Status: DocStatusCompleted, DueAt: &past}, false},
		{"not yet due", UserDocument{Status: DocStatusNotStarted, DueAt: &future}, false},
		{"no due date", UserDocument{Status: DocStatusNotStarted}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.IsOverdue(now))
		})
	}
}

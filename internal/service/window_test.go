package service

import (
	"testing"
	"time"

	"github.com/edudesk/attendance_service/internal/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func scheduleItem(date time.Time, start, end *string) *model.ScheduleItem {
	return &model.ScheduleItem{
		ID:        1,
		TeacherID: 1,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      "lesson",
	}
}

func TestRedemptionWindow_LessonTimesBoundTheWindow(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	item := scheduleItem(date, strPtr("10:00"), strPtr("10:45"))

	occursAt := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
	session := &model.AttendanceSession{
		OccursAt:  occursAt,
		ExpiresAt: occursAt.Add(5 * time.Minute),
	}

	earliest, latest := RedemptionWindow(item, session)

	assert.Equal(t, time.Date(2025, 9, 24, 9, 45, 0, 0, time.UTC), earliest)
	// max(10:45 + 60m, 10:05) = 11:45
	assert.Equal(t, time.Date(2025, 9, 24, 11, 45, 0, 0, time.UTC), latest)
}

func TestRedemptionWindow_LongTTLExtendsTheWindow(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	item := scheduleItem(date, strPtr("10:00"), strPtr("10:45"))

	occursAt := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
	session := &model.AttendanceSession{
		OccursAt:  occursAt,
		ExpiresAt: occursAt.Add(4 * time.Hour),
	}

	_, latest := RedemptionWindow(item, session)

	// expires_at позже конца занятия с буфером, значит окно тянется до него
	assert.Equal(t, session.ExpiresAt, latest)
}

func TestRedemptionWindow_NeverEndsBeforeExpiry(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)

	for _, ttl := range []time.Duration{time.Minute, 5 * time.Minute, 2 * time.Hour, 48 * time.Hour} {
		occursAt := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
		session := &model.AttendanceSession{
			OccursAt:  occursAt,
			ExpiresAt: occursAt.Add(ttl),
		}

		_, latest := RedemptionWindow(scheduleItem(date, strPtr("10:00"), strPtr("10:45")), session)
		assert.False(t, latest.Before(session.ExpiresAt), "latest must not precede expires_at for ttl %v", ttl)
	}
}

func TestScheduledTimes_MissingEndTimeUsesDefaultDuration(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	item := scheduleItem(date, strPtr("10:00"), nil)

	start, end := ScheduledTimes(item, time.Time{})

	assert.Equal(t, time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, start.Add(45*time.Minute), end)
}

func TestScheduledTimes_MissingStartTimeFallsBackToOccursAt(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	item := scheduleItem(date, nil, nil)

	occursAt := time.Date(2025, 9, 24, 14, 30, 0, 0, time.UTC)
	start, end := ScheduledTimes(item, occursAt)

	assert.Equal(t, occursAt, start)
	assert.Equal(t, occursAt.Add(45*time.Minute), end)
}

func TestScheduledTimes_MalformedTimeTreatedAsAbsent(t *testing.T) {
	date := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	item := scheduleItem(date, strPtr("25:99"), strPtr("later"))

	occursAt := time.Date(2025, 9, 24, 14, 30, 0, 0, time.UTC)
	start, end := ScheduledTimes(item, occursAt)

	assert.Equal(t, occursAt, start)
	assert.Equal(t, occursAt.Add(45*time.Minute), end)
}

func TestScheduledTimes_SecondsAreZeroed(t *testing.T) {
	date := time.Date(2025, 9, 24, 13, 59, 58, 12345, time.UTC)
	item := scheduleItem(date, strPtr("08:15"), nil)

	start, _ := ScheduledTimes(item, time.Time{})

	assert.Equal(t, time.Date(2025, 9, 24, 8, 15, 0, 0, time.UTC), start)
}

package service

import (
	"time"

	"github.com/edudesk/attendance_service/internal/model"
)

const (
	// Отметиться можно немного раньше начала занятия
	startBuffer = 15 * time.Minute
	// И в течение часа после его конца
	endBuffer = 60 * time.Minute
	// Длительность занятия, если в расписании не задано время окончания
	defaultLessonDuration = 45 * time.Minute
)

// ScheduledTimes вычисляет фактические моменты начала и конца занятия из даты
// и строк "HH:MM" расписания. Если время начала не задано, берём fallback
// (момент occurs_at сессии); если не задан конец - начало плюс стандартная
// длительность занятия
func ScheduledTimes(item *model.ScheduleItem, fallback time.Time) (time.Time, time.Time) {
	start := fallback
	if t, ok := atTimeOfDay(item.Date, item.StartTime); ok {
		start = t
	}

	end := start.Add(defaultLessonDuration)
	if t, ok := atTimeOfDay(item.Date, item.EndTime); ok {
		end = t
	}

	return start, end
}

// RedemptionWindow вычисляет интервал, в котором токен можно погасить.
// Поздняя граница - максимум из "конец занятия + буфер" и expires_at токена:
// TTL ограничивает задержку между выпуском и сканированием QR, окно -
// близость к реальному времени занятия, и короткий TTL не должен срезать
// легитимное окно самого занятия
func RedemptionWindow(item *model.ScheduleItem, session *model.AttendanceSession) (time.Time, time.Time) {
	start, end := ScheduledTimes(item, session.OccursAt)

	earliest := start.Add(-startBuffer)

	latest := end.Add(endBuffer)
	if session.ExpiresAt.After(latest) {
		latest = session.ExpiresAt
	}

	return earliest, latest
}

// atTimeOfDay накладывает время "HH:MM" на дату; секунды обнуляются.
// Пустое или кривое значение трактуется как отсутствующее
func atTimeOfDay(date time.Time, hhmm *string) (time.Time, bool) {
	if hhmm == nil || *hhmm == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse("15:04", *hhmm)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), true
}

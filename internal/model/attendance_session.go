package model

import "time"

type ParticipantType string

const (
	ParticipantTeacher ParticipantType = "teacher" // токен для отметки учителем
	ParticipantStudent ParticipantType = "student" // токен для отметки студентом
)

type SessionStatus string

const (
	SessionStatusActive      SessionStatus = "active"
	SessionStatusExpired     SessionStatus = "expired"
	SessionStatusInvalidated SessionStatus = "invalidated"
	SessionStatusConsumed    SessionStatus = "consumed"
)

// SessionMetadata - снимок отображаемых полей занятия на момент выпуска токена,
// чтобы при отметке не перечитывать полное расписание
type SessionMetadata struct {
	Date          string  `json:"date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	LessonType    string  `json:"lesson_type,omitempty"`
	Subject       string  `json:"subject,omitempty"`
	TeacherName   string  `json:"teacher_name,omitempty"`
	GroupName     *string `json:"group_name,omitempty"`
	ClassroomName *string `json:"classroom_name,omitempty"`
}

// AttendanceSession - одноразовая сессия отметки посещаемости по QR-токену
type AttendanceSession struct {
	ID              string          `json:"id"`
	ScheduleItemID  int64           `json:"schedule_item_id"`
	Token           string          `json:"token"`
	OccursAt        time.Time       `json:"occurs_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
	ParticipantType ParticipantType `json:"participant_type"`
	CreatedByUserID int64           `json:"created_by_user_id"`
	InvalidatedAt   *time.Time      `json:"invalidated_at"` // nil = не отозвана
	ConsumedAt      *time.Time      `json:"consumed_at"`    // nil = ещё не погашена
	Metadata        SessionMetadata `json:"metadata"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Status returns the lifecycle state as of the given instant. Expiry is
// derived, never stored.
func (s *AttendanceSession) Status(now time.Time) SessionStatus {
	if s.ConsumedAt != nil {
		return SessionStatusConsumed
	}
	if s.InvalidatedAt != nil {
		return SessionStatusInvalidated
	}
	if !now.Before(s.ExpiresAt) {
		return SessionStatusExpired
	}
	return SessionStatusActive
}

// IsActive checks that the session is still redeemable at the given instant
func (s *AttendanceSession) IsActive(now time.Time) bool {
	return s.Status(now) == SessionStatusActive
}

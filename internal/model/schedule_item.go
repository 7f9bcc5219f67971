package model

import "time"

// ScheduleItem - конкретное занятие в календаре (дата, время, учитель, группа).
// Эта подсистема читает расписание, но не владеет им.
type ScheduleItem struct {
	ID        int64      `json:"id"`
	TeacherID int64      `json:"teacher_id"`
	GroupID   *int64     `json:"group_id"`   // nil = занятие без группы (индивидуальное)
	LessonID  *int64     `json:"lesson_id"`  // nil = занятие без привязки к уроку
	Date      time.Time  `json:"date"`       // только дата, время в StartTime/EndTime
	StartTime *string    `json:"start_time"` // "HH:MM", nil = время не задано
	EndTime   *string    `json:"end_time"`
	Type      string     `json:"type"`
	DeletedAt *time.Time `json:"deleted_at"`

	// Дополнительные поля для удобства (из JOIN, не из самой таблицы)
	Subject       string  `json:"subject,omitempty"`
	TeacherName   string  `json:"teacher_name,omitempty"`
	GroupName     *string `json:"group_name,omitempty"`
	ClassroomName *string `json:"classroom_name,omitempty"`
}

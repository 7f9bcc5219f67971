package model

import "time"

// Teacher - профиль учителя, привязанный к учётной записи
type Teacher struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	FullName  string     `json:"full_name"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// Student - профиль студента; группа может отсутствовать
type Student struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	FullName  string     `json:"full_name"`
	GroupID   *int64     `json:"group_id"` // nil = студент без группы
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
}

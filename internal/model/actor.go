package model

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Actor - идентичность вызывающего, извлечённая из JWT на уровне транспорта.
// Полные учётные записи живут в общем auth-сервисе платформы, эта подсистема
// видит только id и роль
type Actor struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

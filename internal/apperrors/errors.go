package apperrors

import (
	"errors"
	"net/http"
)

// Определение типов ошибок подсистемы отметки посещаемости
var (
	// Не найдено
	ErrScheduleItemNotFound = errors.New("schedule item not found")
	// Токен не существует или был отозван: эти случаи намеренно не
	// различаются наружу, чтобы по ответу нельзя было перебирать токены
	ErrSessionNotFound = errors.New("attendance session not found")

	// Запрещено
	ErrForbidden            = errors.New("forbidden")
	ErrNotLessonTeacher     = errors.New("actor is not the teacher of this lesson")
	ErrWrongGroup           = errors.New("student group does not match the lesson group")
	ErrProfileNotFound      = errors.New("no matching teacher or student profile")
	ErrWrongParticipantType = errors.New("wrong participant type for this token")

	// Некорректный запрос
	ErrInvalidOccursAt     = errors.New("invalid occurs_at timestamp")
	ErrSessionExpired      = errors.New("attendance token expired")
	ErrCheckinTooEarly     = errors.New("check-in window has not opened yet")
	ErrCheckinWindowClosed = errors.New("check-in window closed")
)

// HTTPStatus переводит ошибку подсистемы в HTTP статус-код
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrScheduleItemNotFound),
		errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrNotLessonTeacher),
		errors.Is(err, ErrWrongGroup),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrWrongParticipantType):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidOccursAt),
		errors.Is(err, ErrSessionExpired),
		errors.Is(err, ErrCheckinTooEarly),
		errors.Is(err, ErrCheckinWindowClosed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

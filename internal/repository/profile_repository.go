package repository

import (
	"context"
	"fmt"

	"github.com/edudesk/attendance_service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository читает профили учителей и студентов для проверок владения
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetTeacherByUserID получает профиль учителя по ID учётной записи
func (r *ProfileRepository) GetTeacherByUserID(ctx context.Context, userID int64) (*model.Teacher, error) {
	query := `
		SELECT id, user_id, full_name, deleted_at, created_at
		FROM teachers
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	var teacher model.Teacher
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.FullName,
		&teacher.DeletedAt,
		&teacher.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get teacher by user id: %w", err)
	}

	return &teacher, nil
}

// GetStudentByUserID получает профиль студента по ID учётной записи
func (r *ProfileRepository) GetStudentByUserID(ctx context.Context, userID int64) (*model.Student, error) {
	query := `
		SELECT id, user_id, full_name, group_id, deleted_at, created_at
		FROM students
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&student.ID,
		&student.UserID,
		&student.FullName,
		&student.GroupID,
		&student.DeletedAt,
		&student.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by user id: %w", err)
	}

	return &student, nil
}

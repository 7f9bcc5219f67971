package repository

import (
	"context"
	"fmt"

	"github.com/edudesk/attendance_service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository читает занятия из расписания; эта подсистема их не изменяет
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// GetByID получает занятие по ID вместе с отображаемыми полями
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*model.ScheduleItem, error) {
	query := `
		SELECT si.id, si.teacher_id, si.group_id, si.lesson_id, si.date,
		       si.start_time, si.end_time, si.type, si.deleted_at,
		       COALESCE(l.subject, ''), t.full_name, g.name, c.name
		FROM schedule_items si
		JOIN teachers t ON t.id = si.teacher_id
		LEFT JOIN lessons l ON l.id = si.lesson_id
		LEFT JOIN groups g ON g.id = si.group_id
		LEFT JOIN classrooms c ON c.id = si.classroom_id
		WHERE si.id = $1
	`

	var item model.ScheduleItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.TeacherID,
		&item.GroupID,
		&item.LessonID,
		&item.Date,
		&item.StartTime,
		&item.EndTime,
		&item.Type,
		&item.DeletedAt,
		&item.Subject,
		&item.TeacherName,
		&item.GroupName,
		&item.ClassroomName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule item by id: %w", err)
	}

	return &item, nil
}

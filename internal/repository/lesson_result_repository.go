package repository

import (
	"context"
	"fmt"

	"github.com/edudesk/attendance_service/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LessonResultRepository пишет факт присутствия в итоги урока. Сами итоги
// (оценки, комментарии) принадлежат другой подсистеме
type LessonResultRepository struct {
	*base.Repository
}

func NewLessonResultRepository(pool *pgxpool.Pool) *LessonResultRepository {
	return &LessonResultRepository{Repository: base.NewRepository(pool)}
}

// UpsertPresence отмечает присутствие студента на уроке и снимает ранее
// записанную причину отсутствия. Ключ (student_id, lesson_id), поэтому
// повторный вызов - это no-op update, а не дубликат
func (r *LessonResultRepository) UpsertPresence(ctx context.Context, studentID, lessonID int64) error {
	query := `
		INSERT INTO lesson_results (student_id, lesson_id, attendance, absent_reason, absent_comment)
		VALUES ($1, $2, TRUE, NULL, NULL)
		ON CONFLICT (student_id, lesson_id)
		DO UPDATE SET attendance = TRUE, absent_reason = NULL, absent_comment = NULL, updated_at = now()
	`

	_, err := r.ExecAffected(ctx, query, studentID, lessonID)
	if err != nil {
		return fmt.Errorf("upsert presence: %w", err)
	}

	return nil
}

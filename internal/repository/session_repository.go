package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/edudesk/attendance_service/internal/apperrors"
	"github.com/edudesk/attendance_service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Create создаёт новую сессию отметки посещаемости
func (r *SessionRepository) Create(ctx context.Context, session *model.AttendanceSession) error {
	query := `
		INSERT INTO attendance_sessions
			(id, schedule_item_id, token, occurs_at, expires_at, participant_type, created_by_user_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		session.ID,
		session.ScheduleItemID,
		session.Token,
		session.OccursAt,
		session.ExpiresAt,
		session.ParticipantType,
		session.CreatedByUserID,
		session.Metadata,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("create attendance session: %w", err)
	}

	return nil
}

// GetByToken получает сессию по токену
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*model.AttendanceSession, error) {
	query := `
		SELECT id, schedule_item_id, token, occurs_at, expires_at, participant_type,
		       created_by_user_id, invalidated_at, consumed_at, metadata, created_at
		FROM attendance_sessions
		WHERE token = $1
	`

	var session model.AttendanceSession
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.ScheduleItemID,
		&session.Token,
		&session.OccursAt,
		&session.ExpiresAt,
		&session.ParticipantType,
		&session.CreatedByUserID,
		&session.InvalidatedAt,
		&session.ConsumedAt,
		&session.Metadata,
		&session.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by token: %w", err)
	}

	return &session, nil
}

// InvalidateActive отзывает все ещё активные сессии занятия одним UPDATE.
// Погашенные и истёкшие сессии не трогаем
func (r *SessionRepository) InvalidateActive(ctx context.Context, scheduleItemID int64, now time.Time) (int64, error) {
	query := `
		UPDATE attendance_sessions
		SET invalidated_at = $2
		WHERE schedule_item_id = $1
		  AND invalidated_at IS NULL
		  AND consumed_at IS NULL
		  AND expires_at > $2
	`

	result, err := r.pool.Exec(ctx, query, scheduleItemID, now)
	if err != nil {
		return 0, fmt.Errorf("invalidate active sessions: %w", err)
	}

	return result.RowsAffected(), nil
}

// Consume проставляет consumed_at, если он ещё не проставлен, и возвращает
// итоговое значение. Повторный вызов возвращает исходную отметку времени.
// Гашение и отзыв взаимоисключающие: если сессию успели отозвать, UPDATE
// не находит строку и выигрывает первый записавший
func (r *SessionRepository) Consume(ctx context.Context, id string, now time.Time) (time.Time, error) {
	query := `
		UPDATE attendance_sessions
		SET consumed_at = COALESCE(consumed_at, $2)
		WHERE id = $1 AND invalidated_at IS NULL
		RETURNING consumed_at
	`

	var consumedAt time.Time
	err := r.pool.QueryRow(ctx, query, id, now).Scan(&consumedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Отозвана или не существует - наружу неразличимо
			return time.Time{}, apperrors.ErrSessionNotFound
		}
		return time.Time{}, fmt.Errorf("consume session: %w", err)
	}

	return consumedAt, nil
}

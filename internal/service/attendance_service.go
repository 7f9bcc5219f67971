package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edudesk/attendance_service/internal/apperrors"
	"github.com/edudesk/attendance_service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore хранилище сессий отметки посещаемости
type SessionStore interface {
	Create(ctx context.Context, session *model.AttendanceSession) error
	GetByToken(ctx context.Context, token string) (*model.AttendanceSession, error)
	InvalidateActive(ctx context.Context, scheduleItemID int64, now time.Time) (int64, error)
	Consume(ctx context.Context, id string, now time.Time) (time.Time, error)
}

// ScheduleStore доступ к расписанию (только чтение)
type ScheduleStore interface {
	GetByID(ctx context.Context, id int64) (*model.ScheduleItem, error)
}

// ProfileStore доступ к профилям учителей и студентов (только чтение)
type ProfileStore interface {
	GetTeacherByUserID(ctx context.Context, userID int64) (*model.Teacher, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*model.Student, error)
}

// LessonResultStore внешний коллаборатор с итогами уроков
type LessonResultStore interface {
	UpsertPresence(ctx context.Context, studentID, lessonID int64) error
}

type AttendanceService struct {
	sessions SessionStore
	schedule ScheduleStore
	profiles ProfileStore
	results  LessonResultStore
	tokenTTL time.Duration
	baseURL  string
	logger   *zap.Logger
}

func NewAttendanceService(
	sessions SessionStore,
	schedule ScheduleStore,
	profiles ProfileStore,
	results LessonResultStore,
	tokenTTL time.Duration,
	baseURL string,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		sessions: sessions,
		schedule: schedule,
		profiles: profiles,
		results:  results,
		tokenTTL: tokenTTL,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// IssuedSession результат выпуска токена; RedemptionURL уходит в QR-код
type IssuedSession struct {
	ID              string                `json:"id"`
	ScheduleItemID  int64                 `json:"schedule_item_id"`
	OccursAt        time.Time             `json:"occurs_at"`
	ExpiresAt       time.Time             `json:"expires_at"`
	Token           string                `json:"token"`
	RedemptionURL   string                `json:"redemption_url"`
	ParticipantType model.ParticipantType `json:"participant_type"`
	CreatedAt       time.Time             `json:"created_at"`
}

// RedemptionLesson отображаемые поля занятия в ответе на отметку
type RedemptionLesson struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Subject       string  `json:"subject,omitempty"`
	GroupName     *string `json:"group_name,omitempty"`
	ClassroomName *string `json:"classroom_name,omitempty"`
	TeacherName   string  `json:"teacher_name,omitempty"`
}

// RedemptionSession временные отметки сессии в ответе на отметку
type RedemptionSession struct {
	ID         string     `json:"id"`
	OccursAt   time.Time  `json:"occurs_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
}

type RedemptionResult struct {
	Lesson  RedemptionLesson  `json:"lesson"`
	Session RedemptionSession `json:"session"`
}

// IssueSession открывает окно отметки посещаемости для занятия: отзывает
// прежние активные сессии и выпускает новый токен. Отзыв и вставка - два
// отдельных запроса; одновременный двойной выпуск одним учителем может на
// мгновение оставить две активные сессии, для этой низкочастотной операции
// это принято как допустимое
func (s *AttendanceService) IssueSession(
	ctx context.Context,
	scheduleItemID int64,
	occursAt time.Time,
	participantType model.ParticipantType,
	issuer model.Actor,
) (*IssuedSession, error) {
	item, err := s.schedule.GetByID(ctx, scheduleItemID)
	if err != nil {
		return nil, fmt.Errorf("get schedule item: %w", err)
	}

	if item == nil || item.DeletedAt != nil {
		return nil, apperrors.ErrScheduleItemNotFound
	}

	// Не-админ может открывать отметку только на своём занятии
	if !issuer.IsAdmin() {
		teacher, err := s.profiles.GetTeacherByUserID(ctx, issuer.UserID)
		if err != nil {
			return nil, fmt.Errorf("get teacher profile: %w", err)
		}

		if teacher == nil {
			return nil, apperrors.ErrProfileNotFound
		}

		if teacher.ID != item.TeacherID {
			return nil, apperrors.ErrNotLessonTeacher
		}
	}

	now := time.Now()

	invalidated, err := s.sessions.InvalidateActive(ctx, scheduleItemID, now)
	if err != nil {
		return nil, fmt.Errorf("invalidate previous sessions: %w", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if participantType == "" {
		participantType = model.ParticipantTeacher
	}

	session := &model.AttendanceSession{
		ID:              uuid.NewString(),
		ScheduleItemID:  scheduleItemID,
		Token:           token,
		OccursAt:        occursAt,
		ExpiresAt:       occursAt.Add(s.tokenTTL),
		ParticipantType: participantType,
		CreatedByUserID: issuer.UserID,
		Metadata:        snapshotMetadata(item),
		CreatedAt:       now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("Attendance session issued",
		zap.String("session_id", session.ID),
		zap.Int64("schedule_item_id", scheduleItemID),
		zap.String("participant_type", string(participantType)),
		zap.Int64("issued_by", issuer.UserID),
		zap.Int64("invalidated_count", invalidated),
		zap.Time("expires_at", session.ExpiresAt),
	)

	return &IssuedSession{
		ID:              session.ID,
		ScheduleItemID:  session.ScheduleItemID,
		OccursAt:        session.OccursAt,
		ExpiresAt:       session.ExpiresAt,
		Token:           session.Token,
		RedemptionURL:   fmt.Sprintf("%s/attendance/check-in?token=%s", s.baseURL, session.Token),
		ParticipantType: session.ParticipantType,
		CreatedAt:       session.CreatedAt,
	}, nil
}

// RedeemSession гасит токен и подтверждает присутствие. Проверки идут строго
// по порядку: существование и отзыв, TTL, окно занятия, тип участника, роль
// и принадлежность. Повторное гашение того же токена успешно и не двигает
// consumed_at
func (s *AttendanceService) RedeemSession(
	ctx context.Context,
	token string,
	participantType model.ParticipantType,
	redeemer model.Actor,
) (*RedemptionResult, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Несуществующий и отозванный токен наружу неразличимы
	if session == nil || session.InvalidatedAt != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	now := time.Now()

	if !now.Before(session.ExpiresAt) {
		return nil, apperrors.ErrSessionExpired
	}

	item, err := s.schedule.GetByID(ctx, session.ScheduleItemID)
	if err != nil {
		return nil, fmt.Errorf("get schedule item: %w", err)
	}

	if item == nil || item.DeletedAt != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	earliest, latest := RedemptionWindow(item, session)
	if now.Before(earliest) {
		return nil, apperrors.ErrCheckinTooEarly
	}
	if now.After(latest) {
		return nil, apperrors.ErrCheckinWindowClosed
	}

	if participantType == "" {
		participantType = model.ParticipantTeacher
	}

	if participantType != session.ParticipantType {
		return nil, apperrors.ErrWrongParticipantType
	}

	switch session.ParticipantType {
	case model.ParticipantTeacher:
		if err := s.authorizeTeacher(ctx, item, redeemer); err != nil {
			return nil, err
		}
	case model.ParticipantStudent:
		if err := s.authorizeAndMarkStudent(ctx, item, redeemer); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrWrongParticipantType
	}

	consumedAt, err := s.sessions.Consume(ctx, session.ID, now)
	if err != nil {
		// Параллельный перевыпуск мог отозвать сессию после GetByToken;
		// тогда гашение проигрывает и токен для гасящего "не найден"
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("consume session: %w", err)
	}

	s.logger.Info("Attendance session redeemed",
		zap.String("session_id", session.ID),
		zap.Int64("schedule_item_id", session.ScheduleItemID),
		zap.String("participant_type", string(session.ParticipantType)),
		zap.Int64("redeemed_by", redeemer.UserID),
		zap.Time("consumed_at", consumedAt),
	)

	return &RedemptionResult{
		Lesson: RedemptionLesson{
			ID:            session.ScheduleItemID,
			Date:          session.Metadata.Date,
			StartTime:     session.Metadata.StartTime,
			EndTime:       session.Metadata.EndTime,
			Subject:       session.Metadata.Subject,
			GroupName:     session.Metadata.GroupName,
			ClassroomName: session.Metadata.ClassroomName,
			TeacherName:   session.Metadata.TeacherName,
		},
		Session: RedemptionSession{
			ID:         session.ID,
			OccursAt:   session.OccursAt,
			ExpiresAt:  session.ExpiresAt,
			ConsumedAt: &consumedAt,
		},
	}, nil
}

// authorizeTeacher проверяет что гасящий - админ или учитель этого занятия
func (s *AttendanceService) authorizeTeacher(ctx context.Context, item *model.ScheduleItem, redeemer model.Actor) error {
	if redeemer.IsAdmin() {
		return nil
	}

	if redeemer.Role != model.RoleTeacher {
		return apperrors.ErrForbidden
	}

	teacher, err := s.profiles.GetTeacherByUserID(ctx, redeemer.UserID)
	if err != nil {
		return fmt.Errorf("get teacher profile: %w", err)
	}

	if teacher == nil {
		return apperrors.ErrProfileNotFound
	}

	if teacher.ID != item.TeacherID {
		return apperrors.ErrNotLessonTeacher
	}

	return nil
}

// authorizeAndMarkStudent проверяет группу студента и отмечает присутствие
// в итогах урока. Upsert по ключу (student_id, lesson_id) идемпотентен
func (s *AttendanceService) authorizeAndMarkStudent(ctx context.Context, item *model.ScheduleItem, redeemer model.Actor) error {
	if redeemer.Role != model.RoleStudent {
		return apperrors.ErrForbidden
	}

	student, err := s.profiles.GetStudentByUserID(ctx, redeemer.UserID)
	if err != nil {
		return fmt.Errorf("get student profile: %w", err)
	}

	if student == nil {
		return apperrors.ErrProfileNotFound
	}

	if item.GroupID != nil {
		if student.GroupID == nil || *student.GroupID != *item.GroupID {
			return apperrors.ErrWrongGroup
		}
	}

	// Занятие может не ссылаться на урок; тогда отмечать присутствие негде
	if item.LessonID == nil {
		return nil
	}

	if err := s.results.UpsertPresence(ctx, student.ID, *item.LessonID); err != nil {
		return fmt.Errorf("upsert presence: %w", err)
	}

	return nil
}

// snapshotMetadata снимает отображаемые поля занятия на момент выпуска токена
func snapshotMetadata(item *model.ScheduleItem) model.SessionMetadata {
	return model.SessionMetadata{
		Date:          item.Date.Format("2006-01-02"),
		StartTime:     item.StartTime,
		EndTime:       item.EndTime,
		LessonType:    item.Type,
		Subject:       item.Subject,
		TeacherName:   item.TeacherName,
		GroupName:     item.GroupName,
		ClassroomName: item.ClassroomName,
	}
}

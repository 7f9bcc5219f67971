package handlers

import (
	"net/http"
	"time"

	"github.com/edudesk/attendance_service/internal/apperrors"
	"github.com/edudesk/attendance_service/internal/model"
	"github.com/edudesk/attendance_service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	attendance *service.AttendanceService
	logger     *zap.Logger
}

func NewAttendanceHandler(attendance *service.AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendance,
		logger:     logger,
	}
}

type issueSessionRequest struct {
	ScheduleItemID  int64  `json:"schedule_item_id" binding:"required"`
	OccursAt        string `json:"occurs_at" binding:"required"`
	ParticipantType string `json:"participant_type" binding:"omitempty,oneof=teacher student"`
}

type checkInRequest struct {
	Token           string `json:"token" binding:"required"`
	ParticipantType string `json:"participant_type" binding:"omitempty,oneof=teacher student"`
}

// IssueSession открывает окно отметки: POST /api/attendance/sessions
func (h *AttendanceHandler) IssueSession(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req issueSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	occursAt, err := time.Parse(time.RFC3339, req.OccursAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidOccursAt.Error()})
		return
	}

	issued, err := h.attendance.IssueSession(
		c.Request.Context(),
		req.ScheduleItemID,
		occursAt,
		model.ParticipantType(req.ParticipantType),
		actor,
	)
	if err != nil {
		h.respondError(c, err, "issue session")
		return
	}

	c.JSON(http.StatusCreated, issued)
}

// CheckIn гасит токен: POST /api/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.attendance.RedeemSession(
		c.Request.Context(),
		req.Token,
		model.ParticipantType(req.ParticipantType),
		actor,
	)
	if err != nil {
		h.respondError(c, err, "check in")
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError переводит ошибки подсистемы в HTTP-ответ; всё неизвестное - 500
func (h *AttendanceHandler) respondError(c *gin.Context, err error, op string) {
	status := apperrors.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		h.logger.Error("Attendance operation failed",
			zap.String("op", op),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

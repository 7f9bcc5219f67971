package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrScheduleItemNotFound, http.StatusNotFound},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotLessonTeacher, http.StatusForbidden},
		{ErrWrongGroup, http.StatusForbidden},
		{ErrProfileNotFound, http.StatusForbidden},
		{ErrWrongParticipantType, http.StatusForbidden},
		{ErrInvalidOccursAt, http.StatusBadRequest},
		{ErrSessionExpired, http.StatusBadRequest},
		{ErrCheckinTooEarly, http.StatusBadRequest},
		{ErrCheckinWindowClosed, http.StatusBadRequest},
		{errors.New("database is on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "status for %v", tc.err)
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("redeem session: %w", ErrSessionExpired)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}

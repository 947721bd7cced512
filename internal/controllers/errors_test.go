package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/exams"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
	}{
		{exams.ErrRequestNotFound, http.StatusNotFound},
		{exams.ErrGroupNotFound, http.StatusNotFound},
		{exams.ErrNoResults, http.StatusNotFound},
		{exams.ErrInvalidDate, http.StatusBadRequest},
		{exams.ErrInvalidStatus, http.StatusBadRequest},
		{exams.ErrInvalidRole, http.StatusBadRequest},
		{exams.ErrNoActiveSession, http.StatusConflict},
		{exams.ErrDuplicateRequest, http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, zap.NewNop(), tc.err)
		assert.Equal(t, tc.code, w.Code, "err=%v", tc.err)
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, zap.NewNop(), errors.New("dial tcp 10.0.0.5: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "internal server error")
}

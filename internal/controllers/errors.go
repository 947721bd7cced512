package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/exams"
)

// respondError maps lifecycle/directory errors onto HTTP statuses.
// Unexpected failures are logged with their cause and surfaced as a
// generic 500 so internal detail never leaks to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, exams.ErrUserNotFound),
		errors.Is(err, exams.ErrStudentNotFound),
		errors.Is(err, exams.ErrProfessorNotFound),
		errors.Is(err, exams.ErrCourseNotFound),
		errors.Is(err, exams.ErrGroupNotFound),
		errors.Is(err, exams.ErrRequestNotFound),
		errors.Is(err, exams.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, exams.ErrInvalidDate),
		errors.Is(err, exams.ErrInvalidTime),
		errors.Is(err, exams.ErrMissingStatus),
		errors.Is(err, exams.ErrInvalidStatus),
		errors.Is(err, exams.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, exams.ErrNoActiveSession),
		errors.Is(err, exams.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if logger != nil {
			logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

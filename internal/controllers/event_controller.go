package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/exams"
)

// EventController serves the read-only calendar projections.
type EventController struct {
	Service *exams.Service
	Logger  *zap.Logger
}

// StudentEvents returns the calendar for the student's group.
func (e *EventController) StudentEvents(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	events, err := e.Service.StudentEvents(userID)
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ProfessorEvents returns the calendar across all courses the
// professor lectures, most recent exam first.
func (e *EventController) ProfessorEvents(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	events, err := e.Service.ProfessorEvents(userID)
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ProfessorCourseEvents narrows the professor calendar to one course.
func (e *EventController) ProfessorCourseEvents(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}
	events, err := e.Service.ProfessorCourseEvents(userID, courseID)
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

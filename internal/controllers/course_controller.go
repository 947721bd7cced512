package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/exams"
)

type CourseController struct {
	Service *exams.Service
	Logger  *zap.Logger
}

// CoursesByGroup lists the courses of a group's specialization.
func (cc *CourseController) CoursesByGroup(c *gin.Context) {
	groupID, ok := parseID(c, "groupId")
	if !ok {
		return
	}
	courses, err := cc.Service.CoursesByGroup(groupID)
	if err != nil {
		respondError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CoursesByProfessor lists every course a professor lectures or holds
// labs for, deduplicated.
func (cc *CourseController) CoursesByProfessor(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	courses, err := cc.Service.CoursesByProfessor(userID)
	if err != nil {
		respondError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// AvailableCoursesForExam lists the courses a student leader can still
// file an exam request for: their specialization's courses minus those
// the group has already requested.
func (cc *CourseController) AvailableCoursesForExam(c *gin.Context) {
	raw := c.Query("userId")
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}
	courses, svcErr := cc.Service.AvailableCoursesForStudent(uint(userID))
	if svcErr != nil {
		respondError(c, cc.Logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, courses)
}

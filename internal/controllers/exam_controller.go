package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/exams"
)

type ExamController struct {
	Service *exams.Service
	Logger  *zap.Logger
}

type createExamRequest struct {
	CourseID uint   `json:"courseId" binding:"required"`
	GroupID  uint   `json:"groupId" binding:"required"`
	ExamDate string `json:"examDate" binding:"required"`
	Type     string `json:"type"`
	Details  string `json:"details"`
}

// Create files a Pending exam request against the active session.
func (e *ExamController) Create(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := e.Service.Create(exams.CreateInput{
		CourseID: req.CourseID,
		GroupID:  req.GroupID,
		ExamDate: req.ExamDate,
		Type:     req.Type,
		Details:  req.Details,
	})
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Exam suggestion created successfully",
		"examRequestId": id,
	})
}

type approveExamRequest struct {
	TimeStart *string `json:"timeStart"`
	TimeEnd   *string `json:"timeEnd"`
	RoomsID   []uint  `json:"roomsId"`
}

// Approve confirms a request, sets its time window and replaces the
// assigned room set.
func (e *ExamController) Approve(c *gin.Context) {
	examID, ok := parseID(c, "examId")
	if !ok {
		return
	}
	var req approveExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := e.Service.Approve(examID, exams.ApproveInput{
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		RoomIDs:   req.RoomsID,
	})
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type updateStatusRequest struct {
	Status    string  `json:"status"`
	TimeStart *string `json:"timeStart"`
	TimeEnd   *string `json:"timeEnd"`
	RoomsID   []uint  `json:"roomsId"`
}

// UpdateStatus is the generic status surface: any value of the closed
// status set, with the same room-replace semantics as Approve.
func (e *ExamController) UpdateStatus(c *gin.Context) {
	examID, ok := parseID(c, "examId")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := e.Service.UpdateStatus(examID, req.Status, exams.ApproveInput{
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		RoomIDs:   req.RoomsID,
	})
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type rejectExamRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject declines a request, storing the reason in its details.
func (e *ExamController) Reject(c *gin.Context) {
	examID, ok := parseID(c, "examId")
	if !ok {
		return
	}
	var req rejectExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := e.Service.Reject(examID, req.Reason); err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Exam request rejected successfully",
		"examRequestId": examID,
	})
}

// All returns every exam request in the flat listing shape, for the
// admin view.
func (e *ExamController) All(c *gin.Context) {
	requests, err := e.Service.AllRequests()
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ByGroup lists a group's requests in the flat triage shape, optionally
// filtered by ?status=.
func (e *ExamController) ByGroup(c *gin.Context) {
	groupID, ok := parseID(c, "groupId")
	if !ok {
		return
	}
	dtos, err := e.Service.RequestDTOsByGroup(groupID, c.Query("status"))
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ByProfessor lists requests for a professor's courses, optionally
// filtered by ?status=.
func (e *ExamController) ByProfessor(c *gin.Context) {
	profID, ok := parseID(c, "profId")
	if !ok {
		return
	}
	dtos, err := e.Service.RequestDTOsByProfessor(profID, c.Query("status"))
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Rooms lists the room directory, newest-first, with true per-room
// exam request usage counts. ?limit= caps the result.
func (e *ExamController) Rooms(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	rooms, err := e.Service.Rooms(limit)
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Assistants lists the distinct lab holders of a course.
func (e *ExamController) Assistants(c *gin.Context) {
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}
	assistants, err := e.Service.LabHoldersByCourse(courseID)
	if err != nil {
		respondError(c, e.Logger, err)
		return
	}
	c.JSON(http.StatusOK, assistants)
}

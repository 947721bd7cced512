package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/exams"
	"github.com/examplan/examplan_backend/internal/models"
)

type UserController struct {
	DB      *gorm.DB
	Service *exams.Service
	Logger  *zap.Logger
}

// GetUser returns a user's profile with faculty, group and department
// context, omitting credentials.
func (u *UserController) GetUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var user models.User
	if err := u.DB.Preload("Faculty").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	resp := gin.H{
		"firstname": user.FirstName,
		"lastname":  user.LastName,
		"email":     user.Email,
		"role":      user.Role,
	}
	if user.Faculty != nil {
		resp["faculty"] = user.Faculty.LongName
	}

	var student models.Student
	if err := u.DB.Preload("Group").Where("user_id = ?", userID).First(&student).Error; err == nil && student.Group != nil {
		resp["group"] = student.Group.Name
	}
	var professor models.Professor
	if err := u.DB.Preload("Department").Where("user_id = ? AND department_id IS NOT NULL", userID).
		First(&professor).Error; err == nil && professor.Department != nil {
		resp["department"] = professor.Department.Name
	}

	c.JSON(http.StatusOK, resp)
}

func (u *UserController) GetProfessorDetails(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var professor models.Professor
	if err := u.DB.Preload("User").Preload("Department").
		Where("user_id = ?", userID).First(&professor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professor not found"})
		return
	}

	department := "No Department"
	if professor.Department != nil {
		department = professor.Department.Name
	}
	resp := gin.H{
		"id":         professor.ProfessorID,
		"department": department,
		"title":      professor.Title,
	}
	if professor.User != nil {
		resp["firstName"] = professor.User.FirstName
		resp["lastName"] = professor.User.LastName
		resp["email"] = professor.User.Email
	}
	c.JSON(http.StatusOK, resp)
}

// GetCourseAssistants lists a course's lab holders with full names, for
// assistant selection when approving an exam.
func (u *UserController) GetCourseAssistants(c *gin.Context) {
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}

	assistants, err := u.Service.LabHoldersByCourse(courseID)
	if err != nil {
		respondError(c, u.Logger, err)
		return
	}

	out := make([]gin.H, 0, len(assistants))
	for _, a := range assistants {
		out = append(out, gin.H{
			"id":        a.ProfessorID,
			"firstName": a.FirstName,
			"lastName":  a.LastName,
			"fullName":  a.FirstName + " " + a.LastName,
		})
	}
	c.JSON(http.StatusOK, out)
}

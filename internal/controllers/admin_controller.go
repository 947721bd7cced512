package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
	"github.com/examplan/examplan_backend/internal/utils"
)

type AdminController struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

type createUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required"`
	FacultyID *uint  `json:"facultyId"`

	// Student fields
	GroupID  *uint `json:"groupId"`
	IsLeader bool  `json:"isLeader"`

	// Professor fields
	DepartmentID *uint  `json:"departmentId"`
	Title        string `json:"title"`
}

// CreateUser registers an account with its role-specific row (student
// group membership or professor record) in one transaction.
func (a *AdminController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	if req.Role == RoleStudent && req.GroupID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required for students"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		FacultyID:    req.FacultyID,
		Email:        req.Email,
		PasswordHash: hashed,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Status:       "Active",
		CreationDate: time.Now().UTC(),
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch req.Role {
		case RoleStudent:
			student := models.Student{
				UserID:       user.UserID,
				GroupID:      *req.GroupID,
				IsLeader:     req.IsLeader,
				CreationDate: time.Now().UTC(),
			}
			return tx.Create(&student).Error
		case RoleProfessor:
			professor := models.Professor{
				UserID:       user.UserID,
				DepartmentID: req.DepartmentID,
				Title:        req.Title,
				CreationDate: time.Now().UTC(),
			}
			return tx.Create(&professor).Error
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		respondError(c, a.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "created",
		"userId":  user.UserID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

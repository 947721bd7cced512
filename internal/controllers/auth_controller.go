package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/middleware"
	"github.com/examplan/examplan_backend/internal/models"
	"github.com/examplan/examplan_backend/internal/utils"
)

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
	ExpiresIn time.Duration
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by email and password. The response carries the
// caller's role context: student leaders get their group, professors
// their professor id.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	claims := middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "examplan_backend",
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(a.ExpiresIn)),
			Subject:   strconv.FormatUint(uint64(user.UserID), 10),
		},
	}

	if user.Role == RoleStudent {
		var student models.Student
		err := a.DB.Preload("Group").Where("user_id = ?", user.UserID).First(&student).Error
		if err == nil && student.IsLeader {
			claims.IsLeader = true
			gid := student.GroupID
			claims.GroupID = &gid
		}

		token, signErr := a.sign(claims)
		if signErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		resp := gin.H{
			"token":    token,
			"role":     user.Role,
			"userId":   user.UserID,
			"isLeader": err == nil && student.IsLeader,
		}
		if err == nil {
			resp["groupId"] = student.GroupID
			if student.Group != nil {
				resp["groupName"] = student.Group.Name
			}
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	token, err := a.sign(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	if user.Role == RoleProfessor {
		var professor models.Professor
		if err := a.DB.Where("user_id = ?", user.UserID).First(&professor).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{
				"token":  token,
				"role":   user.Role,
				"userId": user.UserID,
				"profId": professor.ProfessorID,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"role":   user.Role,
		"userId": user.UserID,
	})
}

func (a *AuthController) sign(claims middleware.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.JWTSecret))
}

package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; rely on JWT auth.
		return true
	},
}

// NotificationsHandler upgrades an authenticated connection and scopes
// students to their own group's events.
func NotificationsHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		uVal, ok := c.Get("user")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user := uVal.(models.User)

		allowAll := user.Role != "Student"
		var groupID uint
		if !allowAll {
			var student models.Student
			if err := db.Where("user_id = ?", user.UserID).First(&student).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no group membership"})
				return
			}
			groupID = student.GroupID
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		cl := newClient(uuid.NewString(), hub, conn, groupID, allowAll)
		hub.register <- cl

		go cl.writePump()
		cl.readPump()
	}
}

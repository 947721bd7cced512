package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/exams"
	"github.com/examplan/examplan_backend/internal/models"
)

// fakeAuth injects a user the way the auth middleware would.
func fakeAuth(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}))
	return db
}

func dialHub(t *testing.T, db *gorm.DB, user models.User, hub *Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/notifications", fakeAuth(user), NotificationsHandler(db, hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsToStaff(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, nil, models.User{UserID: 1, Role: "Secretary"}, hub)

	// Give the register channel a moment before broadcasting.
	time.Sleep(50 * time.Millisecond)
	hub.NotifyStatusChange(42, exams.StatusApproved, 7, 4)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload StatusPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, uint(42), payload.ExamRequestID)
	assert.Equal(t, "Approved", payload.Status)
	assert.Equal(t, uint(7), payload.CourseID)
	assert.Equal(t, uint(4), payload.GroupID)
}

func TestHubScopesStudentsToTheirGroup(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Student{UserID: 3, GroupID: 4}).Error)

	// The staff client is the control proving both broadcasts went out.
	staff := dialHub(t, nil, models.User{UserID: 2, Role: "Admin"}, hub)
	student := dialHub(t, db, models.User{UserID: 3, Role: "Student"}, hub)

	time.Sleep(50 * time.Millisecond)
	hub.NotifyStatusChange(1, exams.StatusRejected, 7, 99)
	hub.NotifyStatusChange(2, exams.StatusApproved, 7, 4)

	staff.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, first, err := staff.ReadMessage()
	require.NoError(t, err)
	_, second, err := staff.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(first), `"groupId":99`)
	assert.Contains(t, string(second), `"groupId":4`)

	// The student only sees its own group's event: the first message it
	// reads is the group-4 one, the group-99 broadcast was filtered.
	student.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := student.ReadMessage()
	require.NoError(t, err)
	var payload StatusPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, uint(4), payload.GroupID)
	assert.Equal(t, uint(2), payload.ExamRequestID)

	// And nothing else is queued for it.
	student.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = student.ReadMessage()
	assert.Error(t, err)
}

type logBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *logBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestHubLogsClientConnectionID(t *testing.T) {
	var buf logBuffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, nil, models.User{UserID: 5, Role: "Secretary"}, hub)
	time.Sleep(50 * time.Millisecond)

	m := regexp.MustCompile(`client (\S+) connected`).FindStringSubmatch(buf.String())
	require.Len(t, m, 2, "expected a connect line with a client id")
	_, err := uuid.Parse(m[1])
	assert.NoError(t, err)

	conn.Close()
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "client "+m[1]+" disconnected")
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNotificationsHandlerRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	r := gin.New()
	r.GET("/ws/notifications", NotificationsHandler(nil, hub))

	req := httptest.NewRequest(http.MethodGet, "/ws/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package exams

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Professor{},
		&models.Student{},
		&models.Group{},
		&models.Session{},
		&models.Course{},
		&models.Room{},
		&models.ExamRequest{},
		&models.ExamRequestRoom{},
	))
	return db
}

// seedCatalog inserts the minimum rows a request needs: a lectured
// course, a group and a session in the given status.
func seedCatalog(t *testing.T, db *gorm.DB, sessionStatus string) (models.Course, models.Group, models.Session) {
	t.Helper()
	user := models.User{
		Email:        "ana.popescu@usm.ro",
		PasswordHash: "x",
		FirstName:    "Ana",
		LastName:     "Popescu",
		Role:         "Professor",
		Status:       "Active",
	}
	require.NoError(t, db.Create(&user).Error)
	prof := models.Professor{UserID: user.UserID}
	require.NoError(t, db.Create(&prof).Error)
	course := models.Course{ProfessorID: prof.ProfessorID, SpecializationID: 1, Title: "Operating Systems"}
	require.NoError(t, db.Create(&course).Error)
	group := models.Group{SpecializationID: 1, Name: "3142A"}
	require.NoError(t, db.Create(&group).Error)
	session := models.Session{Status: sessionStatus, Semester: 1}
	require.NoError(t, db.Create(&session).Error)
	return course, group, session
}

func TestCreateRejectsSecondActiveRequest(t *testing.T) {
	db := openTestDB(t)
	svc := &Service{DB: db}
	course, group, _ := seedCatalog(t, db, models.SessionActive)

	in := CreateInput{CourseID: course.CourseID, GroupID: group.GroupID, ExamDate: "2026-02-10"}
	id, err := svc.Create(in)
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = svc.Create(in)
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// A rejected request no longer blocks the (course, group, session) slot.
	require.NoError(t, svc.Reject(id, "room conflict"))
	_, err = svc.Create(in)
	assert.NoError(t, err)
}

func TestCreateWithoutActiveSessionPersistsNothing(t *testing.T) {
	db := openTestDB(t)
	svc := &Service{DB: db}
	course, group, _ := seedCatalog(t, db, "Closed")

	_, err := svc.Create(CreateInput{CourseID: course.CourseID, GroupID: group.GroupID, ExamDate: "2026-02-10"})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	var count int64
	require.NoError(t, db.Model(&models.ExamRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApproveReplacesRoomSet(t *testing.T) {
	db := openTestDB(t)
	svc := &Service{DB: db}
	course, group, _ := seedCatalog(t, db, models.SessionActive)

	id, err := svc.Create(CreateInput{CourseID: course.CourseID, GroupID: group.GroupID, ExamDate: "2026-02-10"})
	require.NoError(t, err)

	roomA := models.Room{Name: "C201", Location: "Corp C"}
	roomB := models.Room{Name: "C310", Location: "Corp C"}
	require.NoError(t, db.Create(&roomA).Error)
	require.NoError(t, db.Create(&roomB).Error)

	start, end := "09:00", "11:00"
	updated, err := svc.Approve(id, ApproveInput{TimeStart: &start, TimeEnd: &end, RoomIDs: []uint{roomA.RoomID}})
	require.NoError(t, err)
	assert.Equal(t, string(StatusApproved), updated.Status)
	require.NotNil(t, updated.TimeStart)
	assert.Equal(t, "09:00", *updated.TimeStart)

	// Re-approving with a different room list replaces the whole set,
	// it does not merge.
	_, err = svc.Approve(id, ApproveInput{TimeStart: &start, TimeEnd: &end, RoomIDs: []uint{roomB.RoomID}})
	require.NoError(t, err)

	var links []models.ExamRequestRoom
	require.NoError(t, db.Where("exam_request_id = ?", id).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, roomB.RoomID, links[0].RoomID)
}

func TestRejectOverwritesDetails(t *testing.T) {
	db := openTestDB(t)
	svc := &Service{DB: db}
	course, group, _ := seedCatalog(t, db, models.SessionActive)

	id, err := svc.Create(CreateInput{
		CourseID: course.CourseID,
		GroupID:  group.GroupID,
		ExamDate: "2026-02-10",
		Details:  "prefer a morning slot",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(id, "clashes with the lab exam"))

	var req models.ExamRequest
	require.NoError(t, db.First(&req, id).Error)
	assert.Equal(t, string(StatusRejected), req.Status)
	assert.Equal(t, "clashes with the lab exam", req.Details)
}

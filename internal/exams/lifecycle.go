package exams

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
)

// Notifier receives exam request status changes after they commit.
type Notifier interface {
	NotifyStatusChange(examRequestID uint, status Status, courseID, groupID uint)
}

// Service owns the exam request lifecycle: creation against the active
// session, approval with room assignment, rejection, and the generic
// status update surface. Every multi-statement mutation runs in a single
// database transaction so partial states are never observable.
type Service struct {
	DB       *gorm.DB
	Notifier Notifier
}

type CreateInput struct {
	CourseID uint
	GroupID  uint
	ExamDate string
	Type     string
	Details  string
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

func parseExamDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func validTimeOfDay(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	if _, err := time.Parse("15:04", *raw); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04:05", *raw); err == nil {
		return nil
	}
	return ErrInvalidTime
}

// Create inserts a Pending request bound to the active session. The date
// is validated before any store access. Exactly one non-rejected,
// non-cancelled request may exist per (course, group, session).
func (s *Service) Create(in CreateInput) (uint, error) {
	date, err := parseExamDate(in.ExamDate)
	if err != nil {
		return 0, err
	}

	var id uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, in.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		var group models.Group
		if err := tx.First(&group, in.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}
		var session models.Session
		if err := tx.Where("status = ?", models.SessionActive).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveSession
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.ExamRequest{}).
			Where("course_id = ? AND group_id = ? AND session_id = ? AND status NOT IN ?",
				in.CourseID, in.GroupID, session.SessionID,
				[]string{string(StatusRejected), string(StatusCancelled)}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrDuplicateRequest
		}

		req := models.ExamRequest{
			CourseID:     in.CourseID,
			GroupID:      in.GroupID,
			SessionID:    session.SessionID,
			Date:         date,
			Type:         in.Type,
			Details:      in.Details,
			Status:       string(StatusPending),
			CreationDate: time.Now().UTC(),
		}
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		id = req.ExamRequestID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

type ApproveInput struct {
	TimeStart *string
	TimeEnd   *string
	RoomIDs   []uint
}

// Approve marks a request Approved, updates its time window and, when a
// room list is supplied, replaces the full room set (delete then insert,
// not a diff) inside one transaction.
func (s *Service) Approve(examID uint, in ApproveInput) (*models.ExamRequest, error) {
	return s.setStatus(examID, StatusApproved, in)
}

// UpdateStatus is the generic status surface: any value of the closed
// enum (plus the legacy "Confirmed" alias) with the same room-replace
// semantics as Approve.
func (s *Service) UpdateStatus(examID uint, rawStatus string, in ApproveInput) (*models.ExamRequest, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.setStatus(examID, status, in)
}

func (s *Service) setStatus(examID uint, status Status, in ApproveInput) (*models.ExamRequest, error) {
	if err := validTimeOfDay(in.TimeStart); err != nil {
		return nil, err
	}
	if err := validTimeOfDay(in.TimeEnd); err != nil {
		return nil, err
	}

	var req models.ExamRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		req.Status = string(status)
		req.TimeStart = in.TimeStart
		req.TimeEnd = in.TimeEnd

		if len(in.RoomIDs) > 0 {
			if err := tx.Where("exam_request_id = ?", examID).
				Delete(&models.ExamRequestRoom{}).Error; err != nil {
				return err
			}
			now := time.Now().UTC()
			links := make([]models.ExamRequestRoom, 0, len(in.RoomIDs))
			for _, roomID := range in.RoomIDs {
				links = append(links, models.ExamRequestRoom{
					ExamRequestID: examID,
					RoomID:        roomID,
					CreationDate:  now,
				})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		return tx.Save(&req).Error
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyStatusChange(req.ExamRequestID, status, req.CourseID, req.GroupID)
	}
	return &req, nil
}

// Reject sets the status to Rejected and overwrites Details with the
// rejection reason. The previous details are intentionally lost.
func (s *Service) Reject(examID uint, reason string) error {
	var req models.ExamRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		req.Status = string(StatusRejected)
		req.Details = reason
		return tx.Save(&req).Error
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyStatusChange(req.ExamRequestID, StatusRejected, req.CourseID, req.GroupID)
	}
	return nil
}

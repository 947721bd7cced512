package usv

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
	"github.com/examplan/examplan_backend/internal/utils"
)

// Syncer imports faculties, professors and rooms from the timetable API
// into the store. Import is insert-if-absent by natural key (faculty
// long name, user email, room name); existing rows are left untouched.
type Syncer struct {
	DB     *gorm.DB
	Client *Client
	Logger *zap.Logger
}

type Report struct {
	FacultiesCreated  int `json:"facultiesCreated"`
	ProfessorsCreated int `json:"professorsCreated"`
	RoomsCreated      int `json:"roomsCreated"`
	Skipped           int `json:"skipped"`
}

func (s *Syncer) SyncAll(ctx context.Context) (Report, error) {
	var report Report

	if err := s.syncFaculties(ctx, &report); err != nil {
		return report, fmt.Errorf("faculties: %w", err)
	}
	if err := s.syncProfessors(ctx, &report); err != nil {
		return report, fmt.Errorf("professors: %w", err)
	}
	if err := s.syncRooms(ctx, &report); err != nil {
		return report, fmt.Errorf("rooms: %w", err)
	}

	s.Logger.Info("timetable sync finished",
		zap.Int("facultiesCreated", report.FacultiesCreated),
		zap.Int("professorsCreated", report.ProfessorsCreated),
		zap.Int("roomsCreated", report.RoomsCreated),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

func (s *Syncer) syncFaculties(ctx context.Context, report *Report) error {
	faculties, err := s.Client.Faculties(ctx)
	if err != nil {
		return err
	}
	for _, f := range faculties {
		longName := strings.TrimSpace(f.LongName)
		if longName == "" {
			report.Skipped++
			continue
		}
		var count int64
		if err := s.DB.Model(&models.Faculty{}).Where("long_name = ?", longName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		rec := models.Faculty{
			ShortName:    strings.TrimSpace(f.ShortName),
			LongName:     longName,
			CreationDate: time.Now().UTC(),
		}
		if err := s.DB.Create(&rec).Error; err != nil {
			return err
		}
		report.FacultiesCreated++
	}
	return nil
}

func (s *Syncer) syncProfessors(ctx context.Context, report *Report) error {
	professors, err := s.Client.Professors(ctx)
	if err != nil {
		return err
	}
	for _, p := range professors {
		firstName := strings.TrimSpace(p.FirstName)
		lastName := strings.TrimSpace(p.LastName)
		if firstName == "" && lastName == "" {
			report.Skipped++
			continue
		}

		var faculty models.Faculty
		if err := s.DB.Where("long_name = ?", strings.TrimSpace(p.FacultyName)).
			First(&faculty).Error; err != nil {
			s.Logger.Warn("skipping professor with unknown faculty",
				zap.String("faculty", p.FacultyName),
				zap.String("lastName", lastName))
			report.Skipped++
			continue
		}

		email := strings.TrimSpace(p.EmailAddress)
		if email == "" {
			email = fmt.Sprintf("%s.%s@usm.ro",
				strings.ToLower(strings.ReplaceAll(firstName, " ", "")),
				strings.ToLower(strings.ReplaceAll(lastName, " ", "")))
		}

		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		initial, err := utils.RandomPassword(0)
		if err != nil {
			return err
		}
		hashed, err := utils.HashPassword(initial)
		if err != nil {
			return err
		}
		fid := faculty.FacultyID
		user := models.User{
			FacultyID:    &fid,
			Email:        email,
			PasswordHash: hashed,
			FirstName:    firstName,
			LastName:     lastName,
			Role:         "Professor",
			UniversityID: 1,
			Status:       "Active",
			CreationDate: time.Now().UTC(),
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			professor := models.Professor{
				UserID:       user.UserID,
				CreationDate: time.Now().UTC(),
			}
			return tx.Create(&professor).Error
		})
		if err != nil {
			// A concurrent sync may have inserted the same email.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				report.Skipped++
				continue
			}
			return err
		}
		report.ProfessorsCreated++
	}
	return nil
}

func (s *Syncer) syncRooms(ctx context.Context, report *Report) error {
	rooms, err := s.Client.Rooms(ctx)
	if err != nil {
		return err
	}
	for _, r := range rooms {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			report.Skipped++
			continue
		}
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		rec := models.Room{
			Name:         name,
			Location:     strings.TrimSpace(r.BuildingName),
			CreationDate: time.Now().UTC(),
		}
		if capacity, err := strconv.Atoi(strings.TrimSpace(r.Capacity)); err == nil && capacity > 0 {
			rec.Capacity = &capacity
		}
		if err := s.DB.Create(&rec).Error; err != nil {
			return err
		}
		report.RoomsCreated++
	}
	return nil
}

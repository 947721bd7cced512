package exams

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
)

type CourseOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CourseDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	FirstNameProf string `json:"firstNameProf"`
	LastNameProf  string `json:"lastNameProf"`
	Status        string `json:"status"`
}

type AssistantDTO struct {
	ProfessorID uint   `json:"professorId"`
	UserID      uint   `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type RoomDirectoryEntry struct {
	RoomID           uint    `json:"roomID"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Capacity         *int    `json:"capacity"`
	Description      string  `json:"description"`
	DepartmentName   *string `json:"departmentName"`
	ExamRequestCount int64   `json:"examRequestCount"`
}

// CoursesByGroup resolves a group to its specialization and lists the
// specialization's courses.
func (s *Service) CoursesByGroup(groupID uint) ([]CourseOption, error) {
	var group models.Group
	if err := s.DB.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	var courses []models.Course
	if err := s.DB.Where("specialization_id = ?", group.SpecializationID).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, ErrNoResults
	}

	options := make([]CourseOption, 0, len(courses))
	for _, course := range courses {
		options = append(options, CourseOption{ID: course.CourseID, Name: course.Title})
	}
	return options, nil
}

// CoursesByProfessor unions the courses a professor lectures with those
// they hold labs for, deduplicated and sorted by title.
func (s *Service) CoursesByProfessor(userID uint) ([]CourseOption, error) {
	var professor models.Professor
	if err := s.DB.Where("user_id = ?", userID).First(&professor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}

	var lectured []models.Course
	if err := s.DB.Where("professor_id = ?", professor.ProfessorID).
		Find(&lectured).Error; err != nil {
		return nil, err
	}

	labCourseIDs := s.DB.Model(&models.LabHolder{}).
		Select("course_id").
		Where("professor_id = ?", professor.ProfessorID)
	var assisted []models.Course
	if err := s.DB.Where("course_id IN (?)", labCourseIDs).
		Find(&assisted).Error; err != nil {
		return nil, err
	}

	options := MergeCourseOptions(lectured, assisted)
	if len(options) == 0 {
		return nil, ErrNoResults
	}
	return options, nil
}

// MergeCourseOptions deduplicates two course lists by id and sorts the
// union by title.
func MergeCourseOptions(lists ...[]models.Course) []CourseOption {
	seen := make(map[uint]struct{})
	options := make([]CourseOption, 0)
	for _, list := range lists {
		for _, course := range list {
			if _, ok := seen[course.CourseID]; ok {
				continue
			}
			seen[course.CourseID] = struct{}{}
			options = append(options, CourseOption{ID: course.CourseID, Name: course.Title})
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
	return options
}

// AvailableCoursesForStudent lists the courses of the student's
// specialization that their group has not yet requested an exam for.
// A request in any status blocks the course.
func (s *Service) AvailableCoursesForStudent(userID uint) ([]CourseDTO, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != "Student" {
		return nil, ErrInvalidRole
	}

	var student models.Student
	if err := s.DB.Preload("Group").Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if student.Group == nil {
		return nil, ErrGroupNotFound
	}

	var courses []models.Course
	if err := s.DB.Preload("Professor").Preload("Professor.User").
		Where("specialization_id = ?", student.Group.SpecializationID).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, ErrNoResults
	}

	var requestedIDs []uint
	if err := s.DB.Model(&models.ExamRequest{}).
		Where("group_id = ?", student.GroupID).
		Pluck("course_id", &requestedIDs).Error; err != nil {
		return nil, err
	}

	available := FilterRequestedCourses(courses, requestedIDs)
	if len(available) == 0 {
		return nil, ErrNoResults
	}

	dtos := make([]CourseDTO, 0, len(available))
	for _, course := range available {
		dto := CourseDTO{ID: course.CourseID, Title: course.Title, Status: course.Status}
		if course.Professor != nil && course.Professor.User != nil {
			dto.FirstNameProf = course.Professor.User.FirstName
			dto.LastNameProf = course.Professor.User.LastName
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// FilterRequestedCourses drops every course whose id appears in the
// requested set, preserving input order.
func FilterRequestedCourses(courses []models.Course, requestedIDs []uint) []models.Course {
	requested := make(map[uint]struct{}, len(requestedIDs))
	for _, id := range requestedIDs {
		requested[id] = struct{}{}
	}
	available := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if _, ok := requested[course.CourseID]; ok {
			continue
		}
		available = append(available, course)
	}
	return available
}

// Rooms lists rooms newest-first by id, each annotated with the number
// of exam requests referencing it. limit <= 0 means no cap.
func (s *Service) Rooms(limit int) ([]RoomDirectoryEntry, error) {
	query := s.DB.Preload("Department").Order("room_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrNoResults
	}

	type usageRow struct {
		RoomID uint
		Count  int64
	}
	var usage []usageRow
	if err := s.DB.Model(&models.ExamRequestRoom{}).
		Select("room_id, COUNT(*) AS count").
		Group("room_id").
		Scan(&usage).Error; err != nil {
		return nil, err
	}
	usageByRoom := make(map[uint]int64, len(usage))
	for _, row := range usage {
		usageByRoom[row.RoomID] = row.Count
	}

	entries := make([]RoomDirectoryEntry, 0, len(rooms))
	for _, room := range rooms {
		entry := RoomDirectoryEntry{
			RoomID:           room.RoomID,
			Name:             room.Name,
			Location:         room.Location,
			Capacity:         room.Capacity,
			Description:      room.Description,
			ExamRequestCount: usageByRoom[room.RoomID],
		}
		if room.Department != nil {
			name := room.Department.Name
			entry.DepartmentName = &name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LabHoldersByCourse lists the distinct professors holding labs for a
// course, with their names.
func (s *Service) LabHoldersByCourse(courseID uint) ([]AssistantDTO, error) {
	var holders []models.LabHolder
	if err := s.DB.Preload("Professor").Preload("Professor.User").
		Where("course_id = ?", courseID).
		Find(&holders).Error; err != nil {
		return nil, err
	}
	if len(holders) == 0 {
		return nil, ErrNoResults
	}

	seen := make(map[uint]struct{}, len(holders))
	assistants := make([]AssistantDTO, 0, len(holders))
	for _, holder := range holders {
		if holder.Professor == nil || holder.Professor.User == nil {
			continue
		}
		if _, ok := seen[holder.ProfessorID]; ok {
			continue
		}
		seen[holder.ProfessorID] = struct{}{}
		assistants = append(assistants, AssistantDTO{
			ProfessorID: holder.Professor.ProfessorID,
			UserID:      holder.Professor.UserID,
			FirstName:   holder.Professor.User.FirstName,
			LastName:    holder.Professor.User.LastName,
		})
	}
	if len(assistants) == 0 {
		return nil, ErrNoResults
	}
	return assistants, nil
}

package exams

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/models"
)

type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RoomDTO struct {
	RoomID      uint   `json:"roomID"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

type EventDetails struct {
	Professor PersonName  `json:"professor"`
	Assistant *PersonName `json:"assistant"`
	Group     string      `json:"group"`
	Type      string      `json:"type"`
	Notes     string      `json:"notes"`
	Rooms     []RoomDTO   `json:"rooms"`
}

// Event is the calendar representation of an exam request, consumed by
// the student and professor calendar views.
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	CourseID    uint         `json:"courseId"`
	Date        string       `json:"date"`
	Start       *string      `json:"start"`
	End         *string      `json:"end"`
	Status      string       `json:"status"`
	IsConfirmed bool         `json:"isConfirmed"`
	Details     EventDetails `json:"details"`
}

// ExamRequestDTO is the flat wire shape used by the group/professor
// triage listings.
type ExamRequestDTO struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"courseId"`
	GroupID       uint      `json:"groupId"`
	CourseName    string    `json:"courseName"`
	FirstNameProf string    `json:"firstNameProf"`
	LastNameProf  string    `json:"lastNameProf"`
	ExamDate      string    `json:"examDate"`
	TimeStart     *string   `json:"timeStart"`
	TimeEnd       *string   `json:"timeEnd"`
	Status        string    `json:"status"`
	Details       string    `json:"details"`
	Rooms         []RoomDTO `json:"rooms"`
}

const examDateLayout = "2006-01-02"

// RoomsForRequests bulk-fetches the room assignments for a set of
// request ids in one query and groups them per request.
func RoomsForRequests(db *gorm.DB, requestIDs []uint) (map[uint][]RoomDTO, error) {
	byRequest := make(map[uint][]RoomDTO)
	if len(requestIDs) == 0 {
		return byRequest, nil
	}
	var links []models.ExamRequestRoom
	if err := db.Preload("Room").
		Where("exam_request_id IN ?", requestIDs).
		Find(&links).Error; err != nil {
		return nil, err
	}
	for _, link := range links {
		if link.Room == nil {
			continue
		}
		byRequest[link.ExamRequestID] = append(byRequest[link.ExamRequestID], roomDTO(*link.Room))
	}
	return byRequest, nil
}

func roomDTO(room models.Room) RoomDTO {
	capacity := 0
	if room.Capacity != nil {
		capacity = *room.Capacity
	}
	return RoomDTO{
		RoomID:      room.RoomID,
		Name:        room.Name,
		Location:    room.Location,
		Capacity:    capacity,
		Description: room.Description,
	}
}

// BuildEvents maps preloaded exam requests into calendar events,
// preserving the order of the input slice. Requests with no assigned
// rooms get an empty list, never null.
func BuildEvents(requests []models.ExamRequest, roomsByRequest map[uint][]RoomDTO) []Event {
	events := make([]Event, 0, len(requests))
	for _, req := range requests {
		events = append(events, buildEvent(req, roomsByRequest[req.ExamRequestID]))
	}
	return events
}

func buildEvent(req models.ExamRequest, rooms []RoomDTO) Event {
	if rooms == nil {
		rooms = []RoomDTO{}
	}
	details := EventDetails{
		Group: "",
		Type:  req.Type,
		Notes: req.Details,
		Rooms: rooms,
	}
	title := ""
	var courseID uint
	if req.Course != nil {
		title = req.Course.Title
		courseID = req.Course.CourseID
		if req.Course.Professor != nil && req.Course.Professor.User != nil {
			details.Professor = PersonName{
				FirstName: req.Course.Professor.User.FirstName,
				LastName:  req.Course.Professor.User.LastName,
			}
		}
	}
	if req.Assistant != nil && req.Assistant.User != nil {
		details.Assistant = &PersonName{
			FirstName: req.Assistant.User.FirstName,
			LastName:  req.Assistant.User.LastName,
		}
	}
	if req.Group != nil {
		details.Group = req.Group.Name
	}
	return Event{
		ID:          strconv.FormatUint(uint64(req.ExamRequestID), 10),
		Title:       title,
		CourseID:    courseID,
		Date:        req.Date.Format(examDateLayout),
		Start:       req.TimeStart,
		End:         req.TimeEnd,
		Status:      req.Status,
		IsConfirmed: IsConfirmed(req.Status),
		Details:     details,
	}
}

// BuildRequestDTOs maps preloaded exam requests into the flat listing
// shape, attaching each request's room list.
func BuildRequestDTOs(requests []models.ExamRequest, roomsByRequest map[uint][]RoomDTO) []ExamRequestDTO {
	dtos := make([]ExamRequestDTO, 0, len(requests))
	for _, req := range requests {
		dto := ExamRequestDTO{
			ID:        req.ExamRequestID,
			CourseID:  req.CourseID,
			GroupID:   req.GroupID,
			ExamDate:  req.Date.Format(examDateLayout),
			TimeStart: req.TimeStart,
			TimeEnd:   req.TimeEnd,
			Status:    req.Status,
			Details:   req.Details,
			Rooms:     roomsByRequest[req.ExamRequestID],
		}
		if dto.Rooms == nil {
			dto.Rooms = []RoomDTO{}
		}
		if req.Course != nil {
			dto.CourseName = req.Course.Title
			if req.Course.Professor != nil && req.Course.Professor.User != nil {
				dto.FirstNameProf = req.Course.Professor.User.FirstName
				dto.LastNameProf = req.Course.Professor.User.LastName
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func (s *Service) preloadRequests() *gorm.DB {
	return s.DB.
		Preload("Course").
		Preload("Course.Professor").
		Preload("Course.Professor.User").
		Preload("Assistant").
		Preload("Assistant.User").
		Preload("Group").
		Preload("Session")
}

// StudentEvents resolves a student's group and returns the group's exam
// requests as calendar events, oldest exam first.
func (s *Service) StudentEvents(userID uint) ([]Event, error) {
	var student models.Student
	if err := s.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var requests []models.ExamRequest
	if err := s.preloadRequests().
		Where("group_id = ?", student.GroupID).
		Order("date ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return s.eventsFor(requests)
}

// ProfessorEvents returns the calendar for every course the professor
// lectures, most recent exam date first.
func (s *Service) ProfessorEvents(userID uint) ([]Event, error) {
	return s.professorEvents(userID, 0)
}

// ProfessorCourseEvents narrows the professor calendar to one course.
func (s *Service) ProfessorCourseEvents(userID, courseID uint) ([]Event, error) {
	return s.professorEvents(userID, courseID)
}

func (s *Service) professorEvents(userID, courseID uint) ([]Event, error) {
	var professor models.Professor
	if err := s.DB.Where("user_id = ?", userID).First(&professor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}

	courseIDs := s.DB.Model(&models.Course{}).
		Select("course_id").
		Where("professor_id = ?", professor.ProfessorID)

	query := s.preloadRequests().Where("course_id IN (?)", courseIDs)
	if courseID != 0 {
		query = query.Where("course_id = ?", courseID)
	}

	var requests []models.ExamRequest
	if err := query.Order("date DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return s.eventsFor(requests)
}

func (s *Service) eventsFor(requests []models.ExamRequest) ([]Event, error) {
	ids := make([]uint, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ExamRequestID)
	}
	roomsByRequest, err := RoomsForRequests(s.DB, ids)
	if err != nil {
		return nil, err
	}
	return BuildEvents(requests, roomsByRequest), nil
}

// AllRequests returns every exam request in the flat listing shape, so
// the admin view carries the course title, lecturer name and room list
// rather than bare foreign keys.
func (s *Service) AllRequests() ([]ExamRequestDTO, error) {
	return s.requestDTOs(s.preloadRequests(), "")
}

// RequestDTOsByGroup lists a group's requests, optionally filtered by
// status, in the flat triage shape.
func (s *Service) RequestDTOsByGroup(groupID uint, status string) ([]ExamRequestDTO, error) {
	query := s.preloadRequests().Where("group_id = ?", groupID)
	return s.requestDTOs(query, status)
}

// RequestDTOsByProfessor lists requests for courses lectured by the
// given professor id, optionally filtered by status.
func (s *Service) RequestDTOsByProfessor(professorID uint, status string) ([]ExamRequestDTO, error) {
	courseIDs := s.DB.Model(&models.Course{}).
		Select("course_id").
		Where("professor_id = ?", professorID)
	query := s.preloadRequests().Where("course_id IN (?)", courseIDs)
	return s.requestDTOs(query, status)
}

func (s *Service) requestDTOs(query *gorm.DB, status string) ([]ExamRequestDTO, error) {
	if status != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", string(parsed))
	}
	var requests []models.ExamRequest
	if err := query.Order("date ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNoResults
	}
	ids := make([]uint, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ExamRequestID)
	}
	roomsByRequest, err := RoomsForRequests(s.DB, ids)
	if err != nil {
		return nil, err
	}
	return BuildRequestDTOs(requests, roomsByRequest), nil
}

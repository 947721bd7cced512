package exams

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrProfessorNotFound = errors.New("professor not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrGroupNotFound     = errors.New("group not found")
	ErrRequestNotFound   = errors.New("exam request not found")

	// ErrNoResults marks a scoping entity that exists but matched no
	// rows, so callers can tell it apart from a missing entity.
	ErrNoResults = errors.New("no results")

	ErrNoActiveSession  = errors.New("no active exam session found")
	ErrDuplicateRequest = errors.New("an active exam request already exists for this course and group")

	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidTime   = errors.New("invalid time format")
	ErrMissingStatus = errors.New("status is required")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRole   = errors.New("invalid role")
)

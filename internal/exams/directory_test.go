package exams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examplan/examplan_backend/internal/models"
)

func TestFilterRequestedCourses(t *testing.T) {
	courses := []models.Course{
		{CourseID: 1, Title: "Algebra"},
		{CourseID: 2, Title: "Networks"},
		{CourseID: 3, Title: "Databases"},
	}

	available := FilterRequestedCourses(courses, []uint{2})
	require.Len(t, available, 2)
	assert.Equal(t, uint(1), available[0].CourseID)
	assert.Equal(t, uint(3), available[1].CourseID)
}

func TestFilterRequestedCoursesNoneRequested(t *testing.T) {
	courses := []models.Course{{CourseID: 1}, {CourseID: 2}}
	assert.Len(t, FilterRequestedCourses(courses, nil), 2)
}

func TestFilterRequestedCoursesAllRequested(t *testing.T) {
	courses := []models.Course{{CourseID: 1}, {CourseID: 2}}
	assert.Empty(t, FilterRequestedCourses(courses, []uint{1, 2}))
}

func TestMergeCourseOptionsDeduplicatesAndSorts(t *testing.T) {
	lectured := []models.Course{
		{CourseID: 5, Title: "Networks"},
		{CourseID: 2, Title: "Algebra"},
	}
	// The professor also holds labs for Networks: it must appear once.
	assisted := []models.Course{
		{CourseID: 5, Title: "Networks"},
		{CourseID: 9, Title: "Compilers"},
	}

	options := MergeCourseOptions(lectured, assisted)
	require.Len(t, options, 3)
	assert.Equal(t, "Algebra", options[0].Name)
	assert.Equal(t, "Compilers", options[1].Name)
	assert.Equal(t, "Networks", options[2].Name)
}

func TestMergeCourseOptionsEmpty(t *testing.T) {
	assert.Empty(t, MergeCourseOptions(nil, nil))
}

package models

import (
	"time"
)

type Course struct {
	CourseID         uint      `gorm:"primaryKey" json:"courseId"`
	ProfessorID      uint      `gorm:"index;not null" json:"professorId"`
	SpecializationID uint      `gorm:"index;not null" json:"specializationId"`
	Title            string    `json:"title"`
	Year             int       `json:"year"`
	Semester         int       `json:"semester"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	CreationDate     time.Time `json:"creationDate"`

	Professor      *Professor      `gorm:"foreignKey:ProfessorID" json:"-"`
	Specialization *Specialization `gorm:"foreignKey:SpecializationID" json:"-"`
}

// LabHolder associates a professor with a course they co-teach. Lab
// holders are the candidate assistants for the course's exams.
type LabHolder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfessorID  uint      `gorm:"index;not null" json:"professorId"`
	CourseID     uint      `gorm:"index;not null" json:"courseId"`
	CreationDate time.Time `json:"creationDate"`

	Professor *Professor `gorm:"foreignKey:ProfessorID" json:"-"`
	Course    *Course    `gorm:"foreignKey:CourseID" json:"-"`
}

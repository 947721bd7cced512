package models

import (
	"time"
)

type Faculty struct {
	FacultyID    uint      `gorm:"primaryKey" json:"facultyId"`
	ShortName    string    `json:"shortName"`
	LongName     string    `gorm:"index" json:"longName"`
	CreationDate time.Time `json:"creationDate"`
}

type Department struct {
	DepartmentID uint      `gorm:"primaryKey" json:"departmentId"`
	FacultyID    uint      `gorm:"index;not null" json:"facultyId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"-"`
}

type Specialization struct {
	SpecializationID uint      `gorm:"primaryKey" json:"specializationId"`
	FacultyID        uint      `gorm:"index;not null" json:"facultyId"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CreationDate     time.Time `json:"creationDate"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"-"`
}

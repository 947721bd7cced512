package models

import (
	"time"
)

type User struct {
	UserID       uint      `gorm:"primaryKey" json:"userId"`
	FacultyID    *uint     `json:"facultyId"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	UniversityID int       `json:"universityId"`
	Status       string    `json:"status"`
	CreationDate time.Time `json:"creationDate"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"-"`
}

// Student links a user to exactly one group. IsLeader marks the group
// leader, the only student allowed to propose exam dates for the group.
type Student struct {
	StudentID    uint      `gorm:"primaryKey" json:"studentId"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	GroupID      uint      `gorm:"index;not null" json:"groupId"`
	IsLeader     bool      `json:"isLeader"`
	CreationDate time.Time `json:"creationDate"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Group *Group `gorm:"foreignKey:GroupID" json:"-"`
}

type Professor struct {
	ProfessorID  uint      `gorm:"primaryKey" json:"professorId"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	DepartmentID *uint     `json:"departmentId"`
	Title        string    `json:"title"`
	CreationDate time.Time `json:"creationDate"`

	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

package models

import (
	"time"
)

type Group struct {
	GroupID          uint      `gorm:"primaryKey" json:"groupId"`
	SpecializationID uint      `gorm:"index;not null" json:"specializationId"`
	Name             string    `json:"name"`
	Year             int       `json:"year"`
	CreationDate     time.Time `json:"creationDate"`

	Specialization *Specialization `gorm:"foreignKey:SpecializationID" json:"-"`
}

package models

import (
	"time"
)

type Room struct {
	RoomID       uint      `gorm:"primaryKey" json:"roomID"`
	DepartmentID *uint     `json:"departmentId"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Capacity     *int      `json:"capacity"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

package models

import (
	"time"
)

// Session is an exam session window. Exactly one session is expected to
// carry Status "Active" at a time; exam requests created while it is
// active are bound to it.
type Session struct {
	SessionID    uint      `gorm:"primaryKey" json:"sessionId"`
	Status       string    `gorm:"index" json:"status"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Semester     int       `json:"semester"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
}

const SessionActive = "Active"

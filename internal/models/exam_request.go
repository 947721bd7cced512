package models

import (
	"time"
)

// ExamRequest is a group leader's proposed exam date for a course,
// bound to the session that was active at creation time. Status moves
// Pending -> Approved/Rejected/Cancelled; requests are never hard-deleted.
// Details doubles as the rejection reason once a request is rejected.
type ExamRequest struct {
	ExamRequestID uint      `gorm:"primaryKey" json:"examRequestId"`
	CourseID      uint      `gorm:"index;not null" json:"courseId"`
	GroupID       uint      `gorm:"index;not null" json:"groupId"`
	SessionID     uint      `gorm:"index;not null" json:"sessionId"`
	AssistantID   *uint     `json:"assistantId"`
	Date          time.Time `json:"date"`
	TimeStart     *string   `json:"timeStart"`
	TimeEnd       *string   `json:"timeEnd"`
	Status        string    `gorm:"index" json:"status"`
	Type          string    `json:"type"`
	Details       string    `json:"details"`
	CreationDate  time.Time `json:"creationDate"`

	Course    *Course    `gorm:"foreignKey:CourseID" json:"-"`
	Group     *Group     `gorm:"foreignKey:GroupID" json:"-"`
	Session   *Session   `gorm:"foreignKey:SessionID" json:"-"`
	Assistant *Professor `gorm:"foreignKey:AssistantID" json:"-"`
}

// ExamRequestRoom reserves a room for an approved request. Rows are
// owned by the request and fully replaced on each approval update.
type ExamRequestRoom struct {
	ExamRequestID uint      `gorm:"primaryKey;autoIncrement:false" json:"examRequestId"`
	RoomID        uint      `gorm:"primaryKey;autoIncrement:false" json:"roomId"`
	CreationDate  time.Time `json:"creationDate"`

	ExamRequest *ExamRequest `gorm:"foreignKey:ExamRequestID;constraint:OnDelete:CASCADE" json:"-"`
	Room        *Room        `gorm:"foreignKey:RoomID" json:"-"`
}

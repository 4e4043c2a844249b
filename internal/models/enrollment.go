package models

import "time"

// Enrollment registers one member into one session, at most once.
type Enrollment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID uint    `gorm:"uniqueIndex:idx_enrollment_session_member;not null" json:"session_id"`
	Session   Session `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"session"`

	MemberID uint `gorm:"uniqueIndex:idx_enrollment_session_member;not null" json:"member_id"`
	Member   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	Attended bool `gorm:"default:false" json:"attended"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// ScheduleType lookup - Group Class, Personal Training, Consultation.
type ScheduleType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:50;uniqueIndex;not null" json:"type"`
}

// Schedule is a trainer's committed time block on a given date.
// Start/end are wall-clock "15:04" strings; the window is half-open.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainerID uint `gorm:"index;not null" json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainer"`

	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	TypeID uint         `json:"type_id"`
	Type   ScheduleType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the bookable class attached 1:1 to a schedule block.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ScheduleID uint     `gorm:"uniqueIndex;not null" json:"schedule_id"`
	Schedule   Schedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"schedule"`

	Size        int    `gorm:"not null" json:"size"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`

	// 'M', 'F' or 'A' (all). Stored but not enforced at enrollment time.
	SexRestriction string `gorm:"size:1;default:'A'" json:"sex_restriction"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

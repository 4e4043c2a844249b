package models

import "time"

type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Capacity int    `gorm:"not null" json:"capacity"`
}

// EquipmentStatus lookup - Available, In Use, Maintenance, Out of Service.
type EquipmentStatus struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:50;uniqueIndex;not null" json:"label"`
}

type Equipment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	RoomID *uint `json:"room_id"`
	Room   *Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room"`

	StatusID uint            `gorm:"not null" json:"status_id"`
	Status   EquipmentStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

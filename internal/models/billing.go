package models

import "time"

// Service is a priced offering that bill items reference.
type Service struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

type Bill struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	AdminID uint `gorm:"not null" json:"admin_id"`
	Admin   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	MemberID uint `gorm:"index;not null" json:"member_id"`
	Member   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Paid bool      `gorm:"default:false" json:"paid"`

	Items []Item `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Item struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BillID uint `gorm:"index;not null" json:"bill_id"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}

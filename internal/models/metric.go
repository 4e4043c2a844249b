package models

import "time"

// MetricType lookup - Weight, Body Fat %, BMI, Heart Rate, Height.
type MetricType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Metric is an immutable time-stamped reading. A row referenced by a Goal
// carries that goal's target value and is excluded from history queries.
type Metric struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MetricTypeID uint       `gorm:"index;not null" json:"metric_type_id"`
	MetricType   MetricType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"metric_type"`

	Value      float64   `gorm:"type:decimal(10,2);not null" json:"value"`
	LoggedDate time.Time `gorm:"not null;index" json:"logged_date"`

	CreatedAt time.Time `json:"created_at"`
}

// Goal points at the Metric row holding the target value.
type Goal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MetricID uint   `gorm:"not null" json:"metric_id"`
	Metric   Metric `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"target_metric"`

	GoalDate time.Time `gorm:"type:date;not null" json:"goal_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

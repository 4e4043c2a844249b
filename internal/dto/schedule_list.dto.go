package dto

import "time"

type ScheduleEntryDTO struct {
	ID        uint      `json:"id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Type      string    `json:"type"`

	SessionID   *uint  `json:"session_id,omitempty"`
	SessionName string `json:"session_name,omitempty"`
	Enrolled    int64  `json:"enrolled"`
	Capacity    int    `json:"capacity"`
}

type SessionListDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	TrainerName string    `json:"trainer_name"`
	Enrolled    int64     `json:"enrolled"`
	Capacity    int       `json:"capacity"`
	SpotsLeft   int64     `json:"spots_left"`
}

type EnrollmentListDTO struct {
	ID          uint      `json:"id"`
	SessionID   uint      `json:"session_id"`
	SessionName string    `json:"session_name"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	TrainerName string    `json:"trainer_name"`
	Attended    bool      `json:"attended"`
}

package schedule

import (
	"context"
	"time"

	"github.com/FitClubSystems/gym-manager/internal/models"
)

// SessionListing pairs a bookable session with its live enrollment count.
type SessionListing struct {
	Session  models.Session
	Enrolled int64
}

type Repository interface {
	// -------- Lookups --------
	GetTrainer(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetScheduleType(
		ctx context.Context,
		id uint,
	) (*models.ScheduleType, error)

	// -------- Schedule (create / conflict) --------
	HasTimeConflict(
		ctx context.Context,
		trainerID uint,
		date time.Time,
		w Window,
	) (bool, error)

	CreateScheduleIfFree(
		ctx context.Context,
		s *models.Schedule,
	) error

	CreateClassIfFree(
		ctx context.Context,
		s *models.Schedule,
		sess *models.Session,
	) error

	// -------- Schedule (cancel / list) --------
	GetSchedule(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	DeleteScheduleCascade(
		ctx context.Context,
		scheduleID uint,
	) error

	ListForTrainer(
		ctx context.Context,
		trainerID uint,
		from time.Time,
	) ([]models.Schedule, error)

	GetSessionForSchedule(
		ctx context.Context,
		scheduleID uint,
	) (*models.Session, error)

	// -------- Session (browse) --------
	GetSession(
		ctx context.Context,
		id uint,
	) (*models.Session, error)

	ListUpcomingSessions(
		ctx context.Context,
		from time.Time,
	) ([]SessionListing, error)

	// -------- Enrollment --------
	Enroll(
		ctx context.Context,
		sessionID uint,
		memberID uint,
	) (*models.Enrollment, error)

	GetEnrollment(
		ctx context.Context,
		id uint,
	) (*models.Enrollment, error)

	DeleteEnrollment(
		ctx context.Context,
		id uint,
	) error

	UpdateEnrollment(
		ctx context.Context,
		e *models.Enrollment,
	) error

	CountEnrollments(
		ctx context.Context,
		sessionID uint,
	) (int64, error)

	ListMemberEnrollments(
		ctx context.Context,
		memberID uint,
		from time.Time,
	) ([]models.Enrollment, error)
}

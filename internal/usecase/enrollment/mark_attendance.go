package enrollment

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type MarkAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkAttendance {
	return &MarkAttendance{
		repo:  repo,
		audit: audit,
	}
}

// Execute lets the session's trainer record whether the member showed up.
func (uc *MarkAttendance) Execute(
	ctx context.Context,
	trainerID uint,
	enrollmentID uint,
	attended bool,
) (*models.Enrollment, error) {

	e, err := uc.repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("enrollment_not_found")
	}

	if e.Session.Schedule.TrainerID != trainerID {
		return nil, httperr.ErrBusiness("enrollment_not_found")
	}

	e.Attended = attended
	if err := uc.repo.UpdateEnrollment(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainerID,
		Action:   "attendance_marked",
		Entity:   "enrollment",
		EntityID: &e.ID,
		Metadata: map[string]any{"attended": attended},
	})

	return e, nil
}

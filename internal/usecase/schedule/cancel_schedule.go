package schedule

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
)

type CancelSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelSchedule {
	return &CancelSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the schedule, its session and that session's
// enrollments as one unit. requestedBy must be the owning trainer or an
// admin; the handler resolves that before calling.
func (uc *CancelSchedule) Execute(
	ctx context.Context,
	requestedBy uint,
	scheduleID uint,
) error {

	s, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return httperr.ErrBusiness("schedule_not_found")
	}

	if err := uc.repo.DeleteScheduleCascade(ctx, s.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requestedBy,
		Action:   "schedule_cancelled",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return nil
}

package enrollment

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the enrollment when it exists and belongs to the
// member; anything else is not_found so callers cannot probe other
// members' registrations.
func (uc *Cancel) Execute(
	ctx context.Context,
	enrollmentID uint,
	memberID uint,
) error {

	e, err := uc.repo.GetEnrollment(ctx, enrollmentID)
	if err != nil || e.MemberID != memberID {
		return httperr.ErrBusiness("enrollment_not_found")
	}

	if err := uc.repo.DeleteEnrollment(ctx, e.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &memberID,
		Action:   "enrollment_cancelled",
		Entity:   "enrollment",
		EntityID: &e.ID,
	})

	return nil
}

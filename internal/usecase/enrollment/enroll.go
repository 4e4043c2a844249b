package enrollment

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type Enroll struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEnroll(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Enroll {
	return &Enroll{
		repo:  repo,
		audit: audit,
	}
}

// Execute registers the member into the session. The duplicate check,
// the capacity check and the insert run inside one repository
// transaction, so a successful call never oversubscribes the session.
func (uc *Enroll) Execute(
	ctx context.Context,
	sessionID uint,
	memberID uint,
) (*models.Enrollment, error) {

	e, err := uc.repo.Enroll(ctx, sessionID, memberID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &memberID,
		Action:   "member_enrolled",
		Entity:   "enrollment",
		EntityID: &e.ID,
	})

	return e, nil
}

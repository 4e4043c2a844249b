package schedule

import (
	"context"
	"time"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/dto"
)

type ListUpcomingSessions struct {
	repo domain.Repository
}

func NewListUpcomingSessions(repo domain.Repository) *ListUpcomingSessions {
	return &ListUpcomingSessions{repo: repo}
}

func (uc *ListUpcomingSessions) Execute(
	ctx context.Context,
	from time.Time,
) ([]dto.SessionListDTO, error) {

	listings, err := uc.repo.ListUpcomingSessions(ctx, from)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionListDTO, 0, len(listings))
	for _, l := range listings {
		spots := int64(l.Session.Size) - l.Enrolled
		if spots < 0 {
			spots = 0
		}
		out = append(out, dto.SessionListDTO{
			ID:          l.Session.ID,
			Name:        l.Session.Name,
			Description: l.Session.Description,
			Location:    l.Session.Location,
			Date:        l.Session.Schedule.Date,
			StartTime:   l.Session.Schedule.StartTime,
			EndTime:     l.Session.Schedule.EndTime,
			TrainerName: l.Session.Schedule.Trainer.FullName(),
			Enrolled:    l.Enrolled,
			Capacity:    l.Session.Size,
			SpotsLeft:   spots,
		})
	}

	return out, nil
}

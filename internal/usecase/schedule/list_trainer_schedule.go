package schedule

import (
	"context"
	"time"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/dto"
)

type ListTrainerSchedule struct {
	repo domain.Repository
}

func NewListTrainerSchedule(repo domain.Repository) *ListTrainerSchedule {
	return &ListTrainerSchedule{repo: repo}
}

func (uc *ListTrainerSchedule) Execute(
	ctx context.Context,
	trainerID uint,
	from time.Time,
) ([]dto.ScheduleEntryDTO, error) {

	schedules, err := uc.repo.ListForTrainer(ctx, trainerID, from)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleEntryDTO, 0, len(schedules))
	for _, s := range schedules {
		entry := dto.ScheduleEntryDTO{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Type:      s.Type.Type,
		}

		sess, err := uc.repo.GetSessionForSchedule(ctx, s.ID)
		if err == nil {
			enrolled, err := uc.repo.CountEnrollments(ctx, sess.ID)
			if err != nil {
				return nil, err
			}
			id := sess.ID
			entry.SessionID = &id
			entry.SessionName = sess.Name
			entry.Enrolled = enrolled
			entry.Capacity = sess.Size
		}

		out = append(out, entry)
	}

	return out, nil
}

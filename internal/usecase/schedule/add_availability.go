package schedule

import (
	"context"
	"time"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddAvailabilityInput struct {
	TrainerID uint

	Date  string
	Start string
	End   string

	TypeID uint
}

// ======================================================
// USE CASE
// ======================================================

type AddAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddAvailability {
	return &AddAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddAvailability) Execute(
	ctx context.Context,
	in AddAvailabilityInput,
) (*models.Schedule, error) {

	trainer, err := uc.repo.GetTrainer(ctx, in.TrainerID)
	if err != nil {
		return nil, httperr.ErrBusiness("trainer_not_found")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	window, err := domain.ParseWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetScheduleType(ctx, in.TypeID); err != nil {
		return nil, httperr.ErrBusiness("invalid_schedule_type")
	}

	s := &models.Schedule{
		TrainerID: trainer.ID,
		Date:      date,
		StartTime: window.Start,
		EndTime:   window.End,
		TypeID:    in.TypeID,
	}

	if err := uc.repo.CreateScheduleIfFree(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainer.ID,
		Action:   "availability_added",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}

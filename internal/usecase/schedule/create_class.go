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

type CreateClassInput struct {
	CreatedBy uint

	TrainerID uint
	Date      string
	Start     string
	End       string
	TypeID    uint

	Name           string
	Description    string
	Location       string
	Capacity       int
	SexRestriction string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClass struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClass(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClass {
	return &CreateClass{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClass) Execute(
	ctx context.Context,
	in CreateClassInput,
) (*models.Schedule, *models.Session, error) {

	trainer, err := uc.repo.GetTrainer(ctx, in.TrainerID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("trainer_not_found")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	window, err := domain.ParseWindow(in.Start, in.End)
	if err != nil {
		return nil, nil, err
	}

	if _, err := uc.repo.GetScheduleType(ctx, in.TypeID); err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_schedule_type")
	}

	if in.Capacity <= 0 {
		return nil, nil, httperr.ErrBusiness("invalid_capacity")
	}

	restriction := in.SexRestriction
	switch restriction {
	case "":
		restriction = "A"
	case "M", "F", "A":
	default:
		return nil, nil, httperr.ErrBusiness("invalid_sex_restriction")
	}

	s := &models.Schedule{
		TrainerID: trainer.ID,
		Date:      date,
		StartTime: window.Start,
		EndTime:   window.End,
		TypeID:    in.TypeID,
	}

	sess := &models.Session{
		Size:           in.Capacity,
		Name:           in.Name,
		Description:    in.Description,
		Location:       in.Location,
		SexRestriction: restriction,
	}

	// Conflict check, schedule and session land in one transaction.
	if err := uc.repo.CreateClassIfFree(ctx, s, sess); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   "class_created",
		Entity:   "session",
		EntityID: &sess.ID,
	})

	return s, sess, nil
}

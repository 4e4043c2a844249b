package goal

import (
	"context"
	"time"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/goal"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SetGoalInput struct {
	UserID       uint
	MetricTypeID uint
	TargetValue  float64
	GoalDate     string
	Overwrite    bool
}

// ======================================================
// USE CASE
// ======================================================

type SetGoal struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetGoal(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetGoal {
	return &SetGoal{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates or overwrites the member's goal for one metric type.
// When a goal exists and overwrite is false, the existing goal comes
// back alongside the goal_exists error so the caller can show it.
func (uc *SetGoal) Execute(
	ctx context.Context,
	in SetGoalInput,
) (saved *models.Goal, existing *models.Goal, err error) {

	if _, err := uc.repo.GetMetricType(ctx, in.MetricTypeID); err != nil {
		return nil, nil, httperr.ErrBusiness("metric_type_not_found")
	}

	goalDate, err := time.Parse("2006-01-02", in.GoalDate)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	existing, err = uc.repo.FindGoal(ctx, in.UserID, in.MetricTypeID)
	if err != nil {
		return nil, nil, err
	}

	if existing != nil && !in.Overwrite {
		return nil, existing, httperr.ErrBusiness("goal_exists")
	}

	saved, err = uc.repo.SaveGoal(
		ctx,
		in.UserID,
		in.MetricTypeID,
		in.TargetValue,
		goalDate,
		existing,
	)
	if err != nil {
		return nil, nil, err
	}

	action := "goal_set"
	if existing != nil {
		action = "goal_overwritten"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   action,
		Entity:   "goal",
		EntityID: &saved.ID,
	})

	return saved, nil, nil
}

package goal

import (
	"context"
	"time"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/goal"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// GoalProgress is one goal with its computed progress, ready to render.
type GoalProgress struct {
	GoalID     uint            `json:"goal_id"`
	MetricType string          `json:"metric_type"`
	GoalDate   time.Time       `json:"goal_date"`
	Progress   domain.Progress `json:"progress"`
}

type Progress struct {
	repo domain.Repository
}

func NewProgress(repo domain.Repository) *Progress {
	return &Progress{repo: repo}
}

// ForGoal computes progress for one goal owned by userID.
func (uc *Progress) ForGoal(
	ctx context.Context,
	userID uint,
	goalID uint,
) (*GoalProgress, error) {

	g, err := uc.repo.GetGoal(ctx, goalID)
	if err != nil || g.UserID != userID {
		return nil, httperr.ErrBusiness("goal_not_found")
	}

	target := g.Metric

	latest, err := uc.repo.LatestReading(
		ctx, userID, target.MetricTypeID, target.ID,
	)
	if err != nil {
		return nil, err
	}

	baseline, err := uc.repo.BaselineReading(
		ctx, userID, target.MetricTypeID, target.ID, target.LoggedDate,
	)
	if err != nil {
		return nil, err
	}

	return &GoalProgress{
		GoalID:     g.ID,
		MetricType: target.MetricType.Name,
		GoalDate:   g.GoalDate,
		Progress:   domain.Compute(target.Value, toReading(latest), toReading(baseline)),
	}, nil
}

// ForUser computes progress for every goal the member has.
func (uc *Progress) ForUser(
	ctx context.Context,
	userID uint,
) ([]GoalProgress, error) {

	goals, err := uc.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		gp, err := uc.ForGoal(ctx, userID, g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *gp)
	}
	return out, nil
}

func toReading(m *models.Metric) *domain.Reading {
	if m == nil {
		return nil
	}
	return &domain.Reading{Value: m.Value, LoggedAt: m.LoggedDate}
}

package goal

import (
	"context"
	"time"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/goal"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type LogMetric struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLogMetric(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *LogMetric {
	return &LogMetric{
		repo:  repo,
		audit: audit,
	}
}

// Execute appends one reading. Readings are never updated or deleted.
func (uc *LogMetric) Execute(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
	value float64,
) (*models.Metric, error) {

	if _, err := uc.repo.GetMetricType(ctx, metricTypeID); err != nil {
		return nil, httperr.ErrBusiness("metric_type_not_found")
	}

	m := &models.Metric{
		UserID:       userID,
		MetricTypeID: metricTypeID,
		Value:        value,
		LoggedDate:   time.Now(),
	}

	if err := uc.repo.CreateMetric(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "metric_logged",
		Entity:   "metric",
		EntityID: &m.ID,
	})

	return m, nil
}

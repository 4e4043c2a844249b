package goal

import (
	"context"
	"time"

	"github.com/FitClubSystems/gym-manager/internal/models"
)

type Repository interface {
	// -------- Metric types --------
	GetMetricType(
		ctx context.Context,
		id uint,
	) (*models.MetricType, error)

	ListMetricTypes(
		ctx context.Context,
	) ([]models.MetricType, error)

	// -------- Metrics --------
	CreateMetric(
		ctx context.Context,
		m *models.Metric,
	) error

	// ListReadings returns a member's history for one metric type in
	// logged order, excluding goal target carriers.
	ListReadings(
		ctx context.Context,
		userID uint,
		metricTypeID uint,
	) ([]models.Metric, error)

	LatestReading(
		ctx context.Context,
		userID uint,
		metricTypeID uint,
		excludeMetricID uint,
	) (*models.Metric, error)

	// BaselineReading is the newest reading at or before asOf.
	BaselineReading(
		ctx context.Context,
		userID uint,
		metricTypeID uint,
		excludeMetricID uint,
		asOf time.Time,
	) (*models.Metric, error)

	// -------- Goals --------
	FindGoal(
		ctx context.Context,
		userID uint,
		metricTypeID uint,
	) (*models.Goal, error)

	GetGoal(
		ctx context.Context,
		id uint,
	) (*models.Goal, error)

	ListGoals(
		ctx context.Context,
		userID uint,
	) ([]models.Goal, error)

	// SaveGoal persists the target metric and the goal atomically.
	// When existing is non-nil the goal is repointed and the stale
	// target row removed only after the repoint.
	SaveGoal(
		ctx context.Context,
		userID uint,
		metricTypeID uint,
		target float64,
		goalDate time.Time,
		existing *models.Goal,
	) (*models.Goal, error)
}

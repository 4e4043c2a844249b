package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/goal"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type GoalGormRepository struct {
	db *gorm.DB
}

func NewGoalGormRepository(db *gorm.DB) *GoalGormRepository {
	return &GoalGormRepository{db: db}
}

// --------------------------------------------------
// Metric types
// --------------------------------------------------

func (r *GoalGormRepository) GetMetricType(
	ctx context.Context,
	id uint,
) (*models.MetricType, error) {

	var mt models.MetricType
	if err := r.db.WithContext(ctx).First(&mt, id).Error; err != nil {
		return nil, err
	}
	return &mt, nil
}

func (r *GoalGormRepository) ListMetricTypes(
	ctx context.Context,
) ([]models.MetricType, error) {

	var types []models.MetricType
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// --------------------------------------------------
// Metrics
// --------------------------------------------------

func (r *GoalGormRepository) CreateMetric(
	ctx context.Context,
	m *models.Metric,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GoalGormRepository) ListReadings(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
) ([]models.Metric, error) {

	var metrics []models.Metric
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND metric_type_id = ? AND id NOT IN (?)",
			userID,
			metricTypeID,
			r.db.Model(&models.Goal{}).Select("metric_id"),
		).
		Order("logged_date ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// LatestReading returns (nil, nil) when the member has no reading yet.
func (r *GoalGormRepository) LatestReading(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
	excludeMetricID uint,
) (*models.Metric, error) {

	var m models.Metric
	err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND metric_type_id = ? AND id <> ?",
			userID, metricTypeID, excludeMetricID,
		).
		Order("logged_date DESC").
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GoalGormRepository) BaselineReading(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
	excludeMetricID uint,
	asOf time.Time,
) (*models.Metric, error) {

	var m models.Metric
	err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND metric_type_id = ? AND id <> ? AND logged_date <= ?",
			userID, metricTypeID, excludeMetricID, asOf,
		).
		Order("logged_date DESC").
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// --------------------------------------------------
// Goals
// --------------------------------------------------

func (r *GoalGormRepository) FindGoal(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
) (*models.Goal, error) {

	var g models.Goal
	err := r.db.WithContext(ctx).
		Joins("JOIN metrics ON metrics.id = goals.metric_id").
		Where("goals.user_id = ? AND metrics.metric_type_id = ?", userID, metricTypeID).
		Preload("Metric").
		Preload("Metric.MetricType").
		First(&g).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalGormRepository) GetGoal(
	ctx context.Context,
	id uint,
) (*models.Goal, error) {

	var g models.Goal
	if err := r.db.WithContext(ctx).
		Preload("Metric").
		Preload("Metric.MetricType").
		First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalGormRepository) ListGoals(
	ctx context.Context,
	userID uint,
) ([]models.Goal, error) {

	var goals []models.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Metric").
		Preload("Metric.MetricType").
		Order("id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalGormRepository) SaveGoal(
	ctx context.Context,
	userID uint,
	metricTypeID uint,
	target float64,
	goalDate time.Time,
	existing *models.Goal,
) (*models.Goal, error) {

	var saved models.Goal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The carrier metric must get its id before the goal can
		// reference it.
		carrier := models.Metric{
			UserID:       userID,
			MetricTypeID: metricTypeID,
			Value:        target,
			LoggedDate:   time.Now(),
		}
		if err := tx.Create(&carrier).Error; err != nil {
			return err
		}

		if existing == nil {
			saved = models.Goal{
				UserID:   userID,
				MetricID: carrier.ID,
				GoalDate: goalDate,
			}
			return tx.Create(&saved).Error
		}

		staleMetricID := existing.MetricID

		existing.MetricID = carrier.ID
		existing.GoalDate = goalDate
		if err := tx.Model(&models.Goal{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"metric_id": carrier.ID,
				"goal_date": goalDate,
			}).Error; err != nil {
			return err
		}

		// Remove the stale carrier only after the goal is repointed,
		// so a failure never leaves a dangling reference.
		if err := tx.Delete(&models.Metric{}, staleMetricID).Error; err != nil {
			return err
		}

		saved = *existing
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Compile-time check
var _ domain.Repository = (*GoalGormRepository)(nil)

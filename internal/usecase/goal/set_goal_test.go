package goal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// fakeGoalRepo serves the SetGoal rejection paths, which never reach
// SaveGoal or the audit dispatcher.
type fakeGoalRepo struct {
	metricTypes map[uint]*models.MetricType
	goals       map[uint]*models.Goal // keyed by metric type id
	saveCalls   int
}

func (f *fakeGoalRepo) GetMetricType(_ context.Context, id uint) (*models.MetricType, error) {
	if mt, ok := f.metricTypes[id]; ok {
		return mt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGoalRepo) ListMetricTypes(context.Context) ([]models.MetricType, error) {
	return nil, nil
}

func (f *fakeGoalRepo) CreateMetric(context.Context, *models.Metric) error { return nil }

func (f *fakeGoalRepo) ListReadings(context.Context, uint, uint) ([]models.Metric, error) {
	return nil, nil
}

func (f *fakeGoalRepo) LatestReading(context.Context, uint, uint, uint) (*models.Metric, error) {
	return nil, nil
}

func (f *fakeGoalRepo) BaselineReading(context.Context, uint, uint, uint, time.Time) (*models.Metric, error) {
	return nil, nil
}

func (f *fakeGoalRepo) FindGoal(_ context.Context, _ uint, metricTypeID uint) (*models.Goal, error) {
	return f.goals[metricTypeID], nil
}

func (f *fakeGoalRepo) GetGoal(context.Context, uint) (*models.Goal, error) { return nil, nil }

func (f *fakeGoalRepo) ListGoals(context.Context, uint) ([]models.Goal, error) { return nil, nil }

func (f *fakeGoalRepo) SaveGoal(
	_ context.Context, _ uint, _ uint, _ float64, _ time.Time, _ *models.Goal,
) (*models.Goal, error) {
	f.saveCalls++
	return nil, nil
}

func TestSetGoalRejectsExistingWithoutOverwrite(t *testing.T) {
	prior := &models.Goal{ID: 7, UserID: 1, MetricID: 42}
	repo := &fakeGoalRepo{
		metricTypes: map[uint]*models.MetricType{3: {ID: 3, Name: "Weight"}},
		goals:       map[uint]*models.Goal{3: prior},
	}
	uc := NewSetGoal(repo, nil)

	saved, existing, err := uc.Execute(context.Background(), SetGoalInput{
		UserID:       1,
		MetricTypeID: 3,
		TargetValue:  180,
		GoalDate:     "2027-01-01",
		Overwrite:    false,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "goal_exists"))
	assert.Nil(t, saved)
	require.NotNil(t, existing)
	assert.Equal(t, prior.ID, existing.ID)

	// nothing was written: the prior goal and its target row stand
	assert.Zero(t, repo.saveCalls)
}

func TestSetGoalUnknownMetricType(t *testing.T) {
	repo := &fakeGoalRepo{metricTypes: map[uint]*models.MetricType{}}
	uc := NewSetGoal(repo, nil)

	_, _, err := uc.Execute(context.Background(), SetGoalInput{
		UserID:       1,
		MetricTypeID: 99,
		TargetValue:  180,
		GoalDate:     "2027-01-01",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "metric_type_not_found"))
	assert.Zero(t, repo.saveCalls)
}

func TestSetGoalRejectsBadDate(t *testing.T) {
	repo := &fakeGoalRepo{
		metricTypes: map[uint]*models.MetricType{3: {ID: 3, Name: "Weight"}},
	}
	uc := NewSetGoal(repo, nil)

	_, _, err := uc.Execute(context.Background(), SetGoalInput{
		UserID:       1,
		MetricTypeID: 3,
		TargetValue:  180,
		GoalDate:     "tomorrow",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	assert.Zero(t, repo.saveCalls)
}

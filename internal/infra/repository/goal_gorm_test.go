package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FitClubSystems/gym-manager/internal/models"
)

func logReading(t *testing.T, repo *GoalGormRepository, userID, typeID uint, value float64, daysAgo int) *models.Metric {
	t.Helper()

	m := &models.Metric{
		UserID:       userID,
		MetricTypeID: typeID,
		Value:        value,
		LoggedDate:   time.Now().AddDate(0, 0, -daysAgo),
	}
	require.NoError(t, repo.CreateMetric(context.Background(), m))
	return m
}

func TestReadingsExcludeGoalCarriers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalGormRepository(db)
	ctx := context.Background()

	member := createTestUser(t, db, models.RoleMember)
	weight := metricTypeID(t, db, "Weight")

	logReading(t, repo, member.ID, weight, 200, 30)
	logReading(t, repo, member.ID, weight, 195, 10)

	goal, err := repo.SaveGoal(ctx, member.ID, weight, 180, testDate(90), nil)
	require.NoError(t, err)
	require.NotZero(t, goal.MetricID)

	// the target carrier row never shows up as history
	readings, err := repo.ListReadings(ctx, member.ID, weight)
	require.NoError(t, err)
	require.Len(t, readings, 2)
	for _, r := range readings {
		assert.NotEqual(t, goal.MetricID, r.ID)
	}

	latest, err := repo.LatestReading(ctx, member.ID, weight, goal.MetricID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 195.0, latest.Value)
}

func TestLatestReadingNone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalGormRepository(db)

	member := createTestUser(t, db, models.RoleMember)
	weight := metricTypeID(t, db, "Weight")

	latest, err := repo.LatestReading(context.Background(), member.ID, weight, 0)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestBaselineReading(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalGormRepository(db)
	ctx := context.Background()

	member := createTestUser(t, db, models.RoleMember)
	weight := metricTypeID(t, db, "Weight")

	logReading(t, repo, member.ID, weight, 200, 30)
	logReading(t, repo, member.ID, weight, 190, 5)

	// the baseline is the most recent reading on or before the cutoff
	baseline, err := repo.BaselineReading(ctx, member.ID, weight, 0,
		time.Now().AddDate(0, 0, -10))
	require.NoError(t, err)
	require.NotNil(t, baseline)
	assert.Equal(t, 200.0, baseline.Value)

	baseline, err = repo.BaselineReading(ctx, member.ID, weight, 0,
		time.Now().AddDate(0, 0, -60))
	require.NoError(t, err)
	assert.Nil(t, baseline)
}

func TestSaveGoalOverwrite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalGormRepository(db)
	ctx := context.Background()

	member := createTestUser(t, db, models.RoleMember)
	weight := metricTypeID(t, db, "Weight")

	first, err := repo.SaveGoal(ctx, member.ID, weight, 180, testDate(90), nil)
	require.NoError(t, err)
	staleCarrier := first.MetricID

	existing, err := repo.FindGoal(ctx, member.ID, weight)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, first.ID, existing.ID)

	second, err := repo.SaveGoal(ctx, member.ID, weight, 175, testDate(120), existing)
	require.NoError(t, err)

	// same goal row, repointed at the new carrier
	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, staleCarrier, second.MetricID)

	var goals int64
	db.Model(&models.Goal{}).Where("user_id = ?", member.ID).Count(&goals)
	assert.Equal(t, int64(1), goals)

	// the stale carrier is gone
	var stale int64
	db.Model(&models.Metric{}).Where("id = ?", staleCarrier).Count(&stale)
	assert.Zero(t, stale)

	got, err := repo.GetGoal(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 175.0, got.Metric.Value)
}

func TestFindGoalScopedToMetricType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalGormRepository(db)
	ctx := context.Background()

	member := createTestUser(t, db, models.RoleMember)
	weight := metricTypeID(t, db, "Weight")
	bodyFat := metricTypeID(t, db, "Body Fat %")

	_, err := repo.SaveGoal(ctx, member.ID, weight, 180, testDate(90), nil)
	require.NoError(t, err)

	// a goal for one metric type does not shadow another
	found, err := repo.FindGoal(ctx, member.ID, bodyFat)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.SaveGoal(ctx, member.ID, bodyFat, 12, testDate(90), nil)
	require.NoError(t, err)

	goals, err := repo.ListGoals(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}

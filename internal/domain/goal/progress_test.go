package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reading(value float64, daysAgo int) *Reading {
	return &Reading{
		Value:    value,
		LoggedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestComputeNoReadings(t *testing.T) {
	p := Compute(180, nil, nil)

	assert.False(t, p.HasData)
	assert.Equal(t, 180.0, p.TargetValue)
	assert.Nil(t, p.Pct)
	assert.Nil(t, p.Baseline)
	assert.Empty(t, p.Direction)
}

func TestComputeHalfwayToWeightLoss(t *testing.T) {
	// baseline 200, target 180, latest 190: halfway there.
	p := Compute(180, reading(190, 1), reading(200, 30))

	require.True(t, p.HasData)
	assert.Equal(t, 190.0, p.Latest)
	assert.Equal(t, -10.0, p.Remaining)
	assert.Equal(t, DirectionDecrease, p.Direction)
	require.NotNil(t, p.Baseline)
	assert.Equal(t, 200.0, *p.Baseline)
	require.NotNil(t, p.Pct)
	assert.InDelta(t, 50.0, *p.Pct, 1e-9)
}

func TestComputeGainDirection(t *testing.T) {
	// muscle gain: baseline 150, target 170, latest 155.
	p := Compute(170, reading(155, 2), reading(150, 60))

	assert.Equal(t, 15.0, p.Remaining)
	assert.Equal(t, DirectionIncrease, p.Direction)
	require.NotNil(t, p.Pct)
	assert.InDelta(t, 25.0, *p.Pct, 1e-9)
}

func TestComputeTargetReached(t *testing.T) {
	p := Compute(180, reading(180, 1), reading(200, 30))

	assert.Equal(t, 0.0, p.Remaining)
	assert.Equal(t, DirectionReached, p.Direction)
	require.NotNil(t, p.Pct)
	assert.InDelta(t, 100.0, *p.Pct, 1e-9)
}

func TestComputeOvershootClamps(t *testing.T) {
	// went past the target: pct caps at 100.
	p := Compute(180, reading(175, 1), reading(200, 30))
	require.NotNil(t, p.Pct)
	assert.InDelta(t, 100.0, *p.Pct, 1e-9)

	// moved away from the target: pct floors at 0.
	p = Compute(180, reading(210, 1), reading(200, 30))
	require.NotNil(t, p.Pct)
	assert.InDelta(t, 0.0, *p.Pct, 1e-9)
}

func TestComputeNoBaseline(t *testing.T) {
	p := Compute(180, reading(190, 1), nil)

	assert.True(t, p.HasData)
	assert.Nil(t, p.Baseline)
	assert.Nil(t, p.Pct)
	assert.Equal(t, -10.0, p.Remaining)
}

func TestComputeBaselineEqualsTarget(t *testing.T) {
	// division by zero guard: pct stays nil.
	p := Compute(180, reading(185, 1), reading(180, 30))

	assert.True(t, p.HasData)
	assert.Nil(t, p.Pct)
	assert.Nil(t, p.Baseline)
}

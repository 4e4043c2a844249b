package goal

import "time"

// Reading is one historical metric value, never a goal's target carrier.
type Reading struct {
	Value    float64
	LoggedAt time.Time
}

const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
	DirectionReached  = "reached"
)

// Progress describes how far a member has come toward one goal.
// Pct is nil whenever a baseline is missing or equals the target,
// so the computation never divides by zero.
type Progress struct {
	TargetValue float64    `json:"target_value"`
	HasData     bool       `json:"has_data"`
	Latest      float64    `json:"latest,omitempty"`
	LatestAt    *time.Time `json:"latest_at,omitempty"`
	Remaining   float64    `json:"remaining"`
	Direction   string     `json:"direction,omitempty"`
	Baseline    *float64   `json:"baseline,omitempty"`
	Pct         *float64   `json:"progress_pct,omitempty"`
}

// Compute derives goal progress from the target value and the two
// relevant readings. latest is the most recent reading; baseline is the
// reading on record at the moment the goal was set. Either may be nil.
func Compute(target float64, latest, baseline *Reading) Progress {
	p := Progress{TargetValue: target}

	if latest == nil {
		// No readings yet: nothing to measure against.
		return p
	}

	p.HasData = true
	p.Latest = latest.Value
	at := latest.LoggedAt
	p.LatestAt = &at

	p.Remaining = target - latest.Value
	switch {
	case p.Remaining > 0:
		p.Direction = DirectionIncrease
	case p.Remaining < 0:
		p.Direction = DirectionDecrease
	default:
		p.Direction = DirectionReached
	}

	if baseline == nil || baseline.Value == target {
		return p
	}

	b := baseline.Value
	p.Baseline = &b

	pct := (latest.Value - b) / (target - b)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	pct *= 100
	p.Pct = &pct

	return p
}

package goal

import (
	"context"
	"time"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/goal"
)

type HistoryReading struct {
	Value      float64   `json:"value"`
	LoggedDate time.Time `json:"logged_date"`
}

// HistoryGroup is one metric type's readings in logged order plus the
// first-to-last trend delta (meaningful from two readings up).
type HistoryGroup struct {
	MetricType string           `json:"metric_type"`
	Readings   []HistoryReading `json:"readings"`
	Trend      *float64         `json:"trend,omitempty"`
}

type MetricHistory struct {
	repo domain.Repository
}

func NewMetricHistory(repo domain.Repository) *MetricHistory {
	return &MetricHistory{repo: repo}
}

func (uc *MetricHistory) Execute(
	ctx context.Context,
	userID uint,
) ([]HistoryGroup, error) {

	types, err := uc.repo.ListMetricTypes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]HistoryGroup, 0, len(types))
	for _, mt := range types {
		readings, err := uc.repo.ListReadings(ctx, userID, mt.ID)
		if err != nil {
			return nil, err
		}
		if len(readings) == 0 {
			continue
		}

		group := HistoryGroup{MetricType: mt.Name}
		for _, m := range readings {
			group.Readings = append(group.Readings, HistoryReading{
				Value:      m.Value,
				LoggedDate: m.LoggedDate,
			})
		}

		if len(readings) >= 2 {
			trend := readings[len(readings)-1].Value - readings[0].Value
			group.Trend = &trend
		}

		out = append(out, group)
	}

	return out, nil
}

package schedule

import (
	"time"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
)

const clockLayout = "15:04"

// Window is a half-open [Start,End) wall-clock interval on a single date.
// Times are "15:04" strings, which order lexically.
type Window struct {
	Start string
	End   string
}

// ParseWindow validates the clock format and rejects empty or inverted
// windows before any conflict check runs. Times come back zero-padded
// so the stored strings always order lexically.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse(clockLayout, start)
	if err != nil {
		return Window{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	e, err := time.Parse(clockLayout, end)
	if err != nil {
		return Window{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	w := Window{Start: s.Format(clockLayout), End: e.Format(clockLayout)}
	if w.End <= w.Start {
		return Window{}, httperr.ErrBusiness("invalid_time_range")
	}
	return w, nil
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints ([9:00,10:00) and [10:00,11:00)) do not conflict.
func Overlaps(a, b Window) bool {
	return a.Start < b.End && a.End > b.Start
}

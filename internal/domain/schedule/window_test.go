package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantCode string
	}{
		{name: "valid window", start: "09:00", end: "10:00"},
		{name: "one minute", start: "09:00", end: "09:01"},
		{name: "inverted", start: "10:00", end: "09:00", wantCode: "invalid_time_range"},
		{name: "empty window", start: "09:00", end: "09:00", wantCode: "invalid_time_range"},
		{name: "garbage start", start: "morning", end: "10:00", wantCode: "invalid_date_or_time"},
		{name: "garbage end", start: "09:00", end: "late", wantCode: "invalid_date_or_time"},
		{name: "out of range hour", start: "25:00", end: "26:00", wantCode: "invalid_date_or_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
		})
	}
}

func TestParseWindowPadsHours(t *testing.T) {
	w, err := ParseWindow("9:00", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", w.Start)
	assert.Equal(t, "10:00", w.End)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{
			name: "back to back do not conflict",
			a:    Window{Start: "09:00", End: "10:00"},
			b:    Window{Start: "10:00", End: "11:00"},
			want: false,
		},
		{
			name: "partial overlap conflicts",
			a:    Window{Start: "09:00", End: "10:00"},
			b:    Window{Start: "09:30", End: "10:30"},
			want: true,
		},
		{
			name: "contained window conflicts",
			a:    Window{Start: "09:00", End: "12:00"},
			b:    Window{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "identical windows conflict",
			a:    Window{Start: "09:00", End: "10:00"},
			b:    Window{Start: "09:00", End: "10:00"},
			want: true,
		},
		{
			name: "disjoint do not conflict",
			a:    Window{Start: "06:00", End: "07:00"},
			b:    Window{Start: "18:00", End: "19:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateEventWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		ok    bool
	}{
		{"one hour", start, start.Add(time.Hour), true},
		{"one nanosecond", start, start.Add(time.Nanosecond), true},
		{"equal bounds", start, start, false},
		{"end before start", start, start.Add(-time.Minute), false},
		{"missing start", time.Time{}, start, false},
		{"missing end", start, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventWindow(tt.start, tt.end)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

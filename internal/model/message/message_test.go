package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipantKey(t *testing.T) {
	tests := []struct {
		name string
		ids  []uint
		want string
	}{
		{"sorted", []uint{3, 7}, "3:7"},
		{"reversed", []uint{7, 3}, "3:7"},
		{"duplicates", []uint{7, 3, 7}, "3:7"},
		{"single", []uint{5}, "5"},
		{"multi digit ordering", []uint{10, 9}, "9:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParticipantKey(tt.ids...))
		})
	}
}

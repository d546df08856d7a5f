package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    int
	}{
		{"zero current", 0, 10000, 0},
		{"negative current", -5, 10000, 0},
		{"halfway", 5000, 10000, 50},
		{"rounds up", 6667, 10000, 67},
		{"rounds down", 3333, 10000, 33},
		{"exactly at target", 10000, 10000, 100},
		{"over target capped", 15000, 10000, 100},
		{"zero target", 500, 0, 0},
		{"negative target", 500, -10, 0},
		{"fractional target", 1, 3, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProgress(tt.current, tt.target))
		})
	}
}

func TestFinishStats(t *testing.T) {
	s := models.MissionStats{TotalMissions: 4, CompletedMissions: 3}
	finishStats(&s)
	assert.Equal(t, 75.0, s.CompletionRate)

	empty := models.MissionStats{}
	finishStats(&empty)
	assert.Equal(t, 0.0, empty.CompletionRate)

	third := models.MissionStats{TotalMissions: 3, CompletedMissions: 1}
	finishStats(&third)
	assert.Equal(t, 33.33, third.CompletionRate)
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrAlreadyActive))
	assert.True(t, IsConflict(ErrAlreadyCompleted))
	assert.True(t, IsConflict(ErrAlreadyCancelled))
	assert.True(t, IsConflict(ErrMissionInactive))
	assert.False(t, IsConflict(ErrMissionNotFound))
	assert.False(t, IsConflict(ErrValidation))
	assert.False(t, IsConflict(nil))
}

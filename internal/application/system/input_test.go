package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
)

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()
	require.NotNil(t, sys)
}

func TestSampleFromKeys(t *testing.T) {
	tests := []struct {
		name string
		keys KeyState
		want entity.InputSample
	}{
		{"nothing held", KeyState{}, entity.InputSample{}},
		{"left", KeyState{Left: true}, entity.InputSample{Horizontal: -1}},
		{"right", KeyState{Right: true}, entity.InputSample{Horizontal: 1}},
		{"left and right cancel", KeyState{Left: true, Right: true}, entity.InputSample{}},
		{"up is jump", KeyState{Up: true}, entity.InputSample{Vertical: 1}},
		{"down flattens", KeyState{Down: true}, entity.InputSample{Vertical: -1}},
		{"float edge", KeyState{FloatPushed: true}, entity.InputSample{ToggleFloat: true}},
		{"brake", KeyState{Brake: true, Right: true}, entity.InputSample{Horizontal: 1, Brake: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleFromKeys(tt.keys))
		})
	}
}

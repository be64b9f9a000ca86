package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
	// inverted range collapses to the lower bound (world smaller than view)
	assert.Equal(t, 0.0, Clamp(30, 0, -40))
}

func TestApproachStopsAtZero(t *testing.T) {
	assert.Equal(t, 100.0, Approach(120, 20))
	assert.Equal(t, 0.0, Approach(10, FrameMs))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 12.0, Lerp(0, 100, 0.12), 1e-9)
}

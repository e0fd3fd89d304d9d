package periscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert := assert.New(t)

	s := Summarize(DefaultScene().Trace())
	assert.Equal(Done, s.State)
	assert.Equal(2, s.Hits)
	assert.InDelta(600, s.TraveledLength, 1e-9)
	assert.InDelta(0, s.ExitAngle, 1e-6)
	assert.InDelta(0, s.Deviation, 1e-4)
	assert.InDelta(300, s.LateralOffset, 1e-6)

	s = Summarize(DefaultScene().WithControls(135, -45, 200).Trace())
	assert.Equal(Escaped, s.State)
	assert.Equal(0, s.Hits)
	assert.Zero(s.TraveledLength)
	assert.InDelta(0, s.LateralOffset, 1e-9)

	// one bounce straight back up
	s = Summarize(DefaultScene().WithControls(45, -45, 450).Trace())
	assert.Equal(Escaped, s.State)
	assert.Equal(1, s.Hits)
	assert.InDelta(90, s.ExitAngle, 1e-6)
	assert.InDelta(90, s.Deviation, 1e-6)
}

func TestSummarizeDeadRay(t *testing.T) {
	s := Summarize(Trace(Ray{Origin: V(1, 1)}, nil, DefaultTraceParams()))
	assert.Zero(t, s.Deviation)
	assert.Zero(t, s.LateralOffset)
}

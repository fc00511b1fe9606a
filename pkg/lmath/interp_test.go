package lmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearStep(t *testing.T) {
	assert.Equal(t, 0.0, LinearStep(0, 10, 0, 5))
	assert.Equal(t, 10.0, LinearStep(0, 10, 5, 5))
	assert.InDelta(t, 4.0, LinearStep(0, 10, 2, 5), 1e-12)
}

func TestRemainingApproach(t *testing.T) {
	assert.Equal(t, 10.0, RemainingApproach(10, 0, 1))  // ratio 1 jumps straight there
	assert.Equal(t, 0.0, RemainingApproach(10, 0, 0))   // ratio 0 never moves
	assert.InDelta(t, 5.0, RemainingApproach(10, 0, 0.5), 1e-12)

	// Repeated application converges monotonically
	cur := 0.0
	prev := cur
	for i:=0; i<50; i++ {
		cur = RemainingApproach(1, cur, 0.3)
		assert.Greater(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, 1.0, cur, 1e-6)
}

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0.5, 6), 1e-12)
	assert.Less(t, Sigmoid(0, 6), 0.01)
	assert.Greater(t, Sigmoid(1, 6), 0.99)
}

func TestSigmoidStepEasesBetweenEndpoints(t *testing.T) {
	a, b := 2.0, 12.0
	start := SigmoidStep(a, b, 0, 10, 6)
	mid := SigmoidStep(a, b, 5, 10, 6)
	end := SigmoidStep(a, b, 10, 10, 6)

	assert.InDelta(t, a, start, (b-a)*0.01)
	assert.InDelta(t, (a+b)/2, mid, 1e-9)
	assert.InDelta(t, b, end, (b-a)*0.01)
	assert.Less(t, start, mid)
	assert.Less(t, mid, end)
}

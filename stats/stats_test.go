package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelford(t *testing.T) {
	s := &Statistic{}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}
	assert.Equal(t, 8, s.Count())
	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
	// sample variance of the classic example set is 32/7
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.Stdev(), 1e-12)
}

func TestEmptyStatistic(t *testing.T) {
	s := &Statistic{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StandardError(95))
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.96, ZVal(95), 0.001)
	assert.InDelta(t, 1.645, ZVal(90), 0.001)
}

// Package stats has the small statistics helpers the match report needs:
// a streaming accumulator and a normal-quantile lookup.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic is a running mean/variance accumulator over a stream of game
// observations (lengths, win indicators). Welford's update, so one pass
// and no stored samples.
type Statistic struct {
	n int

	prevMean float64
	mean     float64
	prevSum  float64
	sum      float64
}

// Push folds one observation into the accumulator.
func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.prevMean = val
		s.mean = val
		s.prevSum = 0
	} else {
		s.mean = s.prevMean + (val-s.prevMean)/float64(s.n)
		s.sum = s.prevSum + (val-s.prevMean)*(val-s.mean)
		s.prevMean = s.mean
		s.prevSum = s.sum
	}
}

// Count is the number of observations pushed so far.
func (s *Statistic) Count() int {
	return s.n
}

func (s *Statistic) Mean() float64 {
	if s.n > 0 {
		return s.mean
	}
	return 0.0
}

// Variance is the sample variance (n-1 denominator).
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.sum / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the half-width of the confidence interval around
// the mean, for an interval given in percent (e.g. 95).
func (s *Statistic) StandardError(confidenceInterval float64) float64 {
	if s.n == 0 {
		return 0.0
	}
	return ZVal(confidenceInterval) * s.Stdev() / math.Sqrt(float64(s.n))
}

// ZVal returns the two-tailed Z-value associated with a specific confidence
// interval. The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

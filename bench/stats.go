package bench

import (
	"math"
	"time"
)

// runningStat accumulates mean and variance online with Welford's algorithm,
// so the stopping loop can consult the RSD after every batch in O(1) without
// rescanning the sample history. Welford avoids the catastrophic cancellation
// a naive sum-of-squares accumulator hits once samples pile up.
type runningStat struct {
	count int64
	mean  float64
	m2    float64
	min   float64
	max   float64
}

func (s *runningStat) add(d time.Duration) {
	x := float64(d)
	s.count++
	if s.count == 1 {
		s.min, s.max = x, x
	} else {
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

// stdDev is the sample (n-1) standard deviation, 0 for fewer than two samples.
func (s *runningStat) stdDev() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count-1))
}

// rsd is the relative standard deviation in percent. A zero mean, which a
// sub-resolution operation can produce, yields 0 rather than a division error.
func (s *runningStat) rsd() float64 {
	if s.mean == 0 {
		return 0
	}
	return s.stdDev() / s.mean * 100
}

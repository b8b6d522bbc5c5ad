package traffic

import "math"

// Default radius ranges in pixels. The filtered range is wider on
// purpose: filtered views carry smaller absolute counts, so widening
// the range preserves visual discrimination between stations.
const (
	DefaultUnfilteredRadiusMax = 25.0
	DefaultFilteredRadiusMin   = 3.0
	DefaultFilteredRadiusMax   = 50.0
)

// RadiusScale maps a station's total traffic to a marker radius with a
// square-root scale, so marker area tracks traffic linearly. The domain
// upper bound is the max total traffic of the current filtered station
// set, recomputed on every filter change.
type RadiusScale struct {
	domainMax float64
	rangeMin  float64
	rangeMax  float64
}

// NewRadiusScale builds a scale over [0, domainMax] -> [rangeMin,
// rangeMax].
func NewRadiusScale(domainMax int, rangeMin, rangeMax float64) RadiusScale {
	return RadiusScale{
		domainMax: float64(domainMax),
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// Radius returns the pixel radius for a total traffic count. An empty
// domain maps everything to the range minimum.
func (s RadiusScale) Radius(totalTraffic int) float64 {
	if s.domainMax <= 0 {
		return s.rangeMin
	}
	frac := math.Sqrt(float64(totalTraffic) / s.domainMax)
	if frac > 1 {
		frac = 1
	}
	return s.rangeMin + (s.rangeMax-s.rangeMin)*frac
}

// FlowLevel quantizes a departure ratio in [0,1] into three levels:
// 0 (more arrivals), 0.5 (balanced), 1 (more departures).
func FlowLevel(departureRatio float64) float64 {
	switch {
	case departureRatio < 1.0/3.0:
		return 0
	case departureRatio < 2.0/3.0:
		return 0.5
	default:
		return 1
	}
}

// maxTotalTraffic returns the largest total traffic across stats, 0 for
// an empty set.
func maxTotalTraffic(stats []StationStats) int {
	max := 0
	for _, s := range stats {
		if s.TotalTraffic > max {
			max = s.TotalTraffic
		}
	}
	return max
}

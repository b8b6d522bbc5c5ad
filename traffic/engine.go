package traffic

import (
	log "github.com/sirupsen/logrus"
)

// ScaleConfig carries the radius ranges used when deriving snapshots.
type ScaleConfig struct {
	UnfilteredRadiusMax float64
	FilteredRadiusMin   float64
	FilteredRadiusMax   float64
}

// DefaultScaleConfig returns the standard radius ranges.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		UnfilteredRadiusMax: DefaultUnfilteredRadiusMax,
		FilteredRadiusMin:   DefaultFilteredRadiusMin,
		FilteredRadiusMax:   DefaultFilteredRadiusMax,
	}
}

// Engine holds the immutable station list and the bucket tables. It is
// built once after the dataset loads; AtMinute is a pure function over
// that state, so concurrent reads and repeated filter changes are safe.
type Engine struct {
	stations []Station
	index    *TripIndex
	scales   ScaleConfig
}

// NewEngine buckets trips and wires the engine. Trips referencing
// unknown station ids stay in the tables but never reach a station's
// counts; their number is reported once here.
func NewEngine(stations []Station, trips []Trip, scales ScaleConfig) *Engine {
	known := make(map[string]struct{}, len(stations))
	for _, st := range stations {
		known[st.ShortName] = struct{}{}
	}
	unmatched := 0
	for _, t := range trips {
		if _, ok := known[t.StartStationID]; !ok {
			unmatched++
			continue
		}
		if _, ok := known[t.EndStationID]; !ok {
			unmatched++
		}
	}
	if unmatched > 0 {
		log.Debugf("engine: %d of %d trips reference unknown stations and will not be counted", unmatched, len(trips))
	}

	return &Engine{
		stations: stations,
		index:    NewTripIndex(trips),
		scales:   scales,
	}
}

// Stations returns the station list the engine was built with.
func (e *Engine) Stations() []Station { return e.stations }

// TripCount returns the number of trips bucketed at load time.
func (e *Engine) TripCount() int { return e.index.TripCount() }

// Snapshot is the result of one filter change: the selected minute, the
// derived per-station stats and the scales calibrated to this filtered
// set. It aliases nothing from previous snapshots.
type Snapshot struct {
	Minute   int
	Stations []StationStats

	radius RadiusScale
}

// AtMinute recomputes station stats for the given minute of day
// (AnyTime for unfiltered). Every call is a full recompute from the
// bucket tables.
func (e *Engine) AtMinute(minute int) *Snapshot {
	departures := e.index.Departures(minute)
	arrivals := e.index.Arrivals(minute)
	stats := Aggregate(e.stations, departures, arrivals)

	rangeMin, rangeMax := e.scales.FilteredRadiusMin, e.scales.FilteredRadiusMax
	if minute == AnyTime {
		rangeMin, rangeMax = 0, e.scales.UnfilteredRadiusMax
	}

	return &Snapshot{
		Minute:   minute,
		Stations: stats,
		radius:   NewRadiusScale(maxTotalTraffic(stats), rangeMin, rangeMax),
	}
}

// Radius maps a total traffic count to a marker radius under this
// snapshot's calibration.
func (s *Snapshot) Radius(totalTraffic int) float64 {
	return s.radius.Radius(totalTraffic)
}

// FlowLevel quantizes a departure ratio for coloring.
func (s *Snapshot) FlowLevel(departureRatio float64) float64 {
	return FlowLevel(departureRatio)
}

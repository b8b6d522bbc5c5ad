package traffic

import "time"

// MinutesPerDay is the number of one-minute buckets in a table.
const MinutesPerDay = 1440

// AnyTime is the sentinel minute meaning "no time filter".
const AnyTime = -1

// MinuteOfDay returns the wall-clock minute of day of t in t's own
// location. The dataset loader parses all timestamps into a single
// configured location, so bucketing and window queries agree.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// BucketTable maps minute of day to the trips whose relevant event
// (departure or arrival, depending on the table) falls in that minute.
type BucketTable [MinutesPerDay][]Trip

// TripIndex holds the two bucket tables built from the full trip set.
// It is built once after loading and read-only afterwards.
type TripIndex struct {
	departuresByMinute BucketTable
	arrivalsByMinute   BucketTable
	total              int
}

// NewTripIndex buckets every trip by the minute of day of its start and
// end timestamps. Each trip lands in exactly one departure bucket and
// one arrival bucket.
func NewTripIndex(trips []Trip) *TripIndex {
	idx := &TripIndex{total: len(trips)}
	for _, t := range trips {
		start := MinuteOfDay(t.StartedAt)
		end := MinuteOfDay(t.EndedAt)
		idx.departuresByMinute[start] = append(idx.departuresByMinute[start], t)
		idx.arrivalsByMinute[end] = append(idx.arrivalsByMinute[end], t)
	}
	return idx
}

// TripCount returns the number of trips the index was built from.
func (idx *TripIndex) TripCount() int { return idx.total }

// Departures returns trips whose start minute falls in the ±60-minute
// window around minute, or all trips for AnyTime.
func (idx *TripIndex) Departures(minute int) []Trip {
	return idx.departuresByMinute.InWindow(minute)
}

// Arrivals returns trips whose end minute falls in the ±60-minute
// window around minute, or all trips for AnyTime.
func (idx *TripIndex) Arrivals(minute int) []Trip {
	return idx.arrivalsByMinute.InWindow(minute)
}

package traffic

import "time"

// Trip is a single recorded ride. Trips are created once at load time
// and never mutated.
type Trip struct {
	StartStationID string
	EndStationID   string
	StartedAt      time.Time
	EndedAt        time.Time
}

// Station is a dock location. ShortName is the stable identifier trips
// reference via their station ids.
type Station struct {
	ShortName string  `json:"short_name"`
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
}

// StationStats is a station annotated with traffic counts derived under
// a time filter. A fresh value is produced on every filter change; the
// underlying Station records are never written to.
type StationStats struct {
	Station
	Arrivals     int `json:"arrivals"`
	Departures   int `json:"departures"`
	TotalTraffic int `json:"totalTraffic"`
}

// DepartureRatio returns the departure share of the station's traffic,
// or 0 when the station saw no traffic at all.
func (s StationStats) DepartureRatio() float64 {
	if s.TotalTraffic == 0 {
		return 0
	}
	return float64(s.Departures) / float64(s.TotalTraffic)
}

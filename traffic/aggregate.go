package traffic

// Aggregate counts departures by start station and arrivals by end
// station and returns one fresh StationStats per input station, in
// input order. Stations without matching trips get all-zero counts;
// trips referencing a station id not present in stations contribute
// nothing.
func Aggregate(stations []Station, departureTrips, arrivalTrips []Trip) []StationStats {
	departures := countByStation(departureTrips, func(t Trip) string { return t.StartStationID })
	arrivals := countByStation(arrivalTrips, func(t Trip) string { return t.EndStationID })

	out := make([]StationStats, 0, len(stations))
	for _, st := range stations {
		dep := departures[st.ShortName]
		arr := arrivals[st.ShortName]
		out = append(out, StationStats{
			Station:      st,
			Arrivals:     arr,
			Departures:   dep,
			TotalTraffic: arr + dep,
		})
	}
	return out
}

func countByStation(trips []Trip, key func(Trip) string) map[string]int {
	counts := make(map[string]int, len(trips))
	for _, t := range trips {
		counts[key(t)]++
	}
	return counts
}

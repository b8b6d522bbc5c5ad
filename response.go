package biketraffic

import (
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// StationMarker is one renderable map marker: station identity and
// position plus the traffic counts and visual attributes derived under
// the current time filter. Projection from lon/lat to screen space is
// the renderer's job.
type StationMarker struct {
	ShortName    string  `json:"short_name"`
	Lon          float64 `json:"lon"`
	Lat          float64 `json:"lat"`
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	TotalTraffic int     `json:"totalTraffic"`
	Radius       float64 `json:"radius"`
	FlowLevel    float64 `json:"flowLevel"`
}

// StationsResponse is the payload served for one filter state.
type StationsResponse struct {
	Minute   int             `json:"minute"`
	Stations []StationMarker `json:"stations"`
}

// BuildStationsResponse flattens a snapshot into marker records.
func BuildStationsResponse(snap *traffic.Snapshot) *StationsResponse {
	markers := make([]StationMarker, 0, len(snap.Stations))
	for _, st := range snap.Stations {
		markers = append(markers, StationMarker{
			ShortName:    st.ShortName,
			Lon:          st.Lon,
			Lat:          st.Lat,
			Arrivals:     st.Arrivals,
			Departures:   st.Departures,
			TotalTraffic: st.TotalTraffic,
			Radius:       snap.Radius(st.TotalTraffic),
			FlowLevel:    snap.FlowLevel(st.DepartureRatio()),
		})
	}
	return &StationsResponse{Minute: snap.Minute, Stations: markers}
}

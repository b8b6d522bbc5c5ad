package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// tripTimeLayouts are tried in order when parsing trip timestamps.
var tripTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// open returns a reader for src, which is either a local path or an
// http(s) URL.
func open(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := httpClient.Get(src)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
		}
		return resp.Body, nil
	}
	return os.Open(src)
}

// headerIndex builds a case-insensitive column lookup accepting the
// aliases different publishers use for the same field.
func headerIndex(head []string) func(cols ...string) int {
	return func(cols ...string) int {
		for _, col := range cols {
			for i, h := range head {
				if strings.EqualFold(strings.TrimSpace(h), col) {
					return i
				}
			}
		}
		return -1
	}
}

// LoadStations reads the station CSV at src. Required columns:
// short_name (alias: number), lon (aliases: long, longitude), lat
// (alias: latitude). Rows with unparsable coordinates are skipped and
// logged.
func LoadStations(src string) ([]traffic.Station, error) {
	r, err := open(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rows, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("station file is empty")
	}
	idx := headerIndex(rows[0])
	name := idx("short_name", "number")
	lon := idx("lon", "long", "longitude")
	lat := idx("lat", "latitude")
	if name < 0 || lon < 0 || lat < 0 {
		return nil, fmt.Errorf("station file %s: missing short_name/lon/lat columns", src)
	}

	stations := make([]traffic.Station, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if name >= len(row) || lon >= len(row) || lat >= len(row) {
			skipped++
			continue
		}
		lonVal, lonErr := strconv.ParseFloat(strings.TrimSpace(row[lon]), 64)
		latVal, latErr := strconv.ParseFloat(strings.TrimSpace(row[lat]), 64)
		shortName := strings.TrimSpace(row[name])
		if shortName == "" || lonErr != nil || latErr != nil {
			skipped++
			continue
		}
		stations = append(stations, traffic.Station{
			ShortName: shortName,
			Lon:       lonVal,
			Lat:       latVal,
		})
	}
	if skipped > 0 {
		log.Warnf("stations: skipped %d malformed rows in %s", skipped, src)
	}
	log.Infof("stations: loaded %d from %s", len(stations), src)
	return stations, nil
}

// LoadTrips reads the trip CSV at src, parsing timestamps in loc.
// Required columns: start_station_id (alias: start_station_code),
// end_station_id (alias: end_station_code), started_at (alias:
// start_date), ended_at (alias: end_date). Rows whose timestamps fail
// every known layout are skipped and counted.
func LoadTrips(src string, loc *time.Location) ([]traffic.Trip, error) {
	if loc == nil {
		loc = time.UTC
	}
	r, err := open(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	head, err := csvr.Read()
	if err != nil {
		return nil, err
	}
	idx := headerIndex(head)
	start := idx("start_station_id", "start_station_code")
	end := idx("end_station_id", "end_station_code")
	startedAt := idx("started_at", "start_date")
	endedAt := idx("ended_at", "end_date")
	if start < 0 || end < 0 || startedAt < 0 || endedAt < 0 {
		return nil, fmt.Errorf("trip file %s: missing station id or timestamp columns", src)
	}

	trips := make([]traffic.Trip, 0)
	skipped := 0
	for {
		row, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if start >= len(row) || end >= len(row) || startedAt >= len(row) || endedAt >= len(row) {
			skipped++
			continue
		}
		startTime, serr := parseTripTime(row[startedAt], loc)
		endTime, eerr := parseTripTime(row[endedAt], loc)
		if serr != nil || eerr != nil {
			skipped++
			continue
		}
		trips = append(trips, traffic.Trip{
			StartStationID: strings.TrimSpace(row[start]),
			EndStationID:   strings.TrimSpace(row[end]),
			StartedAt:      startTime,
			EndedAt:        endTime,
		})
	}
	if skipped > 0 {
		log.Warnf("trips: skipped %d malformed rows in %s", skipped, src)
	}
	log.Infof("trips: loaded %d from %s", len(trips), src)
	return trips, nil
}

func parseTripTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range tripTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

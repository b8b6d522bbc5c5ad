package biketraffic

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseMinuteParam validates the minute query parameter. Absent or "-1"
// means unfiltered; otherwise the value must be a minute of day in
// [0,1439].
func parseMinuteParam(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return traffic.AnyTime, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &QueryError{Msg: "minute must be an integer, got: " + s}
	}
	if v == traffic.AnyTime {
		return v, nil
	}
	if v < 0 || v >= traffic.MinutesPerDay {
		return 0, &QueryError{Msg: "minute must be -1 or in [0,1439], got: " + s}
	}
	return v, nil
}

func buildErrorPayload(msg string) []byte {
	type errBody struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e errBody
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}

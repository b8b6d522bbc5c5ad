package biketraffic

import (
	"fmt"
	"net/http"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// App holds the per-process state the HTTP handlers serve from: the
// engine built at startup and the response cache over it.
type App struct {
	engine *traffic.Engine
	cache  *SnapshotCache
}

// NewApp wires an App around an engine.
func NewApp(engine *traffic.Engine) *App {
	return &App{engine: engine, cache: NewSnapshotCache(engine)}
}

// Engine exposes the underlying traffic engine.
func (a *App) Engine() *traffic.Engine { return a.engine }

// StationsJSON returns the serialized stations payload for a minute of
// day (AnyTime for unfiltered), going through the response cache.
func (a *App) StationsJSON(minute int) ([]byte, error) {
	if minute != traffic.AnyTime && (minute < 0 || minute >= traffic.MinutesPerDay) {
		return nil, &QueryError{Msg: fmt.Sprintf("minute must be -1 or in [0,1439], got: %d", minute)}
	}
	return a.cache.GetStationsResponse(minute)
}

func (a *App) handleStationsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	minute, err := parseMinuteParam(r.URL.Query().Get("minute"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	buf, err := a.cache.GetStationsResponse(minute)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

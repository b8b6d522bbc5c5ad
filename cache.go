package biketraffic

import (
	"encoding/json"

	"github.com/bluele/gcache"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// SnapshotCache memoizes rendered station responses per minute. The
// dataset is static for the process lifetime, and a dragged time slider
// re-requests the same minutes, so every distinct filter value is
// computed at most once.
type SnapshotCache struct {
	engine    *traffic.Engine
	responses gcache.Cache
}

// NewSnapshotCache wires a cache over the engine. Capacity covers every
// possible minute plus the unfiltered sentinel.
func NewSnapshotCache(engine *traffic.Engine) *SnapshotCache {
	return &SnapshotCache{
		engine:    engine,
		responses: gcache.New(traffic.MinutesPerDay + 1).LRU().Build(),
	}
}

// GetStationsResponse returns the serialized stations payload for the
// given minute, computing and caching it on first request.
func (c *SnapshotCache) GetStationsResponse(minute int) ([]byte, error) {
	if v, err := c.responses.Get(minute); err == nil {
		return v.([]byte), nil
	}
	snap := c.engine.AtMinute(minute)
	buf, err := json.Marshal(BuildStationsResponse(snap))
	if err != nil {
		return nil, err
	}
	_ = c.responses.Set(minute, buf)
	return buf, nil
}

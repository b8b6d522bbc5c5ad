package biketraffic

import (
	"bytes"
	"testing"
)

func TestSnapshotCacheRepeatedMinutes(t *testing.T) {
	cache := testApp().cache

	first, err := cache.GetStationsResponse(485)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := cache.GetStationsResponse(485)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated minute returned different payloads")
	}
}

func TestSnapshotCacheDistinctMinutes(t *testing.T) {
	cache := testApp().cache

	busy, err := cache.GetStationsResponse(485)
	if err != nil {
		t.Fatalf("minute 485: %v", err)
	}
	quiet, err := cache.GetStationsResponse(600)
	if err != nil {
		t.Fatalf("minute 600: %v", err)
	}
	if bytes.Equal(busy, quiet) {
		t.Error("distinct filter states returned identical payloads")
	}
}

func TestSnapshotCacheSentinel(t *testing.T) {
	cache := testApp().cache
	buf, err := cache.GetStationsResponse(-1)
	if err != nil {
		t.Fatalf("sentinel request: %v", err)
	}
	if len(buf) == 0 {
		t.Error("empty payload for unfiltered request")
	}
}

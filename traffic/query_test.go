package traffic

import "testing"

func TestInWindowUnfilteredEquivalence(t *testing.T) {
	trips := []Trip{
		tripAt(0, 5),
		tripAt(485, 500),
		tripAt(900, 930),
		tripAt(1439, 2),
	}
	idx := NewTripIndex(trips)

	got := idx.Departures(AnyTime)
	if len(got) != len(trips) {
		t.Fatalf("unfiltered query returned %d trips, want %d", len(got), len(trips))
	}
	// multiset equality: count by start minute
	want := map[int]int{}
	for _, tr := range trips {
		want[MinuteOfDay(tr.StartedAt)]++
	}
	for _, tr := range got {
		want[MinuteOfDay(tr.StartedAt)]--
	}
	for m, n := range want {
		if n != 0 {
			t.Errorf("minute %d: count off by %d", m, n)
		}
	}
}

func TestInWindowNonWrapping(t *testing.T) {
	// window for minute 500 is [440,560)
	tests := []struct {
		name     string
		startMin int
		included bool
	}{
		{name: "window start", startMin: 440, included: true},
		{name: "just before window", startMin: 439, included: false},
		{name: "center", startMin: 500, included: true},
		{name: "last included minute", startMin: 559, included: true},
		{name: "window end is exclusive", startMin: 560, included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewTripIndex([]Trip{tripAt(tt.startMin, tt.startMin)})
			got := idx.Departures(500)
			if included := len(got) == 1; included != tt.included {
				t.Errorf("trip at minute %d: included=%v, want %v", tt.startMin, included, tt.included)
			}
		})
	}
}

func TestInWindowWrapping(t *testing.T) {
	// window for minute 30 is [1410,1440) then [0,90)
	trips := []Trip{
		tripAt(1430, 1430),
		tripAt(50, 50),
		tripAt(200, 200),
	}
	idx := NewTripIndex(trips)

	got := idx.Departures(30)
	if len(got) != 2 {
		t.Fatalf("wrapping query returned %d trips, want 2", len(got))
	}
	for _, tr := range got {
		if m := MinuteOfDay(tr.StartedAt); m != 1430 && m != 50 {
			t.Errorf("unexpected trip at minute %d in window", m)
		}
	}
}

func TestInWindowOrder(t *testing.T) {
	// buckets in ascending minute order, wrapping segment first
	trips := []Trip{
		tripAt(50, 50),
		tripAt(1430, 1430),
		tripAt(10, 10),
	}
	idx := NewTripIndex(trips)

	got := idx.Departures(30)
	want := []int{1430, 10, 50}
	if len(got) != len(want) {
		t.Fatalf("got %d trips, want %d", len(got), len(want))
	}
	for i, tr := range got {
		if m := MinuteOfDay(tr.StartedAt); m != want[i] {
			t.Errorf("position %d: trip at minute %d, want %d", i, m, want[i])
		}
	}
}

func TestInWindowArrivalsUseEndMinute(t *testing.T) {
	idx := NewTripIndex([]Trip{tripAt(100, 500)})
	if got := idx.Arrivals(500); len(got) != 1 {
		t.Errorf("arrival window at 500 returned %d trips, want 1", len(got))
	}
	if got := idx.Arrivals(100); len(got) != 0 {
		t.Errorf("arrival window at 100 returned %d trips, want 0", len(got))
	}
}

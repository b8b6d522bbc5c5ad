package traffic

// windowHalfWidth is the number of minutes selected on each side of the
// target minute.
const windowHalfWidth = 60

// InWindow returns the trips bucketed in the half-open window
// [minute-60, minute+60), walking circularly past midnight when the
// window wraps. For AnyTime it returns every bucketed trip. Buckets are
// concatenated in ascending minute order; trips within a bucket keep
// insertion order.
func (bt *BucketTable) InWindow(minute int) []Trip {
	if minute == AnyTime {
		return bt.all()
	}
	minMinute := (minute - windowHalfWidth + MinutesPerDay) % MinutesPerDay
	maxMinute := (minute + windowHalfWidth) % MinutesPerDay

	if minMinute <= maxMinute {
		return bt.concat(minMinute, maxMinute)
	}
	// window wraps past midnight
	out := bt.concat(minMinute, MinutesPerDay)
	return append(out, bt.concat(0, maxMinute)...)
}

func (bt *BucketTable) all() []Trip {
	out := make([]Trip, 0)
	for m := 0; m < MinutesPerDay; m++ {
		out = append(out, bt[m]...)
	}
	return out
}

func (bt *BucketTable) concat(from, to int) []Trip {
	out := make([]Trip, 0)
	for m := from; m < to; m++ {
		out = append(out, bt[m]...)
	}
	return out
}

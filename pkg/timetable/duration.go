package timetable

// The schedule page never states how long a lesson lasts. The only hint
// is the cell's colspan: the table is laid out on a 15-minute grid, so
// the number of columns a cell occupies roughly encodes its duration.
// DefaultSpanDurations covers the spans commonly seen on the page; any
// other span goes through the estimator below, which can be off by up
// to 15 minutes.
var DefaultSpanDurations = map[int]int{
	4:  60,
	5:  60,
	6:  75,
	7:  90,
	8:  90,
	9:  120,
	10: 120,
	14: 180,
	16: 195,
	19: 240,
	20: 240,
	22: 270,
	39: 240,
	49: 360,
}

// DurationResolver turns a cell's colspan into a lesson duration. It
// never fails: spans absent from Table get an estimated duration.
type DurationResolver struct {
	Table map[int]int // colspan -> duration in minutes
}

// Duration returns the lesson duration in minutes for the given colspan
// and start time. The start time only matters for spans missing from
// the table, where the estimator needs it to locate hour boundaries.
func (r DurationResolver) Duration(span int, start Clock) int {
	if duration, ok := r.Table[span]; ok {
		return duration
	}
	return estimateDuration(span, start)
}

// End returns the lesson end time for the given colspan and start time.
func (r DurationResolver) End(span int, start Clock) Clock {
	return start.Add(r.Duration(span, start))
}

// estimateDuration guesses a duration for a colspan absent from the
// table. Each column nominally covers 15 minutes, but some columns are
// grid separators rather than class time: walking the span from its
// upper bound downward, one column is discounted every time the running
// clock lands exactly on an hour boundary. Best effort only.
func estimateDuration(span int, start Clock) int {
	const unit = 15

	padding := 0
	elapsed := start.Minutes()

	for i := span - 1; i > 1; i-- {
		elapsed += unit
		if elapsed%60 == 0 {
			padding--
		}
	}

	return unit * (span + padding)
}

package timetable

import "testing"

func TestDurationKnownSpans(t *testing.T) {
	resolver := DurationResolver{Table: DefaultSpanDurations}
	start := Clock{Hour: 8, Minute: 0}

	// Known spans must resolve exactly to the table entry, never to an
	// estimate.
	for span, want := range DefaultSpanDurations {
		got := resolver.Duration(span, start)
		if got != want {
			t.Errorf("span %d: expected %d minutes from the table, got %d", span, want, got)
		}
	}
}

func TestDurationUnknownSpan(t *testing.T) {
	resolver := DurationResolver{Table: DefaultSpanDurations}

	// Span 11 is not in the table: starting at 08h00, the estimator
	// crosses two hour boundaries (09h00 and 10h00) and discounts one
	// 15-minute column for each, for 9 * 15 = 135 minutes.
	got := resolver.Duration(11, Clock{Hour: 8, Minute: 0})
	if got != 135 {
		t.Errorf("expected estimated duration of 135 minutes for span 11 at 08h00, got %d", got)
	}

	end := resolver.End(11, Clock{Hour: 8, Minute: 0})
	if end != (Clock{Hour: 10, Minute: 15}) {
		t.Errorf("expected end time 10h15, got %s", end)
	}
}

func TestDurationEstimateProperties(t *testing.T) {
	resolver := DurationResolver{Table: DefaultSpanDurations}

	starts := []Clock{
		{Hour: 8, Minute: 0},
		{Hour: 8, Minute: 45},
		{Hour: 10, Minute: 30},
		{Hour: 14, Minute: 15},
		{Hour: 17, Minute: 0},
	}

	for span := 1; span <= 60; span++ {
		for _, start := range starts {
			duration := resolver.Duration(span, start)

			if duration <= 0 {
				t.Fatalf("span %d at %s: duration must be positive, got %d", span, start, duration)
			}
			if duration%15 != 0 {
				t.Errorf("span %d at %s: duration %d is not a multiple of 15", span, start, duration)
			}
		}
	}
}

func TestClockAddWrapsAroundMidnight(t *testing.T) {
	end := Clock{Hour: 23, Minute: 30}.Add(60)
	if end != (Clock{Hour: 0, Minute: 30}) {
		t.Errorf("expected 00h30 after wrapping past midnight, got %s", end)
	}

	if got := (Clock{Hour: 8, Minute: 0}).Add(75); got != (Clock{Hour: 9, Minute: 15}) {
		t.Errorf("expected 09h15, got %s", got)
	}
}

func TestClockString(t *testing.T) {
	if got := (Clock{Hour: 8, Minute: 5}).String(); got != "08h05" {
		t.Errorf("expected 08h05, got %s", got)
	}
}

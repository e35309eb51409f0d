package timetable

import (
	"fmt"
	"time"
)

// DateNotFoundError reports that the requested date does not appear in
// the schedule document, which is distinct from a day that is present
// but has no lessons.
type DateNotFoundError struct {
	Date time.Time
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf("date %s not found in the timetable", e.Date.Format("02/01/2006"))
}

// CellError reports a schedule cell whose contents do not follow the
// expected layout. Text carries the raw cell text so the failure can be
// diagnosed against the source page.
type CellError struct {
	Text string
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("malformed schedule cell %q: %v", e.Text, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

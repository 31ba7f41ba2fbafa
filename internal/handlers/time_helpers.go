package handlers

import (
	"time"

	"github.com/randevuapp/booking-api/internal/timezone"
)

// parseDateParam accepts the YYYY-MM-DD form used by the booking UI
// and falls back to RFC3339 for clients sending full timestamps.
func parseDateParam(s string) (time.Time, error) {
	if t, err := timezone.ParseDate(s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

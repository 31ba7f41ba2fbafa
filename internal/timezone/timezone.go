package timezone

import "time"

// Tüm gün sınırları ve rapor aralıkları bu saat diliminde hesaplanır.
const DefaultTimezone = "Europe/Istanbul"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interprets a YYYY-MM-DD string as midnight local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// FormatDate renders a timestamp the way the SMS template expects,
// dd.mm.yyyy in local time.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format("02.01.2006")
}

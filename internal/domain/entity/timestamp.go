package entity

import "time"

// TimestampLayout ISO-8601 UTC con milisegundos, ordenable como texto.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp serializa t en UTC con TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp acepta TimestampLayout y, por compatibilidad, cualquier RFC3339.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}

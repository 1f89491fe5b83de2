package telegram

import (
	"fmt"
	"strings"
	"time"
)

// ParseEventDateTime parses date (DD/MM/YYYY) and time (HH:MM) in the local
// timezone. It only checks the format; whether the moment is in the past is a
// business rule and stays with the event service.
func ParseEventDateTime(dateStr, timeStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" || timeStr == "" {
		return time.Time{}, fmt.Errorf("date and time required (DD/MM/YYYY and HH:MM)")
	}
	tDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date (expected DD/MM/YYYY, e.g. 25/12/2026)")
	}
	tTime, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time (expected HH:MM, e.g. 19:00)")
	}
	return time.Date(tDate.Year(), tDate.Month(), tDate.Day(),
		tTime.Hour(), tTime.Minute(), 0, 0, time.Local), nil
}

func FormatEventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 at 15:04")
}

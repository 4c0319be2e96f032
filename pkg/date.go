package pkg

import (
	"fmt"
	"time"
)

// en-GB short month names; September is "Sept", not "Sep"
var shortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// FormatDateShort formats t as DD.MM.YY.
func FormatDateShort(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%02d", t.Day(), int(t.Month()), t.Year()%100)
}

// FormatDateLong formats t as D Mon YYYY, e.g. "9 Feb 2026".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

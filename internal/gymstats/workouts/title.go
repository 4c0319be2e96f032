package workouts

import (
	"strings"
	"time"
)

var slovakWeekdays = [...]string{
	time.Sunday:    "Nedeľa",
	time.Monday:    "Pondelok",
	time.Tuesday:   "Utorok",
	time.Wednesday: "Streda",
	time.Thursday:  "Štvrtok",
	time.Friday:    "Piatok",
	time.Saturday:  "Sobota",
}

// SessionTitle builds a title like "Chest + Triceps | Pondelok".
func SessionTitle(bodyPartNames []string, date time.Time) string {
	return strings.Join(bodyPartNames, " + ") + " | " + slovakWeekdays[date.Weekday()]
}

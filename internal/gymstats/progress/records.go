package progress

import (
	"time"

	"github.com/2beens/gymlog/internal/gymstats/exercises"
	"github.com/2beens/gymlog/internal/gymstats/workouts"
)

// PersonalRecord is the best-ever set of a user for one exercise.
type PersonalRecord struct {
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	BodyPartName string    `json:"bodyPartName"`
	MaxWeight    float64   `json:"maxWeight"`
	MaxReps      int       `json:"maxReps"`
	AchievedDate time.Time `json:"achievedDate"`
}

type bestSet struct {
	weight float64
	reps   int
	date   time.Time
}

// beatenBy reports whether a set performed on date replaces the current best:
// heavier wins, then more reps, then the later date. Exact ties keep the current one.
func (b bestSet) beatenBy(s workouts.Set, date time.Time) bool {
	switch {
	case s.Weight > b.weight:
		return true
	case s.Weight < b.weight:
		return false
	case s.Reps > b.reps:
		return true
	case s.Reps < b.reps:
		return false
	default:
		return date.After(b.date)
	}
}

// ComputeAllRecords derives the personal records of userID from all of its logs.
// Records follow the catalog order; exercises without a weighted set are left out,
// so are logs of exercises missing from the catalog.
func ComputeAllRecords(userID string, logs []workouts.Log, catalog []exercises.Exercise) []PersonalRecord {
	best := make(map[string]bestSet)
	for _, l := range logs {
		if l.UserID != userID {
			continue
		}

		var logDate time.Time
		if l.Date != nil {
			logDate = *l.Date
		}

		for _, s := range l.Sets {
			current, ok := best[l.ExerciseID]
			if !ok || current.beatenBy(s, logDate) {
				best[l.ExerciseID] = bestSet{
					weight: s.Weight,
					reps:   s.Reps,
					date:   logDate,
				}
			}
		}
	}

	records := []PersonalRecord{}
	for _, exercise := range catalog {
		record, ok := best[exercise.ID]
		if !ok || record.weight <= 0 {
			continue
		}
		records = append(records, PersonalRecord{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			BodyPartName: exercise.BodyPartName,
			MaxWeight:    record.weight,
			MaxReps:      record.reps,
			AchievedDate: record.date,
		})
	}

	return records
}

// FindBestSet returns the heaviest set of the exercise, more reps breaking ties.
// Unlike ComputeAllRecords, the date is never a tiebreaker. It returns the zero set
// when nothing qualifies.
func FindBestSet(userID, exerciseID string, logs []workouts.Log) workouts.Set {
	var best workouts.Set
	for _, l := range logs {
		if l.UserID != userID || l.ExerciseID != exerciseID {
			continue
		}
		for _, s := range l.Sets {
			if s.Weight > best.Weight || (s.Weight == best.Weight && s.Reps > best.Reps) {
				best = s
			}
		}
	}
	return best
}

package workouts

import (
	"math"
	"strconv"
)

func MaxWeight(sets []Set) float64 {
	if len(sets) == 0 {
		return 0
	}
	maxWeight := sets[0].Weight
	for _, s := range sets[1:] {
		maxWeight = max(maxWeight, s.Weight)
	}
	return maxWeight
}

// Volume is the sum of reps × weight over all sets.
func Volume(sets []Set) float64 {
	var volume float64
	for _, s := range sets {
		volume += float64(s.Reps) * s.Weight
	}
	return volume
}

// BestSet returns the set with the highest weight. On equal weights the first one wins.
func BestSet(sets []Set) (Set, bool) {
	if len(sets) == 0 {
		return Set{}, false
	}
	best := sets[0]
	for _, s := range sets[1:] {
		if s.Weight > best.Weight {
			best = s
		}
	}
	return best, true
}

// FormatSet renders a set as "reps×weight", e.g. "12×52.5".
func FormatSet(s Set) string {
	return strconv.Itoa(s.Reps) + "×" + strconv.FormatFloat(s.Weight, 'f', -1, 64)
}

func FormatBestSet(sets []Set) string {
	best, ok := BestSet(sets)
	if !ok {
		return "—"
	}
	return FormatSet(best)
}

func FormatVolume(sets []Set) string {
	return strconv.FormatFloat(math.Round(Volume(sets)), 'f', 0, 64)
}

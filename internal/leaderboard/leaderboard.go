// Package leaderboard derives hospital and manufacturer rankings from either
// the reference decarbonisation dataset or logged emission records.
//
// Both builders are pure: they read a snapshot, produce ordered entries, and
// hold no state, so recomputing on the same snapshot yields identical output.
package leaderboard

import (
	"math"
	"sort"
)

// Icon is the medal shown next to every leaderboard entry.
const Icon = "🏅"

// Entry is one leaderboard row. All figures are derived per request and never
// persisted.
type Entry struct {
	Name         string
	EmissionsKg  float64
	ReductionPct float64
	SubsidyPct   float64
	Icon         string
}

// Subsidy derives the capped incentive band from a reduction percentage:
// round to one decimal, then clamp to [0, 40]. The same band applies to both
// builders and both groups as a fixed business rule.
func Subsidy(reductionPct float64) float64 {
	return clamp(round1(reductionPct), 0, 40)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// costReduction computes the percentage saved by switching from the current
// annual cost to the alternative. A non-positive current cost yields zero
// rather than a division error.
func costReduction(current, alternative float64) float64 {
	if current <= 0 {
		return 0
	}
	return (current - alternative) / current * 100
}

// sortByEmissions orders entries ascending by emissions, lowest emitter
// first. The sort is stable so equal emitters keep their build order.
func sortByEmissions(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EmissionsKg < entries[j].EmissionsKg
	})
}

package leaderboard

import (
	"github.com/louisbranch/carbonledger/internal/account"
	"github.com/louisbranch/carbonledger/internal/emissions"
)

// FromEmissions derives the hospital and manufacturer leaderboards from the
// registered users and their logged emission records.
//
// Users whose normalized total is not positive are excluded entirely. Within
// each group, reduction is relative to the group's worst emitter in this
// snapshot: the maximum emitter scores 0% and the lowest approaches 100%.
// That baseline moves as the population changes; the relative-only semantics
// are intentional.
func FromEmissions(users []account.User, records []emissions.Record) (hospitals, manufacturers []Entry) {
	for _, u := range users {
		totalKg := emissions.TotalsForUser(records, u.ID).Sum()
		if totalKg <= 0 {
			continue
		}
		entry := Entry{
			Name:        u.DisplayName(),
			EmissionsKg: totalKg,
			Icon:        Icon,
		}
		if account.LeaderboardGroup(u.UserType) == account.UserTypeManufacturer {
			manufacturers = append(manufacturers, entry)
		} else {
			hospitals = append(hospitals, entry)
		}
	}
	finalizeGroup(hospitals)
	finalizeGroup(manufacturers)
	return hospitals, manufacturers
}

// finalizeGroup fills in relative reduction and subsidy, then orders the
// group lowest emitter first. A group whose maximum is not positive keeps
// zero reduction and subsidy.
func finalizeGroup(entries []Entry) {
	if len(entries) == 0 {
		return
	}
	maxKg := entries[0].EmissionsKg
	for _, e := range entries[1:] {
		if e.EmissionsKg > maxKg {
			maxKg = e.EmissionsKg
		}
	}
	if maxKg > 0 {
		for i := range entries {
			reduction := (maxKg - entries[i].EmissionsKg) / maxKg * 100
			entries[i].ReductionPct = reduction
			entries[i].SubsidyPct = Subsidy(reduction)
		}
	}
	sortByEmissions(entries)
}

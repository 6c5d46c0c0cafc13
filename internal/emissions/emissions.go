// Package emissions provides the greenhouse-gas domain model: tracked gas
// types, logged emission records, and per-user totals normalized to kilograms.
package emissions

import "time"

// Gas identifies a tracked greenhouse gas.
type Gas string

const (
	// GasCO2 is carbon dioxide.
	GasCO2 Gas = "co2"
	// GasNO2 is nitrogen dioxide.
	GasNO2 Gas = "no2"
	// GasCH4 is methane.
	GasCH4 Gas = "ch4"
)

// TrackedGases returns the gases the aggregator accumulates, in display order.
func TrackedGases() []Gas {
	return []Gas{GasCO2, GasNO2, GasCH4}
}

// Record is a single logged emission. Records are append-only: once written
// they are never updated or deleted.
type Record struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// Totals maps each tracked gas to its cumulative kilograms for one user.
// Totals are derived on demand and never persisted.
type Totals map[Gas]float64

// NewTotals returns totals with every tracked gas initialized to zero.
func NewTotals() Totals {
	totals := make(Totals, len(TrackedGases()))
	for _, gas := range TrackedGases() {
		totals[gas] = 0
	}
	return totals
}

// Sum returns the combined kilograms across all tracked gases.
func (t Totals) Sum() float64 {
	var sum float64
	for _, gas := range TrackedGases() {
		sum += t[gas]
	}
	return sum
}

// TotalsForUser accumulates a user's records into per-gas kilogram totals.
//
// Records belonging to other users contribute nothing. Records whose type is
// not a tracked gas are silently dropped; that is the contract, not an error.
func TotalsForUser(records []Record, userID int64) Totals {
	totals := NewTotals()
	for _, record := range records {
		if record.UserID != userID {
			continue
		}
		gas := Gas(record.Type)
		if _, tracked := totals[gas]; !tracked {
			continue
		}
		totals[gas] += NormalizeToKilograms(record.Amount, record.Unit)
	}
	return totals
}

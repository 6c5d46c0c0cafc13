package leaderboard

import "github.com/louisbranch/carbonledger/internal/market"

// defaultHospitalName labels the hospital aggregate when the dataset carries
// no profile name.
const defaultHospitalName = "Unknown Hospital"

// FromMarketData derives the hospital and manufacturer leaderboards from the
// reference decarbonisation dataset. A nil dataset produces empty boards.
//
// The hospital board holds exactly one entry aggregating every item. The
// manufacturer board holds one entry per supplier, accumulating the full
// figures of every item that supplier appears on. Reduction is cost-based:
// (current − alternative) / current × 100, zero when current is not positive.
func FromMarketData(data *market.Data) (hospitals, manufacturers []Entry) {
	if data == nil {
		return nil, nil
	}
	items := data.Items()

	var tonnes, costCurrent, costAlternative float64
	for _, item := range items {
		tonnes += item.Carbon.AnnualCO2eTonnes
		costCurrent += item.Costing.AnnualCostRupees
		costAlternative += item.Costing.AnnualAlternativeCostRupees
	}
	name := data.HospitalProfile.Name
	if name == "" {
		name = defaultHospitalName
	}
	reduction := costReduction(costCurrent, costAlternative)
	hospitals = []Entry{{
		Name:         name,
		EmissionsKg:  tonnes * 1000,
		ReductionPct: reduction,
		SubsidyPct:   Subsidy(reduction),
		Icon:         Icon,
	}}

	type bucket struct {
		tonnes          float64
		costCurrent     float64
		costAlternative float64
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, item := range items {
		for _, supplier := range item.Sourcing.Suppliers {
			b := buckets[supplier]
			if b == nil {
				b = &bucket{}
				buckets[supplier] = b
				order = append(order, supplier)
			}
			b.tonnes += item.Carbon.AnnualCO2eTonnes
			b.costCurrent += item.Costing.AnnualCostRupees
			b.costAlternative += item.Costing.AnnualAlternativeCostRupees
		}
	}
	for _, supplier := range order {
		b := buckets[supplier]
		reduction := costReduction(b.costCurrent, b.costAlternative)
		manufacturers = append(manufacturers, Entry{
			Name:         supplier,
			EmissionsKg:  b.tonnes * 1000,
			ReductionPct: reduction,
			SubsidyPct:   Subsidy(reduction),
			Icon:         Icon,
		})
	}

	sortByEmissions(hospitals)
	sortByEmissions(manufacturers)
	return hospitals, manufacturers
}

// Package market models the read-only reference decarbonisation dataset: a
// hospital profile plus a levers → sub-levers → items hierarchy of
// decarbonisation opportunities.
//
// Defaulting policy: every field is optional in the source JSON. Missing or
// absent fields decode to their zero values (0.0 for figures, "" for names,
// empty maps and slices for collections), so downstream aggregation never has
// to guard against absent structure.
package market

import "sort"

// Data is the root of the reference dataset.
type Data struct {
	HospitalProfile Profile          `json:"hospital_profile"`
	Levers          map[string]Lever `json:"levers"`
}

// Profile describes the hospital the dataset was compiled for.
type Profile struct {
	Name string `json:"name"`
}

// Lever is a top-level decarbonisation category.
type Lever struct {
	SubLevers map[string]SubLever `json:"sub_levers"`
}

// SubLever groups items under a lever.
type SubLever struct {
	Items map[string]Item `json:"items"`
}

// Item is a single decarbonisation opportunity with its carbon, cost, and
// sourcing figures.
type Item struct {
	Carbon   Carbon   `json:"carbon"`
	Costing  Costing  `json:"costing"`
	Sourcing Sourcing `json:"sourcing"`
}

// Carbon holds annual emission figures for an item.
type Carbon struct {
	AnnualCO2eTonnes float64 `json:"annual_co2e_tonnes"`
}

// Costing holds annual cost figures for an item, in rupees.
type Costing struct {
	AnnualCostRupees            float64 `json:"annual_cost_rupees"`
	AnnualAlternativeCostRupees float64 `json:"annual_alternative_cost_rupees"`
}

// Sourcing lists the suppliers that provide an item.
type Sourcing struct {
	Suppliers []string `json:"suppliers"`
}

// Items flattens every item nested under levers → sub-levers into a single
// slice. Keys are visited in sorted order so the result is stable across
// calls on the same dataset.
func (d *Data) Items() []Item {
	if d == nil {
		return nil
	}
	var items []Item
	for _, leverID := range sortedKeys(d.Levers) {
		lever := d.Levers[leverID]
		for _, subID := range sortedKeys(lever.SubLevers) {
			sub := lever.SubLevers[subID]
			for _, itemID := range sortedKeys(sub.Items) {
				items = append(items, sub.Items[itemID])
			}
		}
	}
	return items
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

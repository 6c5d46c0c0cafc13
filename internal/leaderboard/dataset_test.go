package leaderboard

import (
	"reflect"
	"testing"

	"github.com/louisbranch/carbonledger/internal/market"
)

func datasetFixture() *market.Data {
	return &market.Data{
		HospitalProfile: market.Profile{Name: "General Hospital"},
		Levers: map[string]market.Lever{
			"energy": {SubLevers: map[string]market.SubLever{
				"heating": {Items: map[string]market.Item{
					"boiler": {
						Carbon:   market.Carbon{AnnualCO2eTonnes: 2},
						Costing:  market.Costing{AnnualCostRupees: 1000, AnnualAlternativeCostRupees: 800},
						Sourcing: market.Sourcing{Suppliers: []string{"Acme", "Bolt"}},
					},
				}},
			}},
			"supplies": {SubLevers: map[string]market.SubLever{
				"gloves": {Items: map[string]market.Item{
					"nitrile": {
						Carbon:   market.Carbon{AnnualCO2eTonnes: 1},
						Costing:  market.Costing{AnnualCostRupees: 1000, AnnualAlternativeCostRupees: 800},
						Sourcing: market.Sourcing{Suppliers: []string{"Acme"}},
					},
				}},
			}},
		},
	}
}

func TestFromMarketDataHospitalAggregate(t *testing.T) {
	hospitals, _ := FromMarketData(datasetFixture())
	if len(hospitals) != 1 {
		t.Fatalf("expected exactly one hospital entry, got %d", len(hospitals))
	}
	h := hospitals[0]
	if h.Name != "General Hospital" {
		t.Fatalf("name = %q, want %q", h.Name, "General Hospital")
	}
	if h.EmissionsKg != 3000 {
		t.Fatalf("emissions = %v kg, want 3000 (3 tonnes)", h.EmissionsKg)
	}
	if h.ReductionPct != 20 {
		t.Fatalf("reduction = %v, want 20", h.ReductionPct)
	}
	if h.SubsidyPct != 20 {
		t.Fatalf("subsidy = %v, want 20", h.SubsidyPct)
	}
	if h.Icon != Icon {
		t.Fatalf("icon = %q, want %q", h.Icon, Icon)
	}
}

func TestFromMarketDataManufacturerAggregates(t *testing.T) {
	_, manufacturers := FromMarketData(datasetFixture())
	if len(manufacturers) != 2 {
		t.Fatalf("expected 2 manufacturers, got %d", len(manufacturers))
	}
	byName := map[string]Entry{}
	for _, m := range manufacturers {
		byName[m.Name] = m
	}
	acme, ok := byName["Acme"]
	if !ok {
		t.Fatal("missing Acme entry")
	}
	// Acme supplies both items, so it accumulates both items' full figures.
	if acme.EmissionsKg != 3000 {
		t.Fatalf("Acme emissions = %v, want 3000", acme.EmissionsKg)
	}
	if acme.ReductionPct != 20 || acme.SubsidyPct != 20 {
		t.Fatalf("Acme reduction/subsidy = %v/%v, want 20/20", acme.ReductionPct, acme.SubsidyPct)
	}
	bolt, ok := byName["Bolt"]
	if !ok {
		t.Fatal("missing Bolt entry")
	}
	if bolt.EmissionsKg != 2000 {
		t.Fatalf("Bolt emissions = %v, want 2000", bolt.EmissionsKg)
	}
	// Sorted ascending by emissions: Bolt before Acme.
	if manufacturers[0].Name != "Bolt" || manufacturers[1].Name != "Acme" {
		t.Fatalf("order = [%s, %s], want [Bolt, Acme]", manufacturers[0].Name, manufacturers[1].Name)
	}
}

func TestFromMarketDataZeroCurrentCost(t *testing.T) {
	data := &market.Data{
		Levers: map[string]market.Lever{
			"energy": {SubLevers: map[string]market.SubLever{
				"heating": {Items: map[string]market.Item{
					"boiler": {
						Carbon:   market.Carbon{AnnualCO2eTonnes: 1},
						Costing:  market.Costing{AnnualCostRupees: 0, AnnualAlternativeCostRupees: 500},
						Sourcing: market.Sourcing{Suppliers: []string{"Acme"}},
					},
				}},
			}},
		},
	}
	hospitals, manufacturers := FromMarketData(data)
	if hospitals[0].ReductionPct != 0 || hospitals[0].SubsidyPct != 0 {
		t.Fatalf("hospital reduction/subsidy = %v/%v, want 0/0 when current cost is zero",
			hospitals[0].ReductionPct, hospitals[0].SubsidyPct)
	}
	if manufacturers[0].ReductionPct != 0 || manufacturers[0].SubsidyPct != 0 {
		t.Fatalf("manufacturer reduction/subsidy = %v/%v, want 0/0 when current cost is zero",
			manufacturers[0].ReductionPct, manufacturers[0].SubsidyPct)
	}
}

func TestFromMarketDataDefaultsHospitalName(t *testing.T) {
	hospitals, _ := FromMarketData(&market.Data{})
	if len(hospitals) != 1 {
		t.Fatalf("expected one hospital entry, got %d", len(hospitals))
	}
	if hospitals[0].Name != "Unknown Hospital" {
		t.Fatalf("name = %q, want %q", hospitals[0].Name, "Unknown Hospital")
	}
}

func TestFromMarketDataNilDataset(t *testing.T) {
	hospitals, manufacturers := FromMarketData(nil)
	if hospitals != nil || manufacturers != nil {
		t.Fatalf("expected empty boards for nil dataset, got %v / %v", hospitals, manufacturers)
	}
}

func TestFromMarketDataIdempotent(t *testing.T) {
	data := datasetFixture()
	h1, m1 := FromMarketData(data)
	h2, m2 := FromMarketData(data)
	if !reflect.DeepEqual(h1, h2) {
		t.Fatalf("hospital boards differ between runs: %v vs %v", h1, h2)
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Fatalf("manufacturer boards differ between runs: %v vs %v", m1, m2)
	}
}

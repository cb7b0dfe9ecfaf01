package profile

import (
	"testing"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

func TestScenarioFilter_Membership(t *testing.T) {
	records := seedLikeRecords()

	all := ScenarioAll.Filter(records)
	if len(all) != len(records) {
		t.Fatalf("all scenario must keep every record, got %d of %d", len(all), len(records))
	}

	essMed := ScenarioEssentialMedium.Filter(records)
	for _, record := range essMed {
		if record.Priority == catalogue.PriorityNonEssential {
			t.Fatalf("non-essential record %q leaked into essential-medium subset", record.Name)
		}
	}
	if len(essMed) != 3 {
		t.Fatalf("expected 3 essential+medium records, got %d", len(essMed))
	}

	ess := ScenarioEssential.Filter(records)
	for _, record := range ess {
		if record.Priority != catalogue.PriorityEssential {
			t.Fatalf("record %q with priority %q leaked into essentials subset", record.Name, record.Priority)
		}
	}
	if len(ess) != 2 {
		t.Fatalf("expected 2 essential records, got %d", len(ess))
	}
}

func TestComputeScenarios_EnergyMonotoneAcrossSubsets(t *testing.T) {
	results, err := ComputeScenarios(seedLikeRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(results))
	}
	byScenario := make(map[Scenario]*LoadProfile, len(results))
	for _, result := range results {
		byScenario[result.Scenario] = result.Profile
	}

	all := byScenario[ScenarioAll].TotalDailyEnergyWh
	essMed := byScenario[ScenarioEssentialMedium].TotalDailyEnergyWh
	ess := byScenario[ScenarioEssential].TotalDailyEnergyWh
	if ess > essMed+tolerance || essMed > all+tolerance {
		t.Fatalf("subset energies must be monotone: essential %.4f, essential-medium %.4f, all %.4f",
			ess, essMed, all)
	}
}

func TestComputeScenarios_PeaksAreIndependent(t *testing.T) {
	// The geyser dominates slot 2 in the full catalogue; essentials peak
	// must come from the essentials' own simultaneous loads instead.
	records := []catalogue.ApplianceRecord{
		{
			Name: "Geyser", Quantity: 1, RatedPowerW: 3000, DutyCyclePct: 100,
			PowerFactor: 1, UseTimePct: 100, Priority: catalogue.PriorityNonEssential,
			ActiveSlots: catalogue.NewSlotMask(2),
		},
		{
			Name: "Fridge", Quantity: 1, RatedPowerW: 300, DutyCyclePct: 100,
			PowerFactor: 1, UseTimePct: 100, Priority: catalogue.PriorityEssential,
			ActiveSlots: catalogue.NewSlotMask(9),
		},
	}
	results, err := ComputeScenarios(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byScenario := make(map[Scenario]*LoadProfile, len(results))
	for _, result := range results {
		byScenario[result.Scenario] = result.Profile
	}
	if got := byScenario[ScenarioAll].PeakRealSlot; got != 2 {
		t.Fatalf("all-scenario peak slot: expected 2, got %d", got)
	}
	if got := byScenario[ScenarioEssential].PeakRealSlot; got != 9 {
		t.Fatalf("essentials peak slot: expected 9, got %d", got)
	}
	if got := byScenario[ScenarioEssential].PeakRealPowerW; !closeTo(got, 300) {
		t.Fatalf("essentials peak power: expected 300 W, got %.4f", got)
	}
}

func TestParseScenario(t *testing.T) {
	if _, ok := ParseScenario("essential-medium"); !ok {
		t.Fatal("essential-medium must parse")
	}
	if _, ok := ParseScenario("everything"); ok {
		t.Fatal("unknown scenario must not parse")
	}
}

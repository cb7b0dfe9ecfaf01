package profile

import (
	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// Scenario names a priority-based subset of the catalogue that is run
// independently through the calculator for comparison.
type Scenario string

const (
	// ScenarioAll covers the whole catalogue (the off-grid comparison).
	ScenarioAll Scenario = "all"
	// ScenarioEssentialMedium drops non-essential appliances.
	ScenarioEssentialMedium Scenario = "essential-medium"
	// ScenarioEssential keeps essential appliances only.
	ScenarioEssential Scenario = "essential"
)

// Scenarios lists the comparison scenarios in presentation order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioAll, ScenarioEssentialMedium, ScenarioEssential}
}

// ParseScenario maps a request string onto a known scenario.
func ParseScenario(value string) (Scenario, bool) {
	switch Scenario(value) {
	case ScenarioAll, ScenarioEssentialMedium, ScenarioEssential:
		return Scenario(value), true
	}
	return "", false
}

// Includes reports whether a record belongs to the scenario's subset.
// Filtering checks priority only.
func (s Scenario) Includes(record catalogue.ApplianceRecord) bool {
	switch s {
	case ScenarioAll:
		return true
	case ScenarioEssentialMedium:
		return record.Priority == catalogue.PriorityEssential || record.Priority == catalogue.PriorityMedium
	case ScenarioEssential:
		return record.Priority == catalogue.PriorityEssential
	}
	return false
}

// Filter returns the scenario's subset of the snapshot, preserving order.
func (s Scenario) Filter(records []catalogue.ApplianceRecord) []catalogue.ApplianceRecord {
	subset := make([]catalogue.ApplianceRecord, 0, len(records))
	for _, record := range records {
		if s.Includes(record) {
			subset = append(subset, record)
		}
	}
	return subset
}

// ScenarioResult pairs a scenario with its independently computed profile.
// Each scenario's peak reflects its own mix of simultaneous loads; it is not
// the unfiltered peak restricted to the subset.
type ScenarioResult struct {
	Scenario Scenario
	Profile  *LoadProfile
}

// ComputeScenarios runs every comparison scenario over the snapshot.
func ComputeScenarios(records []catalogue.ApplianceRecord) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(Scenarios()))
	for _, scenario := range Scenarios() {
		computed, err := Compute(scenario.Filter(records))
		if err != nil {
			return nil, err
		}
		results = append(results, ScenarioResult{Scenario: scenario, Profile: computed})
	}
	return results, nil
}

package application

import (
	"context"
	"errors"
	"time"

	"loadprofile-cloud/internal/observability/metrics"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
	profile "loadprofile-cloud/internal/profile/domain"
)

// SnapshotReader supplies the catalogue snapshot for a computation pass.
type SnapshotReader interface {
	List(ctx context.Context) ([]catalogue.ApplianceRecord, error)
}

// ErrUnknownScenario is returned for scenario names outside the fixed set.
var ErrUnknownScenario = errors.New("profile: unknown scenario")

// ProfileService computes load profiles from the current catalogue snapshot.
// Results carry no persistent identity; every call recomputes from scratch.
type ProfileService struct {
	snapshots SnapshotReader
}

// NewProfileService constructs a service.
func NewProfileService(snapshots SnapshotReader) (*ProfileService, error) {
	if snapshots == nil {
		return nil, errors.New("profile service: nil snapshot reader")
	}
	return &ProfileService{snapshots: snapshots}, nil
}

// ComputeAll runs every comparison scenario over the current snapshot.
func (s *ProfileService) ComputeAll(ctx context.Context) ([]profile.ScenarioResult, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveProfileCompute(result, time.Since(start))
	}()

	records, err := s.snapshots.List(ctx)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	computed, err := profile.ComputeScenarios(records)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	return computed, nil
}

// ComputeScenario runs a single scenario over the current snapshot.
func (s *ProfileService) ComputeScenario(ctx context.Context, name string) (*profile.ScenarioResult, error) {
	scenario, ok := profile.ParseScenario(name)
	if !ok {
		return nil, ErrUnknownScenario
	}

	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveProfileCompute(result, time.Since(start))
	}()

	records, err := s.snapshots.List(ctx)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	computed, err := profile.Compute(scenario.Filter(records))
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	return &profile.ScenarioResult{Scenario: scenario, Profile: computed}, nil
}

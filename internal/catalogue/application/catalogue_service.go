package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"loadprofile-cloud/internal/changelog"
	"loadprofile-cloud/internal/observability/metrics"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// ApplianceRepository is the record store the service operates on.
type ApplianceRepository interface {
	List(ctx context.Context) ([]catalogue.ApplianceRecord, error)
	Get(ctx context.Context, id int64) (*catalogue.ApplianceRecord, error)
	Upsert(ctx context.Context, record *catalogue.ApplianceRecord) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// Seeder provides the default catalogue rows.
type Seeder func() []catalogue.ApplianceRecord

// CatalogueService handles catalogue edits with change logging. The
// calculation side only ever reads snapshots through List.
type CatalogueService struct {
	repo ApplianceRepository
	log  changelog.Logger
	seed Seeder
}

// NewCatalogueService constructs a service.
func NewCatalogueService(repo ApplianceRepository, log changelog.Logger, seed Seeder) (*CatalogueService, error) {
	if repo == nil {
		return nil, errors.New("catalogue service: nil repository")
	}
	if log == nil {
		return nil, errors.New("catalogue service: nil change log")
	}
	return &CatalogueService{repo: repo, log: log, seed: seed}, nil
}

// List returns the current catalogue snapshot.
func (s *CatalogueService) List(ctx context.Context) ([]catalogue.ApplianceRecord, error) {
	return s.repo.List(ctx)
}

// Upsert validates and stores a record, appending a change log entry.
func (s *CatalogueService) Upsert(ctx context.Context, record catalogue.ApplianceRecord, actor string) (catalogue.ApplianceRecord, error) {
	if err := record.Validate(); err != nil {
		return catalogue.ApplianceRecord{}, err
	}

	changeType := changelog.ChangeInsert
	var previous *catalogue.ApplianceRecord
	if record.ID != 0 {
		existing, err := s.repo.Get(ctx, record.ID)
		if err != nil {
			return catalogue.ApplianceRecord{}, err
		}
		previous = existing
		changeType = changelog.ChangeUpdate
	}

	if err := s.repo.Upsert(ctx, &record); err != nil {
		return catalogue.ApplianceRecord{}, err
	}

	details := upsertDetails(previous, record)
	if err := s.log.Append(ctx, changelog.Entry{
		ChangeType:    changeType,
		ApplianceID:   record.ID,
		ApplianceName: record.Name,
		Details:       details,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		return catalogue.ApplianceRecord{}, err
	}
	metrics.IncCatalogueMutation(changeType)
	return record, nil
}

// Delete removes a record, appending a change log entry.
func (s *CatalogueService) Delete(ctx context.Context, id int64, actor string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	details, _ := json.Marshal(map[string]any{"name": existing.Name})
	if err := s.log.Append(ctx, changelog.Entry{
		ChangeType:    changelog.ChangeDelete,
		ApplianceID:   id,
		ApplianceName: existing.Name,
		Details:       details,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		return err
	}
	metrics.IncCatalogueMutation(changelog.ChangeDelete)
	return nil
}

// EnsureSeeded inserts the default catalogue when the store is empty.
// Seeding is not change-logged; only user edits are.
func (s *CatalogueService) EnsureSeeded(ctx context.Context) (int, error) {
	if s.seed == nil {
		return 0, nil
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	return s.insertSeed(ctx)
}

// Reset clears the catalogue and restores the default rows. The wipe is
// recorded as a single change log entry.
func (s *CatalogueService) Reset(ctx context.Context, actor string) (int, error) {
	if s.seed == nil {
		return 0, errors.New("catalogue service: no seed configured")
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.DeleteAll(ctx); err != nil {
		return 0, err
	}

	details, _ := json.Marshal(map[string]any{"removed": count})
	if err := s.log.Append(ctx, changelog.Entry{
		ChangeType:    changelog.ChangeDelete,
		ApplianceName: "*",
		Details:       details,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		return 0, err
	}
	metrics.IncCatalogueMutation("reset")
	return s.insertSeed(ctx)
}

func (s *CatalogueService) insertSeed(ctx context.Context) (int, error) {
	inserted := 0
	for _, record := range s.seed() {
		record.ID = 0
		if err := record.Validate(); err != nil {
			return inserted, err
		}
		if err := s.repo.Upsert(ctx, &record); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func upsertDetails(previous *catalogue.ApplianceRecord, current catalogue.ApplianceRecord) json.RawMessage {
	if previous == nil {
		details, _ := json.Marshal(map[string]any{"name": current.Name})
		return details
	}
	changed := map[string]any{}
	if previous.Name != current.Name {
		changed["name"] = []string{previous.Name, current.Name}
	}
	if previous.Quantity != current.Quantity {
		changed["quantity"] = []int{previous.Quantity, current.Quantity}
	}
	if previous.RatedPowerW != current.RatedPowerW {
		changed["rated_power_w"] = []float64{previous.RatedPowerW, current.RatedPowerW}
	}
	if previous.DutyCyclePct != current.DutyCyclePct {
		changed["duty_cycle_pct"] = []float64{previous.DutyCyclePct, current.DutyCyclePct}
	}
	if previous.PowerFactor != current.PowerFactor {
		changed["power_factor"] = []float64{previous.PowerFactor, current.PowerFactor}
	}
	if previous.UseTimePct != current.UseTimePct {
		changed["use_time_pct"] = []float64{previous.UseTimePct, current.UseTimePct}
	}
	if previous.Priority != current.Priority {
		changed["priority"] = []string{string(previous.Priority), string(current.Priority)}
	}
	if previous.Room != current.Room {
		changed["room"] = []string{previous.Room, current.Room}
	}
	if previous.ActiveSlots != current.ActiveSlots {
		changed["active_slots"] = []uint16{previous.ActiveSlots.Bits(), current.ActiveSlots.Bits()}
	}
	details, _ := json.Marshal(changed)
	return details
}

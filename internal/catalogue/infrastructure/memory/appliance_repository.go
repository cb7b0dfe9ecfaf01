package memory

import (
	"context"
	"sort"
	"sync"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// ApplianceRepository is an in-memory catalogue store for tests and DB-less
// demo runs.
type ApplianceRepository struct {
	mu     sync.RWMutex
	data   map[int64]catalogue.ApplianceRecord
	nextID int64
}

// NewApplianceRepository constructs an empty repository.
func NewApplianceRepository() *ApplianceRepository {
	return &ApplianceRepository{
		data:   make(map[int64]catalogue.ApplianceRecord),
		nextID: 1,
	}
}

// List returns the snapshot ordered by id.
func (r *ApplianceRepository) List(ctx context.Context) ([]catalogue.ApplianceRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]catalogue.ApplianceRecord, 0, len(r.data))
	for _, record := range r.data {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Get loads one record by id.
func (r *ApplianceRepository) Get(ctx context.Context, id int64) (*catalogue.ApplianceRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.data[id]
	if !ok {
		return nil, catalogue.ErrApplianceNotFound
	}
	return &record, nil
}

// Upsert inserts (assigning an id) or replaces a record.
func (r *ApplianceRepository) Upsert(ctx context.Context, record *catalogue.ApplianceRecord) error {
	_ = ctx
	if record == nil {
		return catalogue.ErrNilRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == 0 {
		record.ID = r.nextID
		r.nextID++
	} else if _, ok := r.data[record.ID]; !ok {
		return catalogue.ErrApplianceNotFound
	}
	if record.ID >= r.nextID {
		r.nextID = record.ID + 1
	}
	r.data[record.ID] = *record
	return nil
}

// Delete removes one record by id.
func (r *ApplianceRepository) Delete(ctx context.Context, id int64) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return catalogue.ErrApplianceNotFound
	}
	delete(r.data, id)
	return nil
}

// DeleteAll clears the store.
func (r *ApplianceRepository) DeleteAll(ctx context.Context) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[int64]catalogue.ApplianceRecord)
	return nil
}

// Count returns the number of records.
func (r *ApplianceRepository) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

const defaultApplianceTable = "appliances"

// ApplianceRepository is a Postgres implementation of the catalogue record
// store. The slot mask is persisted as a 12-bit integer; the slot ordering
// and count are fixed by the domain.
type ApplianceRepository struct {
	db    *sql.DB
	table string
}

// NewApplianceRepository constructs a repository with defaults.
func NewApplianceRepository(db *sql.DB, opts ...RepositoryOption) *ApplianceRepository {
	repo := &ApplianceRepository{
		db:    db,
		table: defaultApplianceTable,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// RepositoryOption configures the repository.
type RepositoryOption func(*ApplianceRepository)

// WithTable overrides the default table.
func WithTable(table string) RepositoryOption {
	return func(repo *ApplianceRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// List returns the full catalogue snapshot ordered by id.
func (r *ApplianceRepository) List(ctx context.Context) ([]catalogue.ApplianceRecord, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("appliance repo: nil db")
	}

	query := fmt.Sprintf(`
SELECT id, name, quantity, rated_power_w, duty_cycle_pct, power_factor, use_time_pct, priority, room, active_slots
FROM %s
ORDER BY id`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []catalogue.ApplianceRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get loads one record by id.
func (r *ApplianceRepository) Get(ctx context.Context, id int64) (*catalogue.ApplianceRecord, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("appliance repo: nil db")
	}

	query := fmt.Sprintf(`
SELECT id, name, quantity, rated_power_w, duty_cycle_pct, power_factor, use_time_pct, priority, room, active_slots
FROM %s
WHERE id = $1`, r.table)

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogue.ErrApplianceNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Upsert inserts a new record (id unset) or updates an existing one.
// On insert the generated id is written back to the record.
func (r *ApplianceRepository) Upsert(ctx context.Context, record *catalogue.ApplianceRecord) error {
	if r == nil || r.db == nil {
		return errors.New("appliance repo: nil db")
	}
	if record == nil {
		return catalogue.ErrNilRecord
	}

	if record.ID == 0 {
		query := fmt.Sprintf(`
INSERT INTO %s (
	name, quantity, rated_power_w, duty_cycle_pct, power_factor, use_time_pct, priority, room, active_slots
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9
)
RETURNING id`, r.table)
		return r.db.QueryRowContext(ctx, query,
			record.Name, record.Quantity, record.RatedPowerW, record.DutyCyclePct,
			record.PowerFactor, record.UseTimePct, string(record.Priority), record.Room,
			int64(record.ActiveSlots.Bits()),
		).Scan(&record.ID)
	}

	query := fmt.Sprintf(`
UPDATE %s SET
	name = $2,
	quantity = $3,
	rated_power_w = $4,
	duty_cycle_pct = $5,
	power_factor = $6,
	use_time_pct = $7,
	priority = $8,
	room = $9,
	active_slots = $10,
	updated_at = NOW()
WHERE id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Quantity, record.RatedPowerW, record.DutyCyclePct,
		record.PowerFactor, record.UseTimePct, string(record.Priority), record.Room,
		int64(record.ActiveSlots.Bits()),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalogue.ErrApplianceNotFound
	}
	return nil
}

// Delete removes one record by id.
func (r *ApplianceRepository) Delete(ctx context.Context, id int64) error {
	if r == nil || r.db == nil {
		return errors.New("appliance repo: nil db")
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalogue.ErrApplianceNotFound
	}
	return nil
}

// DeleteAll clears the catalogue.
func (r *ApplianceRepository) DeleteAll(ctx context.Context) error {
	if r == nil || r.db == nil {
		return errors.New("appliance repo: nil db")
	}
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, r.table))
	return err
}

// Count returns the number of catalogue rows.
func (r *ApplianceRepository) Count(ctx context.Context) (int, error) {
	if r == nil || r.db == nil {
		return 0, errors.New("appliance repo: nil db")
	}
	var count int
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.table)).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (catalogue.ApplianceRecord, error) {
	var record catalogue.ApplianceRecord
	var priority string
	var bits int64
	err := row.Scan(
		&record.ID, &record.Name, &record.Quantity, &record.RatedPowerW,
		&record.DutyCyclePct, &record.PowerFactor, &record.UseTimePct,
		&priority, &record.Room, &bits,
	)
	if err != nil {
		return catalogue.ApplianceRecord{}, err
	}
	record.Priority = catalogue.Priority(priority)
	record.ActiveSlots = catalogue.SlotMaskFromBits(uint16(bits))
	return record, nil
}

package catalogue

import "fmt"

// Priority classifies an appliance for load-shedding comparison scenarios.
// It never enters the power math.
type Priority string

const (
	PriorityEssential    Priority = "essential"
	PriorityMedium       Priority = "medium"
	PriorityNonEssential Priority = "non-essential"
)

// IsValid reports whether the priority is one of the known classes.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityEssential, PriorityMedium, PriorityNonEssential:
		return true
	}
	return false
}

// ApplianceRecord is one catalogue row: a count of identical units with
// nameplate ratings and a daily activity mask. Records are treated as
// immutable snapshots by every calculation pass.
type ApplianceRecord struct {
	ID           int64
	Name         string
	Quantity     int
	RatedPowerW  float64
	DutyCyclePct float64
	PowerFactor  float64
	UseTimePct   float64
	Priority     Priority
	Room         string
	ActiveSlots  SlotMask
}

// Validate checks the record invariants. Values outside the stated ranges
// are rejected, never coerced; power_factor = 0 in particular must surface
// here rather than as a division fault downstream.
func (r ApplianceRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	}
	if r.Quantity < 1 {
		return fmt.Errorf("%w: %q: quantity %d below 1", ErrInvalidRecord, r.Name, r.Quantity)
	}
	if r.RatedPowerW <= 0 {
		return fmt.Errorf("%w: %q: rated power %.2f W not positive", ErrInvalidRecord, r.Name, r.RatedPowerW)
	}
	if r.DutyCyclePct < 0 || r.DutyCyclePct > 100 {
		return fmt.Errorf("%w: %q: duty cycle %.2f%% outside [0,100]", ErrInvalidRecord, r.Name, r.DutyCyclePct)
	}
	if r.PowerFactor <= 0 || r.PowerFactor > 1 {
		return fmt.Errorf("%w: %q: power factor %.2f outside (0,1]", ErrInvalidRecord, r.Name, r.PowerFactor)
	}
	if r.UseTimePct < 0 || r.UseTimePct > 100 {
		return fmt.Errorf("%w: %q: use time %.2f%% outside [0,100]", ErrInvalidRecord, r.Name, r.UseTimePct)
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("%w: %q: unknown priority %q", ErrInvalidRecord, r.Name, r.Priority)
	}
	return nil
}

// ApparentPowerVA is the nameplate apparent power for one unit.
func (r ApplianceRecord) ApparentPowerVA() float64 {
	if r.PowerFactor <= 0 {
		return 0
	}
	return r.RatedPowerW / r.PowerFactor
}

package catalogue

import (
	"errors"
	"testing"
)

func validRecord() ApplianceRecord {
	return ApplianceRecord{
		Name:         "Kettle",
		Quantity:     1,
		RatedPowerW:  2000,
		DutyCyclePct: 100,
		PowerFactor:  1,
		UseTimePct:   5,
		Priority:     PriorityNonEssential,
		Room:         "Kitchen",
		ActiveSlots:  NewSlotMask(0, 3, 6, 8),
	}
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_AllFalseMaskIsValid(t *testing.T) {
	record := validRecord()
	record.ActiveSlots = SlotMask{}
	if err := record.Validate(); err != nil {
		t.Fatalf("all-false mask must be a valid record, got %v", err)
	}
}

func TestValidate_RejectsInvariantViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ApplianceRecord)
	}{
		{"empty name", func(r *ApplianceRecord) { r.Name = "" }},
		{"zero quantity", func(r *ApplianceRecord) { r.Quantity = 0 }},
		{"negative power", func(r *ApplianceRecord) { r.RatedPowerW = -5 }},
		{"zero power", func(r *ApplianceRecord) { r.RatedPowerW = 0 }},
		{"duty cycle above 100", func(r *ApplianceRecord) { r.DutyCyclePct = 101 }},
		{"negative duty cycle", func(r *ApplianceRecord) { r.DutyCyclePct = -1 }},
		{"zero power factor", func(r *ApplianceRecord) { r.PowerFactor = 0 }},
		{"power factor above 1", func(r *ApplianceRecord) { r.PowerFactor = 1.1 }},
		{"use time above 100", func(r *ApplianceRecord) { r.UseTimePct = 100.5 }},
		{"unknown priority", func(r *ApplianceRecord) { r.Priority = "critical" }},
	}
	for _, tc := range cases {
		record := validRecord()
		tc.mutate(&record)
		err := record.Validate()
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected ErrInvalidRecord, got %v", tc.name, err)
		}
	}
}

func TestSlotLabels(t *testing.T) {
	labels := SlotLabels()
	if len(labels) != SlotCount {
		t.Fatalf("expected %d labels, got %d", SlotCount, len(labels))
	}
	if labels[0] != "00:00–02:00" {
		t.Fatalf("slot 0 label: got %q", labels[0])
	}
	if labels[3] != "06:00–08:00" {
		t.Fatalf("slot 3 label: got %q", labels[3])
	}
	if labels[11] != "22:00–00:00" {
		t.Fatalf("slot 11 must wrap to midnight, got %q", labels[11])
	}
}

func TestSlotMaskBitsRoundTrip(t *testing.T) {
	mask := NewSlotMask(0, 3, 11)
	got := SlotMaskFromBits(mask.Bits())
	if got != mask {
		t.Fatalf("round trip mismatch: %v != %v", got, mask)
	}
	if AllSlots().Bits() != 0x0FFF {
		t.Fatalf("all-slots bits: got %#x", AllSlots().Bits())
	}
	if (SlotMask{}).Any() {
		t.Fatal("empty mask must report no active slots")
	}
}

package profile

import (
	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// SlotLoad is the aggregate load attributed to one 2-hour interval.
type SlotLoad struct {
	SlotIndex       int
	Label           string
	RealPowerW      float64
	ApparentPowerVA float64
	EnergyWh        float64
}

// ApplianceLoad is the per-slot breakdown for a single catalogue row.
type ApplianceLoad struct {
	ApplianceID     int64
	Name            string
	Priority        catalogue.Priority
	RealPowerW      [catalogue.SlotCount]float64
	ApparentPowerVA [catalogue.SlotCount]float64
	EnergyWh        [catalogue.SlotCount]float64
	DailyEnergyWh   float64
}

// LoadProfile is the computed daily profile for one appliance set.
type LoadProfile struct {
	ApplianceCount int
	Slots          [catalogue.SlotCount]SlotLoad
	Appliances     []ApplianceLoad

	// DailyEnergyWhByName sums daily energy per display name; names are
	// not unique across records.
	DailyEnergyWhByName map[string]float64

	TotalDailyEnergyWh  float64
	PeakRealPowerW      float64
	PeakRealSlot        int
	PeakApparentPowerVA float64
	PeakApparentSlot    int
}

// Compute expands appliance records into per-slot power and energy figures
// and aggregates them into a daily profile. The computation is pure: an
// unchanged snapshot always yields an identical profile.
//
// Per active slot, the time-averaged real power of a record is
//
//	quantity × rated power × duty cycle × use time
//
// with both percentages as fractions. Duty cycle models sub-rated operating
// intensity, use time the fraction of the interval actually drawing power;
// their product is valid for direct multiplication by the slot duration.
// Inactive slots contribute zero.
//
// An empty snapshot yields an all-zero profile, not an error. A record that
// violates an invariant is rejected with ErrInvalidRecord.
func Compute(records []catalogue.ApplianceRecord) (*LoadProfile, error) {
	result := &LoadProfile{
		ApplianceCount:      len(records),
		Appliances:          make([]ApplianceLoad, 0, len(records)),
		DailyEnergyWhByName: make(map[string]float64, len(records)),
	}
	for i := range result.Slots {
		result.Slots[i] = SlotLoad{SlotIndex: i, Label: catalogue.SlotLabel(i)}
	}

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}

		load := ApplianceLoad{
			ApplianceID: record.ID,
			Name:        record.Name,
			Priority:    record.Priority,
		}
		effectiveW := float64(record.Quantity) * record.RatedPowerW *
			(record.DutyCyclePct / 100) * (record.UseTimePct / 100)

		for slot := 0; slot < catalogue.SlotCount; slot++ {
			if !record.ActiveSlots[slot] {
				continue
			}
			realW := effectiveW
			apparentVA := realW / record.PowerFactor
			energyWh := realW * catalogue.SlotDurationHours

			load.RealPowerW[slot] = realW
			load.ApparentPowerVA[slot] = apparentVA
			load.EnergyWh[slot] = energyWh
			load.DailyEnergyWh += energyWh

			result.Slots[slot].RealPowerW += realW
			result.Slots[slot].ApparentPowerVA += apparentVA
			result.Slots[slot].EnergyWh += energyWh
		}

		result.Appliances = append(result.Appliances, load)
		result.DailyEnergyWhByName[record.Name] += load.DailyEnergyWh
		result.TotalDailyEnergyWh += load.DailyEnergyWh
	}

	// Ties go to the earliest slot so peak reporting stays deterministic.
	for slot := 1; slot < catalogue.SlotCount; slot++ {
		if result.Slots[slot].RealPowerW > result.Slots[result.PeakRealSlot].RealPowerW {
			result.PeakRealSlot = slot
		}
		if result.Slots[slot].ApparentPowerVA > result.Slots[result.PeakApparentSlot].ApparentPowerVA {
			result.PeakApparentSlot = slot
		}
	}
	result.PeakRealPowerW = result.Slots[result.PeakRealSlot].RealPowerW
	result.PeakApparentPowerVA = result.Slots[result.PeakApparentSlot].ApparentPowerVA

	return result, nil
}

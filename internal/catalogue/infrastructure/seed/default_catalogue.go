// Package seed provides the default appliance dataset used to initialise an
// empty catalogue store.
package seed

import (
	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// DefaultCatalogue returns the built-in residential appliance catalogue.
// Quantities, ratings and activity masks describe a typical household; the
// priority assignment drives the load-shedding comparison scenarios.
func DefaultCatalogue() []catalogue.ApplianceRecord {
	return []catalogue.ApplianceRecord{
		record("Ceiling Lights (Living)", 4, 9, 100, 0.95, 50, catalogue.PriorityEssential, "Living Room", 3, 4, 5, 8, 9, 10, 11),
		record("Ceiling Lights (Bedrooms)", 3, 9, 100, 0.95, 30, catalogue.PriorityEssential, "Bedroom", 3, 4, 8, 9, 10, 11),
		record("Ceiling Lights (Kitchen)", 3, 9, 100, 0.95, 40, catalogue.PriorityEssential, "Kitchen", 3, 4, 8, 9, 10, 11),
		record("Ceiling Lights (Dining)", 3, 9, 100, 0.95, 30, catalogue.PriorityEssential, "Dining Room", 3, 4, 8, 9, 10, 11),
		record("Security Lights (Outside)", 3, 9, 100, 0.95, 90, catalogue.PriorityEssential, "Outdoor", 3, 4, 8, 9, 10, 11),
		record("Ceiling Lights (Garage)", 3, 9, 100, 0.95, 20, catalogue.PriorityEssential, "Garage", 3, 4, 8, 9, 10, 11),
		record("Ceiling LED Lights (Bathroom)", 3, 9, 100, 0.95, 25, catalogue.PriorityEssential, "Bathroom", 3, 4, 8, 9, 10, 11),
		always("Fridge", 1, 300, 40, 0.85, 100, catalogue.PriorityEssential, "Kitchen"),
		record("Phone Chargers", 2, 5, 80, 0.60, 60, catalogue.PriorityEssential, "Living Room", 4, 5, 6, 7, 8, 9, 10, 11),
		record("Laptop", 1, 65, 70, 0.65, 80, catalogue.PriorityEssential, "Living Room", 3, 4, 5, 6, 7, 8, 9),
		record("TV", 1, 100, 90, 0.70, 70, catalogue.PriorityMedium, "Living Room", 5, 6, 7, 8, 9, 10),
		record("Washing Machine", 1, 500, 85, 0.80, 15, catalogue.PriorityMedium, "Laundry", 4, 5),
		record("Microwave", 1, 800, 95, 0.85, 5, catalogue.PriorityMedium, "Kitchen", 0, 1, 2, 8, 9, 10, 11),
		record("Geyser", 1, 3000, 30, 1.00, 40, catalogue.PriorityNonEssential, "Bathroom", 2, 3, 8, 9),
		record("Stove", 1, 2000, 80, 1.00, 20, catalogue.PriorityNonEssential, "Kitchen", 0, 3, 6, 8),
		record("Hair Dryer", 1, 1200, 100, 0.98, 10, catalogue.PriorityNonEssential, "Bathroom", 2, 8),
		record("Kettle", 1, 2000, 100, 1.00, 5, catalogue.PriorityNonEssential, "Kitchen", 0, 3, 6, 8),
		always("Freezer", 1, 200, 40, 0.85, 100, catalogue.PriorityEssential, "Kitchen"),
		record("Dishwasher", 1, 1200, 90, 0.85, 25, catalogue.PriorityMedium, "Kitchen", 4, 5, 6),
		record("Vacuum Cleaner", 1, 700, 50, 0.75, 15, catalogue.PriorityNonEssential, "General", 7),
		record("Toaster", 1, 800, 60, 1.00, 5, catalogue.PriorityNonEssential, "Kitchen", 3),
		record("Coffee Machine", 1, 900, 80, 0.95, 10, catalogue.PriorityNonEssential, "Kitchen", 3),
		record("Iron", 1, 1000, 70, 1.00, 15, catalogue.PriorityNonEssential, "Laundry", 8),
		record("Fan", 2, 50, 40, 0.65, 80, catalogue.PriorityEssential, "Living Room", 0, 1, 10, 11),
		record("Space Heater", 1, 1500, 50, 1.00, 30, catalogue.PriorityNonEssential, "Living Room", 8, 9),
		record("Game Console", 1, 120, 60, 0.70, 60, catalogue.PriorityMedium, "Living Room", 8, 9, 10),
		always("Router", 1, 10, 100, 0.60, 100, catalogue.PriorityEssential, "Living Room"),
		record("Blender", 1, 400, 40, 0.75, 5, catalogue.PriorityNonEssential, "Kitchen", 5),
		record("Rice Cooker", 1, 700, 50, 0.95, 15, catalogue.PriorityNonEssential, "Kitchen", 3),
		record("Oven", 1, 2400, 80, 1.00, 20, catalogue.PriorityNonEssential, "Kitchen", 6, 7),
		record("Water Heater", 1, 3000, 30, 1.00, 20, catalogue.PriorityNonEssential, "Bathroom", 3),
		record("Ceiling Fan", 1, 70, 50, 0.65, 70, catalogue.PriorityEssential, "Bedroom", 0, 1, 10, 11),
		record("Garage Door Opener", 1, 800, 20, 0.70, 2, catalogue.PriorityNonEssential, "Garage", 8),
		always("Security System", 1, 50, 100, 0.60, 100, catalogue.PriorityEssential, "General"),
		record("Water Pump", 1, 1000, 30, 0.75, 10, catalogue.PriorityNonEssential, "Outdoor", 3),
		record("Electric Stove", 1, 2500, 80, 1.00, 25, catalogue.PriorityNonEssential, "Kitchen", 6, 7),
		record("Ceiling Light (Bathroom)", 2, 15, 50, 0.95, 30, catalogue.PriorityEssential, "Bathroom", 3, 4, 8, 9),
		record("Outdoor Light", 4, 20, 70, 0.95, 85, catalogue.PriorityEssential, "Outdoor", 0, 1, 8, 9, 10, 11),
	}
}

func record(name string, quantity int, ratedPowerW, dutyCyclePct, powerFactor, useTimePct float64, priority catalogue.Priority, room string, slots ...int) catalogue.ApplianceRecord {
	return catalogue.ApplianceRecord{
		Name:         name,
		Quantity:     quantity,
		RatedPowerW:  ratedPowerW,
		DutyCyclePct: dutyCyclePct,
		PowerFactor:  powerFactor,
		UseTimePct:   useTimePct,
		Priority:     priority,
		Room:         room,
		ActiveSlots:  catalogue.NewSlotMask(slots...),
	}
}

func always(name string, quantity int, ratedPowerW, dutyCyclePct, powerFactor, useTimePct float64, priority catalogue.Priority, room string) catalogue.ApplianceRecord {
	rec := record(name, quantity, ratedPowerW, dutyCyclePct, powerFactor, useTimePct, priority, room)
	rec.ActiveSlots = catalogue.AllSlots()
	return rec
}

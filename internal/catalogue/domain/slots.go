package catalogue

import "fmt"

const (
	// SlotCount is the fixed number of intervals partitioning a day.
	SlotCount = 12
	// SlotDurationHours is the length of one interval.
	SlotDurationHours = 2.0
)

// SlotMask marks the intervals during which an appliance may operate.
// Index 0 covers 00:00–02:00, index 11 covers 22:00–00:00.
type SlotMask [SlotCount]bool

// Any reports whether at least one slot is active.
func (m SlotMask) Any() bool {
	for _, on := range m {
		if on {
			return true
		}
	}
	return false
}

// Bits packs the mask into the low 12 bits for storage.
func (m SlotMask) Bits() uint16 {
	var bits uint16
	for i, on := range m {
		if on {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// SlotMaskFromBits unpacks a stored bit representation.
func SlotMaskFromBits(bits uint16) SlotMask {
	var mask SlotMask
	for i := 0; i < SlotCount; i++ {
		mask[i] = bits&(1<<uint(i)) != 0
	}
	return mask
}

// NewSlotMask builds a mask with the given slot indexes active.
func NewSlotMask(slots ...int) SlotMask {
	var mask SlotMask
	for _, slot := range slots {
		if slot >= 0 && slot < SlotCount {
			mask[slot] = true
		}
	}
	return mask
}

// AllSlots returns a mask with every interval active.
func AllSlots() SlotMask {
	var mask SlotMask
	for i := range mask {
		mask[i] = true
	}
	return mask
}

// SlotLabel formats the interval label for a slot index, wrapping 24 to 00.
func SlotLabel(slot int) string {
	if slot < 0 || slot >= SlotCount {
		return ""
	}
	start := slot * 2
	end := (start + 2) % 24
	return fmt.Sprintf("%02d:00–%02d:00", start, end)
}

// SlotLabels returns the ordered labels for all intervals.
func SlotLabels() [SlotCount]string {
	var labels [SlotCount]string
	for i := range labels {
		labels[i] = SlotLabel(i)
	}
	return labels
}

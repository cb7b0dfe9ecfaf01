package catalogue

import "errors"

var (
	// ErrInvalidRecord is returned when an appliance record violates an invariant.
	ErrInvalidRecord = errors.New("catalogue: invalid record")
	// ErrApplianceNotFound is returned when an appliance id does not exist.
	ErrApplianceNotFound = errors.New("catalogue: appliance not found")
	// ErrNilRecord is returned when a nil record is supplied.
	ErrNilRecord = errors.New("catalogue: nil record")
)

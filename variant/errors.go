package variant

import "errors"

var (
	// ErrInvalidVariant is matched by every *InvalidVariantError via errors.Is.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrEmptyCapability is returned when a Registry is built without a capability name.
	ErrEmptyCapability = errors.New("empty capability name supplied")

	// ErrNoOperations is returned when a Registry is built without any operation.
	ErrNoOperations = errors.New("no operations supplied")

	// ErrNilOperation is returned when a Registry is built with a nil operation.
	ErrNilOperation = errors.New("nil operation supplied")
)

// InvalidVariantError is returned when a key has no registered operation.
type InvalidVariantError struct {
	Capability string
	Key        string
}

// Error returns the message "Unknown {capability} type: {key}".
func (e *InvalidVariantError) Error() string {
	return "Unknown " + e.Capability + " type: " + e.Key
}

// Is reports whether target is ErrInvalidVariant.
func (e *InvalidVariantError) Is(target error) bool {
	return target == ErrInvalidVariant
}

package variant

import (
	"errors"
	"fmt"
	"slices"
)

// Operation is one concrete behavior of a capability.
type Operation[I any, O any] func(in I) (O, error)

// Registry is an immutable mapping from key to Operation for one capability.
type Registry[K ~string, I any, O any] struct {
	capability string
	operations map[K]Operation[I, O]
}

// NewRegistry creates a Registry for the named capability.
// The operations map is copied, later changes to it have no effect on the Registry.
func NewRegistry[K ~string, I any, O any](
	capability string,
	operations map[K]Operation[I, O],
) (*Registry[K, I, O], error) {

	if capability == "" {
		return nil, ErrEmptyCapability
	}

	if len(operations) == 0 {
		return nil, errors.Join(ErrNoOperations, fmt.Errorf("capability: %s", capability))
	}

	copied := make(map[K]Operation[I, O], len(operations))
	for key, operation := range operations {
		if operation == nil {
			return nil, errors.Join(ErrNilOperation, fmt.Errorf("capability: %s, key: %s", capability, key))
		}

		copied[key] = operation
	}

	return &Registry[K, I, O]{
		capability: capability,
		operations: copied,
	}, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// It is meant for package-level registries that are built at init time.
func MustNewRegistry[K ~string, I any, O any](
	capability string,
	operations map[K]Operation[I, O],
) *Registry[K, I, O] {

	registry, err := NewRegistry(capability, operations)
	if err != nil {
		panic(err)
	}

	return registry
}

// Dispatch looks up the operation for key (exact, case-sensitive) and applies it to in.
func (r *Registry[K, I, O]) Dispatch(key K, in I) (O, error) {
	operation, ok := r.operations[key]
	if !ok {
		var zero O
		return zero, &InvalidVariantError{Capability: r.capability, Key: string(key)}
	}

	return operation(in)
}

// Has reports whether an operation is registered for key.
func (r *Registry[K, I, O]) Has(key K) bool {
	_, ok := r.operations[key]

	return ok
}

// Keys returns all registered keys in sorted order.
func (r *Registry[K, I, O]) Keys() []K {
	keys := make([]K, 0, len(r.operations))
	for key := range r.operations {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Capability returns the capability name used in error messages.
func (r *Registry[K, I, O]) Capability() string {
	return r.capability
}

package variant_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

type kind string

func upper(in string) (string, error) {
	return strings.ToUpper(in), nil
}

func lower(in string) (string, error) {
	return strings.ToLower(in), nil
}

func buildRegistry(t *testing.T) *variant.Registry[kind, string, string] {
	t.Helper()

	registry, err := variant.NewRegistry("casing", map[kind]variant.Operation[string, string]{
		"upper": upper,
		"lower": lower,
	})
	require.NoError(t, err, "building the registry should not fail")

	return registry
}

func Test_Registry_Dispatch_AppliesTheMatchingOperation(t *testing.T) {
	// arrange
	registry := buildRegistry(t)

	// act
	upperResult, upperErr := registry.Dispatch("upper", "Some Text")
	lowerResult, lowerErr := registry.Dispatch("lower", "Some Text")

	// assert
	assert.NoError(t, upperErr)
	assert.Equal(t, "SOME TEXT", upperResult)
	assert.NoError(t, lowerErr)
	assert.Equal(t, "some text", lowerResult)
}

func Test_Registry_Dispatch_FailsForUnknownKey(t *testing.T) {
	testCases := []struct {
		name            string
		key             kind
		expectedMessage string
	}{
		{name: "unknown key", key: "title", expectedMessage: "Unknown casing type: title"},
		{name: "lookup is case-sensitive", key: "UPPER", expectedMessage: "Unknown casing type: UPPER"},
		{name: "empty key", key: "", expectedMessage: "Unknown casing type: "},
		{name: "key with surrounding whitespace", key: " upper", expectedMessage: "Unknown casing type:  upper"},
	}

	registry := buildRegistry(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result, err := registry.Dispatch(tc.key, "Some Text")

			// assert
			require.Error(t, err)
			assert.Empty(t, result)
			assert.ErrorIs(t, err, variant.ErrInvalidVariant)
			assert.EqualError(t, err, tc.expectedMessage)

			var invalidVariant *variant.InvalidVariantError
			require.True(t, errors.As(err, &invalidVariant))
			assert.Equal(t, "casing", invalidVariant.Capability)
			assert.Equal(t, string(tc.key), invalidVariant.Key)
		})
	}
}

func Test_Registry_Dispatch_PropagatesOperationErrors(t *testing.T) {
	// arrange
	operationErr := errors.New("operation failed")
	registry := variant.MustNewRegistry("failing", map[kind]variant.Operation[string, int]{
		"boom": func(string) (int, error) { return 0, operationErr },
	})

	// act
	_, err := registry.Dispatch("boom", "input")

	// assert
	assert.ErrorIs(t, err, operationErr)
	assert.NotErrorIs(t, err, variant.ErrInvalidVariant)
}

func Test_Registry_IsImmutableAfterConstruction(t *testing.T) {
	// arrange
	operations := map[kind]variant.Operation[string, string]{
		"upper": upper,
	}
	registry, err := variant.NewRegistry("casing", operations)
	require.NoError(t, err)

	// act
	operations["lower"] = lower
	delete(operations, "upper")

	// assert
	assert.True(t, registry.Has("upper"))
	assert.False(t, registry.Has("lower"))
	assert.Equal(t, []kind{"upper"}, registry.Keys())
}

func Test_Registry_Keys_AreSorted(t *testing.T) {
	// arrange
	registry := buildRegistry(t)

	// act
	keys := registry.Keys()

	// assert
	assert.Equal(t, []kind{"lower", "upper"}, keys)
	assert.Equal(t, "casing", registry.Capability())
}

func Test_NewRegistry_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		capability  string
		operations  map[kind]variant.Operation[string, string]
		expectedErr error
	}{
		{
			name:        "empty capability",
			capability:  "",
			operations:  map[kind]variant.Operation[string, string]{"upper": upper},
			expectedErr: variant.ErrEmptyCapability,
		},
		{
			name:        "no operations",
			capability:  "casing",
			operations:  map[kind]variant.Operation[string, string]{},
			expectedErr: variant.ErrNoOperations,
		},
		{
			name:        "nil operation",
			capability:  "casing",
			operations:  map[kind]variant.Operation[string, string]{"upper": nil},
			expectedErr: variant.ErrNilOperation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			registry, err := variant.NewRegistry(tc.capability, tc.operations)

			// assert
			assert.Nil(t, registry)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_MustNewRegistry_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() {
		variant.MustNewRegistry("", map[kind]variant.Operation[string, string]{"upper": upper})
	})
}

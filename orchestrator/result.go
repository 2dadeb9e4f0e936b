package orchestrator

// Result is the outcome of a run: either the serialized text of the first serialize command,
// or no value at all.
type Result struct {
	serialized string
	hasValue   bool
}

// SerializedResult creates a Result holding serialized text (which may be empty).
func SerializedResult(serialized string) Result {
	return Result{
		serialized: serialized,
		hasValue:   true,
	}
}

// NoResult creates a Result without a value.
func NoResult() Result {
	return Result{}
}

// HasValue reports whether the run ended with a serialize command.
func (r Result) HasValue() bool {
	return r.hasValue
}

// Value returns the serialized text and whether it is present.
func (r Result) Value() (string, bool) {
	return r.serialized, r.hasValue
}

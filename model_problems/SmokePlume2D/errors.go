package SmokePlume2D

import "fmt"

// ConfigurationError rejects a run deck before any stepping happens
type ConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Parameter, e.Reason)
}

// NumericalInstabilityError aborts a run when a field picks up NaN or
// Inf values; the model state keeps the last finite snapshot.
type NumericalInstabilityError struct {
	Step  int
	Field string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerical instability at step %d: non-finite values in %s field", e.Step, e.Field)
}

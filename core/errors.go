package core

import "fmt"

// ConfigurationError reports that the requested validation layer is not
// supported by the runtime. It is raised before any instance exists and
// the process must not continue past it.
type ConfigurationError struct {
	Layer string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("validation layer %s requested, but not available", e.Layer)
}

// InitializationError reports an API call rejected by the underlying
// runtime during bootstrap. Stage names the step that failed
// ("instance", "messenger", "device", "surface"). These failures are
// not transient, no step retries.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s initialization: %s", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

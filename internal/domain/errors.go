package domain

import "fmt"

// ConfigError reports missing or invalid configuration. It is returned
// before any graph or QUBO work happens.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ServiceError reports a failure from the annealing service or its
// transport. Op names the failed operation, Message carries the service's
// own description when one was returned.
type ServiceError struct {
	Op      string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("annealing service: %s: %s", e.Op, e.Message)
}

package config

import "fmt"

// ConfigurationError reports a setting that prevents the service from
// starting. Nothing is served when one is returned.
type ConfigurationError struct {
	Key     string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration: %s: %v", msg, e.Cause)
	}
	return "configuration: " + msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

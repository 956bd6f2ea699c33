package revrange

import "fmt"

// ConfigError reports a block configuration that cannot be compiled. It is
// permanent: retrying with the same body fails the same way.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("show-diff config: %s", e.Reason)
	}
	return fmt.Sprintf("show-diff config: %s: %s", e.Field, e.Reason)
}

func missingField(field string) *ConfigError {
	return &ConfigError{Field: field, Reason: "missing required field"}
}

package domain

import "fmt"

// InvalidParameterError reports a configuration field that fails validation.
// The whole batch call fails before any path is computed; the engine never
// returns a partially populated result.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func indexedField(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}

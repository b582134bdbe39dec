package rin

import "fmt"

// InvalidParameterError is returned when a Params option is rejected
// outright rather than silently clamped — currently only
// sequence_separation below its floor of 3, per spec §6.
type InvalidParameterError struct {
	option string
	value  int
	floor  int
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("rin: %s=%d is below its minimum of %d", e.option, e.value, e.floor)
}

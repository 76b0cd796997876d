package heating

import (
	"errors"
	"fmt"
)

// ErrTemperatureOutOfRange is matched by every *RangeError.
var ErrTemperatureOutOfRange = errors.New("temperature must be between 14 and 30 degrees")

// RangeError reports a rejected setpoint.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("temperature %d out of range: %v", e.Value, ErrTemperatureOutOfRange)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrTemperatureOutOfRange
}

// validateTemperature keeps the upper check as ">= MaxTemperature+1" so that
// both bounds stay inclusive for integer input.
func validateTemperature(t int) error {
	if t < MinTemperature || t >= MaxTemperature+1 {
		return &RangeError{Value: t}
	}
	return nil
}

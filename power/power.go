// Package power implements the heat-transfer terms of the steady-state
// conductor heat balance.
//
// Every term returns its magnitude per unit conductor length (W.m-1) as the
// standard publishes it, together with the exact analytic derivative with
// respect to conductor temperature (W.m-1.K-1). Whether a term heats or
// cools the conductor is decided by the Balance it is added to, never by
// the term itself.
package power

import (
	"errors"
	"fmt"

	"linetemp/quantity"
)

// Term is one physical phenomenon acting on the conductor. t is the
// conductor temperature in Celsius.
type Term interface {
	Value(t quantity.Vec) (quantity.Vec, error)
	Derivative(t quantity.Vec) (quantity.Vec, error)
}

var (
	ErrMissingParam       = errors.New("power: missing parameter")
	ErrInvalidCalibration = errors.New("power: invalid resistance calibration")
	ErrUnknownKind        = errors.New("power: unknown term kind")
)

// MissingParamError names the field a term needed but did not get.
type MissingParamError struct {
	Term  Kind
	Field string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("power: %s requires parameter %s", e.Term, e.Field)
}

func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// InvalidCalibrationError is returned when both resistance calibration
// points share the same temperature, which leaves the slope undefined.
type InvalidCalibrationError struct {
	Index int
	T     float64
}

func (e *InvalidCalibrationError) Error() string {
	return fmt.Sprintf("power: THigh equals TLow (%g C) at index %d", e.T, e.Index)
}

func (e *InvalidCalibrationError) Is(target error) bool {
	return target == ErrInvalidCalibration
}

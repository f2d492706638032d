package power

import (
	"linetemp/quantity"
)

// JouleHeating is the IEEE Joule heating term with a resistance that is
// linear in temperature between two calibration points.
type JouleHeating struct {
	I       quantity.Vec
	TLow    quantity.Vec
	THigh   quantity.Vec
	RDCLow  quantity.Vec
	RDCHigh quantity.Vec

	slope quantity.Vec // dRDC/dT
}

// NewJouleHeating uses I, TLow, THigh, RDCLow and RDCHigh from p. The
// calibration temperatures must differ at every index.
func NewJouleHeating(p Params) (*JouleHeating, error) {
	err := checkRequired(Joule,
		field{"I", p.I},
		field{"TLow", p.TLow},
		field{"THigh", p.THigh},
		field{"RDCLow", p.RDCLow},
		field{"RDCHigh", p.RDCHigh},
	)
	if err != nil {
		return nil, err
	}
	n, err := quantity.Size(p.I, p.TLow, p.THigh, p.RDCLow, p.RDCHigh)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if p.THigh.At(i) == p.TLow.At(i) {
			return nil, &InvalidCalibrationError{Index: i, T: p.TLow.At(i)}
		}
	}
	slope, err := quantity.MapN(func(xs []float64) float64 {
		tLow, tHigh, rLow, rHigh := xs[0], xs[1], xs[2], xs[3]
		return (rHigh - rLow) / (tHigh - tLow)
	}, p.TLow, p.THigh, p.RDCLow, p.RDCHigh)
	if err != nil {
		return nil, err
	}
	return &JouleHeating{
		I:       p.I,
		TLow:    p.TLow,
		THigh:   p.THigh,
		RDCLow:  p.RDCLow,
		RDCHigh: p.RDCHigh,
		slope:   slope,
	}, nil
}

// Slope returns the resistance-temperature slope in Ohm.m-1.K-1.
func (j *JouleHeating) Slope() quantity.Vec {
	return j.slope.Clone()
}

// Resistance 线性电阻模型 RDC(T)
func (j *JouleHeating) Resistance(t quantity.Vec) (quantity.Vec, error) {
	return quantity.MapN(func(xs []float64) float64 {
		return xs[1] + xs[2]*(xs[0]-xs[3])
	}, t, j.RDCLow, j.slope, j.TLow)
}

// Value = RDC(T) * I^2
func (j *JouleHeating) Value(t quantity.Vec) (quantity.Vec, error) {
	rdc, err := j.Resistance(t)
	if err != nil {
		return nil, err
	}
	return quantity.MapN(func(xs []float64) float64 {
		return xs[0] * xs[1] * xs[1]
	}, rdc, j.I)
}

// Derivative is constant in t; t only sets the shape of the result.
func (j *JouleHeating) Derivative(t quantity.Vec) (quantity.Vec, error) {
	return quantity.MapN(func(xs []float64) float64 {
		return xs[1] * xs[2] * xs[2]
	}, t, j.slope, j.I)
}

package power

import (
	"linetemp/quantity"
)

const (
	celsiusToKelvin = 273.0

	// Stefan-Boltzmann constant scaled for temperatures divided by 100.
	radiativeCoefficient = 17.8
	// radiativeCoefficient / 100^4 = 1.78e-7, used with unscaled temperatures.
	radiativeDerivativeCoefficient = radiativeCoefficient / 1e8
)

// RadiativeCooling is the IEEE radiative loss of the conductor surface. It
// is positive when the conductor is hotter than the air.
type RadiativeCooling struct {
	Ta      quantity.Vec
	D       quantity.Vec
	Epsilon quantity.Vec
}

// NewRadiativeCooling uses Ta, D and Epsilon from p. Emissivity is not
// checked against [0, 1].
func NewRadiativeCooling(p Params) (*RadiativeCooling, error) {
	err := checkRequired(Radiative,
		field{"Ta", p.Ta},
		field{"D", p.D},
		field{"Epsilon", p.Epsilon},
	)
	if err != nil {
		return nil, err
	}
	if _, err := quantity.Size(p.Ta, p.D, p.Epsilon); err != nil {
		return nil, err
	}
	return &RadiativeCooling{
		Ta:      p.Ta,
		D:       p.D,
		Epsilon: p.Epsilon,
	}, nil
}

func fourth(x float64) float64 {
	x2 := x * x
	return x2 * x2
}

func (r *RadiativeCooling) Value(t quantity.Vec) (quantity.Vec, error) {
	return quantity.MapN(func(xs []float64) float64 {
		tc, ta, d, eps := xs[0], xs[1], xs[2], xs[3]
		return radiativeCoefficient * eps * d *
			(fourth((tc+celsiusToKelvin)/100.0) - fourth((ta+celsiusToKelvin)/100.0))
	}, t, r.Ta, r.D, r.Epsilon)
}

// Derivative 对导线温度求导，环境温度项为常数，求导后消失。
// Ta 仍参与广播，保证结果长度与 Value 一致。
func (r *RadiativeCooling) Derivative(t quantity.Vec) (quantity.Vec, error) {
	return quantity.MapN(func(xs []float64) float64 {
		tc, d, eps := xs[0], xs[2], xs[3]
		k := tc + celsiusToKelvin
		return 4.0 * radiativeDerivativeCoefficient * eps * d * k * k * k
	}, t, r.Ta, r.D, r.Epsilon)
}

// Package air implements the CIGRE air property correlations used by the
// convective terms. Temperatures are in Celsius, altitude in meters above
// sea level. A nil altitude is sea level.
//
// The formulas are applied as published; physically invalid inputs are not
// rejected and out-of-range temperatures extrapolate linearly.
package air

import (
	"math"

	"linetemp/quantity"
)

const (
	densityAltitudeFactor = -1.16e-04
	seaLevelVolumicMass   = 1.2925 // kg.m-3

	kinematicViscosity0 = 1.32e-05
	kinematicViscosity1 = 9.5e-08

	conductivity0 = 2.42e-02
	conductivity1 = 7.2e-05

	prandtl0 = 0.715
	prandtl1 = -2.5e-04
)

var seaLevel = quantity.Scalar(0)

func altitude(alt quantity.Vec) quantity.Vec {
	if alt == nil {
		return seaLevel
	}
	return alt
}

// RelativeDensity returns the ratio of air density at altitude alt to the
// density at sea level. tc only sets the shape of the result: temperature
// has no influence in this model.
func RelativeDensity(tc, alt quantity.Vec) (quantity.Vec, error) {
	return quantity.Map2(func(_, z float64) float64 {
		return math.Exp(densityAltitudeFactor * z)
	}, tc, altitude(alt))
}

// VolumicMass 空气密度 kg.m-3
func VolumicMass(tc, alt quantity.Vec) (quantity.Vec, error) {
	rd, err := RelativeDensity(tc, alt)
	if err != nil {
		return nil, err
	}
	return quantity.Scale(seaLevelVolumicMass, rd), nil
}

// KinematicViscosity 运动粘度 m2.s-1
func KinematicViscosity(tc quantity.Vec) quantity.Vec {
	return quantity.Map(func(t float64) float64 {
		return kinematicViscosity0 + kinematicViscosity1*t
	}, tc)
}

// DynamicViscosity 动力粘度 kg.m-1.s-1
func DynamicViscosity(tc, alt quantity.Vec) (quantity.Vec, error) {
	rho, err := VolumicMass(tc, alt)
	if err != nil {
		return nil, err
	}
	return quantity.Mul(KinematicViscosity(tc), rho)
}

// ThermalConductivity 导热系数 W.m-1.K-1
func ThermalConductivity(tc quantity.Vec) quantity.Vec {
	return quantity.Map(func(t float64) float64 {
		return conductivity0 + conductivity1*t
	}, tc)
}

// Prandtl returns the Prandtl number, the ratio of momentum diffusivity to
// thermal diffusivity.
func Prandtl(tc quantity.Vec) quantity.Vec {
	return quantity.Map(func(t float64) float64 {
		return prandtl0 + prandtl1*t
	}, tc)
}

// Properties 某一温度、海拔下的全部空气物性
type Properties struct {
	Temperature         quantity.Vec `json:"temperature"`
	Altitude            quantity.Vec `json:"altitude"`
	RelativeDensity     quantity.Vec `json:"relative_density"`
	VolumicMass         quantity.Vec `json:"volumic_mass"`
	KinematicViscosity  quantity.Vec `json:"kinematic_viscosity"`
	DynamicViscosity    quantity.Vec `json:"dynamic_viscosity"`
	ThermalConductivity quantity.Vec `json:"thermal_conductivity"`
	Prandtl             quantity.Vec `json:"prandtl"`
}

// Evaluate computes every correlation for the same (tc, alt) pair.
func Evaluate(tc, alt quantity.Vec) (*Properties, error) {
	alt = altitude(alt)
	rd, err := RelativeDensity(tc, alt)
	if err != nil {
		return nil, err
	}
	rho, err := VolumicMass(tc, alt)
	if err != nil {
		return nil, err
	}
	mu, err := DynamicViscosity(tc, alt)
	if err != nil {
		return nil, err
	}
	return &Properties{
		Temperature:         tc,
		Altitude:            alt,
		RelativeDensity:     rd,
		VolumicMass:         rho,
		KinematicViscosity:  KinematicViscosity(tc),
		DynamicViscosity:    mu,
		ThermalConductivity: ThermalConductivity(tc),
		Prandtl:             Prandtl(tc),
	}, nil
}

package air

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"linetemp/quantity"
)

func TestRelativeDensitySeaLevel(t *testing.T) {
	for _, tc := range []float64{-40, 0, 20, 45.5} {
		rd, err := RelativeDensity(quantity.Scalar(tc), quantity.Scalar(0))
		require.NoError(t, err)
		assert.Equal(t, 1.0, rd.Float())

		rd, err = RelativeDensity(quantity.Scalar(tc), nil)
		require.NoError(t, err)
		assert.Equal(t, 1.0, rd.Float())
	}
}

func TestRelativeDensityDecreasesWithAltitude(t *testing.T) {
	alt := quantity.Of(0, 10, 500, 1000, 2500, 4000)
	rd, err := RelativeDensity(quantity.Scalar(15), alt)
	require.NoError(t, err)
	require.Len(t, rd, len(alt))
	for i := 1; i < len(rd); i++ {
		assert.Less(t, rd[i], rd[i-1])
		assert.Greater(t, rd[i], 0.0)
	}
	assert.InDelta(t, math.Exp(-0.116), rd[3], 1e-15)
}

func TestRelativeDensityIgnoresTemperature(t *testing.T) {
	a, err := RelativeDensity(quantity.Scalar(-10), quantity.Scalar(1200))
	require.NoError(t, err)
	b, err := RelativeDensity(quantity.Scalar(35), quantity.Scalar(1200))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRelativeDensityShape(t *testing.T) {
	rd, err := RelativeDensity(quantity.Of(1, 2, 3), quantity.Scalar(100))
	require.NoError(t, err)
	assert.Len(t, rd, 3)

	rd, err = RelativeDensity(quantity.Scalar(1), quantity.Of(0, 100))
	require.NoError(t, err)
	assert.Len(t, rd, 2)

	_, err = RelativeDensity(quantity.Of(1, 2, 3), quantity.Of(0, 100))
	assert.ErrorIs(t, err, quantity.ErrShapeMismatch)
}

func TestVolumicMass(t *testing.T) {
	rho, err := VolumicMass(quantity.Scalar(0), quantity.Scalar(0))
	require.NoError(t, err)
	assert.Equal(t, 1.2925, rho.Float())
}

func TestLinearFits(t *testing.T) {
	assert.InDelta(t, 1.32e-5+9.5e-8*20, KinematicViscosity(quantity.Scalar(20)).Float(), 1e-18)
	assert.InDelta(t, 2.42e-2+7.2e-5*20, ThermalConductivity(quantity.Scalar(20)).Float(), 1e-15)
	assert.InDelta(t, 0.715-2.5e-4*20, Prandtl(quantity.Scalar(20)).Float(), 1e-15)
}

func TestDynamicViscosityIdentity(t *testing.T) {
	tc := quantity.Of(-20, 0, 15, 40)
	alt := quantity.Of(0, 300, 1500, 3000)
	mu, err := DynamicViscosity(tc, alt)
	require.NoError(t, err)
	rho, err := VolumicMass(tc, alt)
	require.NoError(t, err)
	nu := KinematicViscosity(tc)
	for i := range mu {
		assert.Equal(t, nu[i]*rho[i], mu[i])
	}
}

// 数组结果应与逐个标量计算的结果一致
func TestBroadcastMatchesScalar(t *testing.T) {
	tc := quantity.Of(-5, 10, 25, 33.3, 50)
	alt := quantity.Scalar(850)

	mu, err := DynamicViscosity(tc, alt)
	require.NoError(t, err)
	rho, err := VolumicMass(tc, alt)
	require.NoError(t, err)
	nu := KinematicViscosity(tc)
	k := ThermalConductivity(tc)
	pr := Prandtl(tc)

	for i, x := range tc {
		s := quantity.Scalar(x)
		m, err := DynamicViscosity(s, alt)
		require.NoError(t, err)
		r, err := VolumicMass(s, alt)
		require.NoError(t, err)
		assert.Equal(t, m.Float(), mu[i])
		assert.Equal(t, r.Float(), rho[i])
		assert.Equal(t, KinematicViscosity(s).Float(), nu[i])
		assert.Equal(t, ThermalConductivity(s).Float(), k[i])
		assert.Equal(t, Prandtl(s).Float(), pr[i])
	}
}

func TestEvaluate(t *testing.T) {
	p, err := Evaluate(quantity.Of(0, 20), nil)
	require.NoError(t, err)
	assert.True(t, floats.Equal(p.RelativeDensity, []float64{1, 1}))
	assert.True(t, floats.Equal(p.VolumicMass, []float64{1.2925, 1.2925}))
	assert.Len(t, p.Prandtl, 2)

	_, err = Evaluate(quantity.Of(0, 20), quantity.Of(1, 2, 3))
	assert.ErrorIs(t, err, quantity.ErrShapeMismatch)
}

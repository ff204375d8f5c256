package FD2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformVelocity(box Box, nx, ny int, u, v float64) (vf VectorField) {
	vf = NewVectorField(box, nx, ny, ZeroExtrapolation())
	vf.U.AddScalar(u)
	vf.V.AddScalar(v)
	return
}

func TestAdvectConstantField(t *testing.T) {
	// A spatially constant field is invariant under advection with any
	// velocity when boundary samples clamp
	var (
		c   = 2.5
		vel = uniformVelocity(testBox(), 16, 16, 1.3, -0.7)
	)
	phi := NewScalarField(testBox(), 32, 32, BoundaryExtrapolation(), c)
	for _, dt := range []float64{0.5, 1.0, 4.0} {
		R := AdvectScalar(phi, vel, dt)
		for _, val := range R.V.Data() {
			assert.InDelta(t, c, val, 1.e-12)
		}
		M := MacCormack(phi, vel, dt)
		for _, val := range M.V.Data() {
			assert.InDelta(t, c, val, 1.e-12)
		}
	}
}

func TestAdvectZeroVelocityIsIdentity(t *testing.T) {
	var (
		vel = NewVectorField(testBox(), 16, 16, ZeroExtrapolation())
	)
	phi := rampField(testBox(), 24, 24, BoundaryExtrapolation())
	R := AdvectScalar(phi, vel, 1.0)
	assert.InDeltaSlice(t, phi.V.Data(), R.V.Data(), 1.e-10)
	M := MacCormack(phi, vel, 1.0)
	assert.InDeltaSlice(t, phi.V.Data(), M.V.Data(), 1.e-10)
}

func TestMacCormackNoOvershoot(t *testing.T) {
	// Sharp 0/1 step transported diagonally; the clamped corrector must
	// not generate values outside the source field's range
	var (
		vel = uniformVelocity(testBox(), 16, 16, 2.0, 1.0)
	)
	phi := NewScalarField(testBox(), 48, 48, BoundaryExtrapolation())
	for j := 0; j < phi.Ny; j++ {
		for i := 0; i < phi.Nx; i++ {
			if i < phi.Nx/2 {
				phi.V.Set(j, i, 1)
			}
		}
	}
	cur := phi
	for step := 0; step < 10; step++ {
		cur = MacCormack(cur, vel, 1.0)
		assert.GreaterOrEqual(t, cur.V.Min(), -1.e-12, "step %d", step)
		assert.LessOrEqual(t, cur.V.Max(), 1.+1.e-12, "step %d", step)
	}
}

func TestAdvectVectorConstant(t *testing.T) {
	// Self-advection of a uniform velocity field leaves it unchanged in
	// the interior where the stencil never leaves the sample lattice
	var (
		vel = uniformVelocity(testBox(), 20, 20, 0.4, 0.2)
	)
	// Small dt keeps every interior backtrace inside the lattice
	R := AdvectVector(vel, vel, 0.5)
	for j := 1; j < vel.Ny-1; j++ {
		for i := 1; i < vel.Nx; i++ {
			assert.InDelta(t, 0.4, R.U.At(j, i), 1.e-12)
		}
	}
	for j := 1; j < vel.Ny; j++ {
		for i := 1; i < vel.Nx-1; i++ {
			assert.InDelta(t, 0.2, R.V.At(j, i), 1.e-12)
		}
	}
}

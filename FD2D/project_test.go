package FD2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRemovesDivergence(t *testing.T) {
	var (
		box = testBox()
		nx  = 64
		ny  = 64
	)
	vel := NewVectorField(box, nx, ny, ZeroExtrapolation())
	for j := 0; j < ny; j++ {
		for i := 0; i <= nx; i++ {
			x, y := vel.UPos(i, j)
			vel.U.Set(j, i, math.Sin(2*math.Pi*x/box.Lx)*math.Cos(2*math.Pi*y/box.Ly))
		}
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			x, y := vel.VPos(i, j)
			vel.V.Set(j, i, math.Cos(4*math.Pi*x/box.Lx)+0.3*y/box.Ly)
		}
	}
	assert.Greater(t, vel.MaxDivergence(), 0.01)

	ps := NewPressureSolver(box, nx, ny, 3000, 1.e-6)
	R, pressure, stats := ps.Project(vel)

	assert.True(t, stats.Converged)
	assert.Less(t, stats.Residual, 1.e-6)
	assert.Less(t, R.MaxDivergence(), 1.e-4)
	// Wall-normal faces stay closed
	for j := 0; j < ny; j++ {
		assert.Equal(t, 0., R.U.At(j, 0))
		assert.Equal(t, 0., R.U.At(j, nx))
	}
	for i := 0; i < nx; i++ {
		assert.Equal(t, 0., R.V.At(0, i))
		assert.Equal(t, 0., R.V.At(ny, i))
	}
	// Gauge fixed: pressure has zero mean
	assert.InDelta(t, 0., pressure.Sum()/float64(nx*ny), 1.e-10)
}

func TestProjectZeroFieldIsTrivial(t *testing.T) {
	var (
		box = testBox()
	)
	vel := NewVectorField(box, 16, 16, ZeroExtrapolation())
	ps := NewPressureSolver(box, 16, 16, 500, 1.e-5)
	R, pressure, stats := ps.Project(vel)
	assert.True(t, stats.Converged)
	assert.Equal(t, 0, stats.Iterations)
	assert.Equal(t, 0., R.MaxDivergence())
	assert.Equal(t, 0., pressure.V.Max())
	assert.Equal(t, 0., pressure.V.Min())
}

func TestProjectIsIdempotent(t *testing.T) {
	// Projecting an already divergence-free field changes almost nothing
	var (
		box = testBox()
		nx  = 32
		ny  = 32
	)
	vel := NewVectorField(box, nx, ny, ZeroExtrapolation())
	for j := 0; j < ny; j++ {
		for i := 0; i <= nx; i++ {
			x, y := vel.UPos(i, j)
			vel.U.Set(j, i, math.Sin(math.Pi*x/box.Lx)*math.Cos(math.Pi*y/box.Ly))
		}
	}
	ps := NewPressureSolver(box, nx, ny, 2000, 1.e-6)
	R1, _, _ := ps.Project(vel)
	R2, _, _ := ps.Project(R1)
	assert.InDeltaSlice(t, R1.U.Data(), R2.U.Data(), 1.e-4)
	assert.InDeltaSlice(t, R1.V.Data(), R2.V.Data(), 1.e-4)
}

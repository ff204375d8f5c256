package FD2D

import (
	"math"

	"github.com/notargets/goplume/utils"
	"gonum.org/v1/gonum/floats"
)

/*
	Incompressible projection: given a tentative velocity v* the solver
	computes the cell divergence, solves the discrete Poisson equation
	Lap(p) = div(v*) under homogeneous Neumann wall conditions, and
	subtracts the discrete pressure gradient from the interior faces.
	Because the correction and the assembled Laplacian share the same
	stencil, the post-projection divergence equals the linear-solve
	residual exactly.

	The pure-Neumann Laplacian carries the constant nullspace, so the
	right hand side is mean-shifted for compatibility and the pressure
	is mean-shifted afterwards to fix the gauge; neither shift affects
	the gradient.
*/

// ProjectionStats reports the linear solve outcome for one projection.
// Converged == false is recoverable: the best-effort pressure is still
// applied and only transiently degrades the field.
type ProjectionStats struct {
	Iterations int
	Residual   float64 // Relative 2-norm residual of the Poisson solve
	Converged  bool
}

// PressureSolver owns the assembled Neumann Laplacian for one grid
// resolution plus the conjugate-gradient scratch vectors. Assembly
// happens once; every step reuses the CSR matrix.
type PressureSolver struct {
	Nx, Ny        int
	Dx, Dy        float64
	MaxIterations int
	Tolerance     float64
	A             utils.CSR // Negated 5-point Laplacian, positive semi-definite
	p, r, d, q    []float64 // CG scratch
}

func NewPressureSolver(box Box, nx, ny, maxIterations int, tolerance float64) (ps *PressureSolver) {
	var (
		n = nx * ny
	)
	ps = &PressureSolver{
		Nx:            nx,
		Ny:            ny,
		Dx:            box.Lx / float64(nx),
		Dy:            box.Ly / float64(ny),
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
		p:             make([]float64, n),
		r:             make([]float64, n),
		d:             make([]float64, n),
		q:             make([]float64, n),
	}
	ps.assemble()
	return
}

// assemble builds A = -Lap with homogeneous Neumann walls: each missing
// neighbor simply drops out of the stencil, which leaves the row sum at
// zero and the matrix symmetric positive semi-definite.
func (ps *PressureSolver) assemble() {
	var (
		nx, ny = ps.Nx, ps.Ny
		idx2   = 1. / (ps.Dx * ps.Dx)
		idy2   = 1. / (ps.Dy * ps.Dy)
		A      = utils.NewDOK(nx*ny, nx*ny)
	)
	cell := func(i, j int) int { return j*nx + i }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			n := cell(i, j)
			var diag float64
			if i > 0 {
				A.Set(n, cell(i-1, j), -idx2)
				diag += idx2
			}
			if i < nx-1 {
				A.Set(n, cell(i+1, j), -idx2)
				diag += idx2
			}
			if j > 0 {
				A.Set(n, cell(i, j-1), -idy2)
				diag += idy2
			}
			if j < ny-1 {
				A.Set(n, cell(i, j+1), -idy2)
				diag += idy2
			}
			A.Set(n, n, diag)
		}
	}
	ps.A = A.ToCSR()
}

// Project returns a divergence-free copy of vel along with the pressure
// field used for the correction. Wall-normal velocities are zeroed
// before the divergence is measured, so the projected field satisfies
// the no-through boundary condition as well.
func (ps *PressureSolver) Project(vel VectorField) (R VectorField, pressure ScalarField, stats ProjectionStats) {
	var (
		nx, ny = ps.Nx, ps.Ny
	)
	R = vel.Copy()
	R.EnforceWallBC()

	div := R.Divergence()
	rhs := ps.r
	copy(rhs, div.V.Data())
	// A = -Lap, so Lap(p) = div becomes A p = -div
	floats.Scale(-1, rhs)
	meanShift(rhs)

	stats = ps.solveCG(rhs)

	pressure = NewScalarField(vel.Box, nx, ny, ZeroExtrapolation())
	copy(pressure.V.Data(), ps.p)

	// Subtract the pressure gradient from interior faces; boundary
	// faces keep their imposed zero normal velocity.
	parRange(ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 1; i < nx; i++ {
				g := (ps.p[j*nx+i] - ps.p[j*nx+i-1]) / ps.Dx
				R.U.Set(j, i, R.U.At(j, i)-g)
			}
		}
	})
	parRange(ny-1, func(jmin, jmax int) {
		for jj := jmin; jj < jmax; jj++ {
			j := jj + 1
			for i := 0; i < nx; i++ {
				g := (ps.p[j*nx+i] - ps.p[(j-1)*nx+i]) / ps.Dy
				R.V.Set(j, i, R.V.At(j, i)-g)
			}
		}
	})
	return
}

// solveCG runs plain conjugate gradients on A p = rhs. The zero vector
// seeds every solve; pressure is not carried between steps.
func (ps *PressureSolver) solveCG(rhs []float64) (stats ProjectionStats) {
	var (
		n = len(rhs)
		A = ps.A
	)
	for i := 0; i < n; i++ {
		ps.p[i] = 0
	}
	copy(ps.r, rhs)
	copy(ps.d, rhs)

	rho := floats.Dot(ps.r, ps.r)
	norm0 := math.Sqrt(rho)
	if norm0 == 0 {
		stats = ProjectionStats{Iterations: 0, Residual: 0, Converged: true}
		return
	}
	tol := ps.Tolerance * norm0

	var it int
	for it = 0; it < ps.MaxIterations; it++ {
		A.MulVec(ps.q, ps.d)
		dq := floats.Dot(ps.d, ps.q)
		if dq == 0 {
			break
		}
		alpha := rho / dq
		floats.AddScaled(ps.p, alpha, ps.d)
		floats.AddScaled(ps.r, -alpha, ps.q)
		rhoNext := floats.Dot(ps.r, ps.r)
		if math.Sqrt(rhoNext) <= tol {
			rho = rhoNext
			it++
			break
		}
		beta := rhoNext / rho
		rho = rhoNext
		for i := 0; i < n; i++ {
			ps.d[i] = ps.r[i] + beta*ps.d[i]
		}
	}
	meanShift(ps.p)
	res := math.Sqrt(rho) / norm0
	stats = ProjectionStats{
		Iterations: it,
		Residual:   res,
		Converged:  res <= ps.Tolerance,
	}
	return
}

// meanShift removes the mean, used for Neumann compatibility on the RHS
// and for the pressure gauge.
func meanShift(v []float64) {
	var mean float64
	for _, val := range v {
		mean += val
	}
	mean /= float64(len(v))
	for i := range v {
		v[i] -= mean
	}
}

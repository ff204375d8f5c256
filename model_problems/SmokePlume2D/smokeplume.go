package SmokePlume2D

import (
	"fmt"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/goplume/FD2D"
	"github.com/notargets/goplume/InputParameters"
	"github.com/notargets/goplume/utils"
)

/*
	Buoyant smoke plume on a MAC grid. The smoke density lives on its own
	cell-centered grid with clamped (zero-flux) walls; the velocity lives
	on a coarser staggered grid with zero extrapolation. The two grids
	only meet through bilinear sampling.

	Step order, fixed: inject -> advect smoke (MacCormack) -> diffuse
	smoke -> buoyancy from the fresh density -> advect velocity
	(semi-Lagrangian) -> diffuse velocity -> apply buoyancy -> project.
	Every operator returns a new field; the model state is only replaced
	after the whole step checks out finite, so an unstable step leaves
	the last good snapshot in place.
*/

type SmokePlume struct {
	Params     *InputParameters.PlumeParameters
	Box        FD2D.Box
	Velocity   FD2D.VectorField
	Smoke      FD2D.ScalarField
	Background FD2D.ScalarField // Two-gas ambient density, unset otherwise
	SourceMask FD2D.ScalarField
	Injection  utils.Matrix // InflowRate * SourceMask, precomputed
	Solver     *FD2D.PressureSolver
	Rec        Recorder
	StepCount  int
	LastStats  FD2D.ProjectionStats
	// Live chart state
	PlotOnce           sync.Once
	chart              *chart2d.Chart2D
	colorMap           *utils2.ColorMap
	stepHist, massHist []float64
}

func NewSmokePlume(pp *InputParameters.PlumeParameters, rec Recorder) (sp *SmokePlume, err error) {
	if err = validate(pp); err != nil {
		return
	}
	var (
		box  = FD2D.Box{Lx: pp.DomainX, Ly: pp.DomainY}
		mask = DiskSource{X: pp.SourceX, Y: pp.SourceY, Radius: pp.SourceRadius}.
			Mask(box, pp.SmokeResX, pp.SmokeResY)
	)
	sp = &SmokePlume{
		Params:     pp,
		Box:        box,
		Velocity:   FD2D.NewVectorField(box, pp.VelocityResX, pp.VelocityResY, FD2D.ZeroExtrapolation()),
		Smoke:      FD2D.NewScalarField(box, pp.SmokeResX, pp.SmokeResY, FD2D.BoundaryExtrapolation()),
		SourceMask: mask,
		Injection:  mask.V.Copy().Scale(pp.InflowRate),
		Solver: FD2D.NewPressureSolver(box, pp.VelocityResX, pp.VelocityResY,
			pp.PoissonMaxIterations, pp.PoissonTolerance),
		Rec: rec,
	}
	if pp.TwoGas != nil {
		sp.Background = BackgroundField(box, pp.SmokeResX, pp.SmokeResY,
			pp.TwoGas.Gas1Density, pp.TwoGas.Gas2Density, pp.TwoGas.InterfaceX)
	}
	return
}

func validate(pp *InputParameters.PlumeParameters) error {
	switch {
	case pp.DomainX <= 0 || pp.DomainY <= 0:
		return &ConfigurationError{"DomainX/DomainY", "domain extents must be positive"}
	case pp.VelocityResX < 2 || pp.VelocityResY < 2:
		return &ConfigurationError{"VelocityResX/VelocityResY", "velocity grid needs at least 2 cells per axis"}
	case pp.SmokeResX < 2 || pp.SmokeResY < 2:
		return &ConfigurationError{"SmokeResX/SmokeResY", "smoke grid needs at least 2 cells per axis"}
	case pp.DT <= 0:
		return &ConfigurationError{"DT", "time step must be positive"}
	case pp.NTimeSteps <= 0:
		return &ConfigurationError{"NTimeSteps", "step count must be positive"}
	case pp.Viscosity < 0:
		return &ConfigurationError{"Viscosity", "must be non-negative"}
	case pp.Diffusivity < 0:
		return &ConfigurationError{"Diffusivity", "must be non-negative"}
	case pp.InflowRate < 0:
		return &ConfigurationError{"InflowRate", "must be non-negative"}
	case pp.InflowRate > 0 && pp.SourceRadius <= 0:
		return &ConfigurationError{"SourceRadius", "must be positive when inflow is active"}
	case pp.PoissonTolerance <= 0:
		return &ConfigurationError{"PoissonTolerance", "must be positive"}
	case pp.PoissonMaxIterations <= 0:
		return &ConfigurationError{"PoissonMaxIterations", "must be positive"}
	}
	box := FD2D.Box{Lx: pp.DomainX, Ly: pp.DomainY}
	if limit := FD2D.DiffusionStabilityLimit(box, pp.SmokeResX, pp.SmokeResY); pp.Diffusivity*pp.DT > limit {
		return &ConfigurationError{"Diffusivity",
			fmt.Sprintf("Diffusivity*DT = %g exceeds the explicit stability limit %g on the smoke grid", pp.Diffusivity*pp.DT, limit)}
	}
	if limit := FD2D.DiffusionStabilityLimit(box, pp.VelocityResX, pp.VelocityResY); pp.Viscosity*pp.DT > limit {
		return &ConfigurationError{"Viscosity",
			fmt.Sprintf("Viscosity*DT = %g exceeds the explicit stability limit %g on the velocity grid", pp.Viscosity*pp.DT, limit)}
	}
	if tg := pp.TwoGas; tg != nil {
		if tg.InterfaceX <= 0 || tg.InterfaceX >= pp.DomainX {
			return &ConfigurationError{"TwoGas.InterfaceX", "interface must lie inside the domain"}
		}
		if tg.Gas1Density < 0 || tg.Gas2Density < 0 {
			return &ConfigurationError{"TwoGas", "gas densities must be non-negative"}
		}
	}
	return nil
}

// BuoyancyField evaluates the vertical force density on the smoke grid.
// Single-gas: smoke * gravity. Two-gas: (background - smoke) * gravity,
// with the smoke value read as an absolute density.
func (sp *SmokePlume) BuoyancyField(smoke FD2D.ScalarField) (b FD2D.ScalarField) {
	var (
		g = sp.Params.Gravity
	)
	if sp.Params.TwoGas != nil {
		b = sp.Background.Copy()
		b.V.Subtract(smoke.V).Scale(g)
		return
	}
	b = smoke.Copy()
	b.V.Scale(g)
	return
}

// Step advances the model one tick of DT and commits the new state only
// if all fields stay finite.
func (sp *SmokePlume) Step() (err error) {
	var (
		pp = sp.Params
		dt = pp.DT
	)
	smoke := sp.Smoke.Copy()
	if pp.InflowRate > 0 {
		smoke.V.Add(sp.Injection)
	}
	smoke = FD2D.MacCormack(smoke, sp.Velocity, dt)
	smoke = FD2D.DiffuseScalar(smoke, pp.Diffusivity, dt)

	b := sp.BuoyancyField(smoke)

	vel := FD2D.AdvectVector(sp.Velocity, sp.Velocity, dt)
	vel = FD2D.DiffuseVector(vel, pp.Viscosity, dt)
	sp.applyBuoyancy(vel, b, dt)

	vel, _, stats := sp.Solver.Project(vel)
	if !stats.Converged {
		fmt.Printf("WARNING: pressure solve hit the iteration cap at step %d, residual = %10.3e\n",
			sp.StepCount, stats.Residual)
	}

	if !smoke.V.IsFinite() {
		err = &NumericalInstabilityError{Step: sp.StepCount, Field: "smoke"}
		return
	}
	if !vel.IsFinite() {
		err = &NumericalInstabilityError{Step: sp.StepCount, Field: "velocity"}
		return
	}
	sp.Smoke, sp.Velocity, sp.LastStats = smoke, vel, stats
	sp.StepCount++
	return
}

// applyBuoyancy adds dt-scaled vertical force to every V face, sampling
// the force density at the face locations. U faces are untouched.
func (sp *SmokePlume) applyBuoyancy(vel FD2D.VectorField, b FD2D.ScalarField, dt float64) {
	for j := 0; j <= vel.Ny; j++ {
		for i := 0; i < vel.Nx; i++ {
			x, y := vel.VPos(i, j)
			vel.V.Set(j, i, vel.V.At(j, i)+dt*b.Sample(x, y))
		}
	}
}

// record hands the recorder a snapshot of the committed state: density
// copy plus velocity resampled to the density grid's centers.
func (sp *SmokePlume) record() error {
	if sp.Rec == nil {
		return nil
	}
	U, V := FD2D.ResampleToCenters(sp.Velocity, sp.Smoke.Nx, sp.Smoke.Ny)
	return sp.Rec.Record(sp.StepCount-1, sp.Smoke.V.Copy(), U, V)
}

// Run steps the model NTimeSteps times. A numerical instability aborts
// immediately; recorder failures are logged and the first one comes
// back as the returned error after the run completes.
func (sp *SmokePlume) Run(showGraph bool, graphDelay ...time.Duration) (err error) {
	var (
		pp    = sp.Params
		start = time.Now()
	)
	for tstep := 0; tstep < pp.NTimeSteps; tstep++ {
		if errStep := sp.Step(); errStep != nil {
			return errStep
		}
		if errRec := sp.record(); errRec != nil {
			fmt.Printf("WARNING: recorder failed at step %d: %s\n", tstep, errRec.Error())
			if err == nil {
				err = errRec
			}
		}
		sp.Plot(showGraph, graphDelay)
		if pp.LogFrequency > 0 && tstep%pp.LogFrequency == 0 {
			fmt.Printf("Step = %4d, mass = %12.4f, max_div = %10.3e, cg_its = %4d, elapsed = %8.3fs\n",
				tstep, sp.Smoke.Sum(), sp.Velocity.MaxDivergence(), sp.LastStats.Iterations,
				time.Since(start).Seconds())
		}
	}
	return
}

package FD2D

import (
	"math"

	"github.com/notargets/goplume/utils"
)

/*
	VectorField uses the Marker-And-Cell (MAC) staggered layout: the U
	component is sampled at the midpoints of vertical cell faces, the V
	component at the midpoints of horizontal cell faces. For an (Nx,Ny)
	cell grid that gives U samples at (i dx, (j+1/2)dy) for i in [0,Nx]
	and V samples at ((i+1/2)dx, j dy) for j in [0,Ny]. Staggering the
	components against the pressure samples is what keeps the projection
	free of checkerboard modes.
*/
type VectorField struct {
	Box    Box
	Nx, Ny int
	U      utils.Matrix // (Ny, Nx+1), x-component on vertical faces
	V      utils.Matrix // (Ny+1, Nx), y-component on horizontal faces
	Extrap Extrapolation
}

func NewVectorField(box Box, nx, ny int, extrap Extrapolation) (vf VectorField) {
	vf = VectorField{
		Box:    box,
		Nx:     nx,
		Ny:     ny,
		U:      utils.NewMatrix(ny, nx+1),
		V:      utils.NewMatrix(ny+1, nx),
		Extrap: extrap,
	}
	return
}

func (vf VectorField) Dx() float64 { return vf.Box.Lx / float64(vf.Nx) }
func (vf VectorField) Dy() float64 { return vf.Box.Ly / float64(vf.Ny) }

// UPos returns the physical location of U sample (i,j).
func (vf VectorField) UPos(i, j int) (x, y float64) {
	x = float64(i) * vf.Dx()
	y = (float64(j) + 0.5) * vf.Dy()
	return
}

// VPos returns the physical location of V sample (i,j).
func (vf VectorField) VPos(i, j int) (x, y float64) {
	x = (float64(i) + 0.5) * vf.Dx()
	y = float64(j) * vf.Dy()
	return
}

func (vf VectorField) atU(i, j int) float64 {
	if i >= 0 && i <= vf.Nx && j >= 0 && j < vf.Ny {
		return vf.U.At(j, i)
	}
	switch vf.Extrap.Type {
	case ExtrapBoundary:
		return vf.U.At(clampInt(j, 0, vf.Ny-1), clampInt(i, 0, vf.Nx))
	case ExtrapConstant:
		return vf.Extrap.Value
	default:
		return 0
	}
}

func (vf VectorField) atV(i, j int) float64 {
	if i >= 0 && i < vf.Nx && j >= 0 && j <= vf.Ny {
		return vf.V.At(j, i)
	}
	switch vf.Extrap.Type {
	case ExtrapBoundary:
		return vf.V.At(clampInt(j, 0, vf.Ny), clampInt(i, 0, vf.Nx-1))
	case ExtrapConstant:
		return vf.Extrap.Value
	default:
		return 0
	}
}

// SampleU bilinearly interpolates the x-component at a physical point,
// honoring the U stagger offset.
func (vf VectorField) SampleU(x, y float64) float64 {
	var (
		dx, dy = vf.Dx(), vf.Dy()
	)
	fi := x / dx
	fj := y/dy - 0.5
	i0 := int(math.Floor(fi))
	j0 := int(math.Floor(fj))
	tx := fi - float64(i0)
	ty := fj - float64(j0)
	return (1-tx)*(1-ty)*vf.atU(i0, j0) + tx*(1-ty)*vf.atU(i0+1, j0) +
		(1-tx)*ty*vf.atU(i0, j0+1) + tx*ty*vf.atU(i0+1, j0+1)
}

// SampleV bilinearly interpolates the y-component at a physical point,
// honoring the V stagger offset.
func (vf VectorField) SampleV(x, y float64) float64 {
	var (
		dx, dy = vf.Dx(), vf.Dy()
	)
	fi := x/dx - 0.5
	fj := y / dy
	i0 := int(math.Floor(fi))
	j0 := int(math.Floor(fj))
	tx := fi - float64(i0)
	ty := fj - float64(j0)
	return (1-tx)*(1-ty)*vf.atV(i0, j0) + tx*(1-ty)*vf.atV(i0+1, j0) +
		(1-tx)*ty*vf.atV(i0, j0+1) + tx*ty*vf.atV(i0+1, j0+1)
}

// Sample returns both interpolated components at a physical point.
func (vf VectorField) Sample(x, y float64) (u, v float64) {
	u = vf.SampleU(x, y)
	v = vf.SampleV(x, y)
	return
}

func (vf VectorField) Copy() (R VectorField) {
	R = vf
	R.U = vf.U.Copy()
	R.V = vf.V.Copy()
	return
}

// EnforceWallBC zeroes the normal velocity components on the domain
// boundary faces.
func (vf VectorField) EnforceWallBC() {
	for j := 0; j < vf.Ny; j++ {
		vf.U.Set(j, 0, 0)
		vf.U.Set(j, vf.Nx, 0)
	}
	for i := 0; i < vf.Nx; i++ {
		vf.V.Set(0, i, 0)
		vf.V.Set(vf.Ny, i, 0)
	}
}

// Divergence computes the discrete divergence at cell centers.
func (vf VectorField) Divergence() (div ScalarField) {
	var (
		dx, dy = vf.Dx(), vf.Dy()
	)
	div = NewScalarField(vf.Box, vf.Nx, vf.Ny, ZeroExtrapolation())
	parRange(vf.Ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 0; i < vf.Nx; i++ {
				d := (vf.U.At(j, i+1)-vf.U.At(j, i))/dx +
					(vf.V.At(j+1, i)-vf.V.At(j, i))/dy
				div.V.Set(j, i, d)
			}
		}
	})
	return
}

// MaxDivergence returns the maximum absolute cell divergence, the
// incompressibility diagnostic checked after every projection.
func (vf VectorField) MaxDivergence() (maxDiv float64) {
	var (
		dx, dy = vf.Dx(), vf.Dy()
	)
	for j := 0; j < vf.Ny; j++ {
		for i := 0; i < vf.Nx; i++ {
			d := (vf.U.At(j, i+1)-vf.U.At(j, i))/dx +
				(vf.V.At(j+1, i)-vf.V.At(j, i))/dy
			if a := math.Abs(d); a > maxDiv {
				maxDiv = a
			}
		}
	}
	return
}

// IsFinite reports whether both component arrays contain only finite
// values.
func (vf VectorField) IsFinite() bool {
	return vf.U.IsFinite() && vf.V.IsFinite()
}

// ResampleToCenters evaluates both velocity components at the cell
// centers of an (nx,ny) grid over the same domain, producing the
// centered arrays used for snapshots and buoyancy coupling.
func ResampleToCenters(vf VectorField, nx, ny int) (U, V utils.Matrix) {
	var (
		dx = vf.Box.Lx / float64(nx)
		dy = vf.Box.Ly / float64(ny)
	)
	U = utils.NewMatrix(ny, nx)
	V = utils.NewMatrix(ny, nx)
	parRange(ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			y := (float64(j) + 0.5) * dy
			for i := 0; i < nx; i++ {
				x := (float64(i) + 0.5) * dx
				U.Set(j, i, vf.SampleU(x, y))
				V.Set(j, i, vf.SampleV(x, y))
			}
		}
	})
	return
}

package FD2D

import (
	"math"

	"github.com/notargets/goplume/utils"
)

/*
	All fields share one axis-aligned rectangular domain [0,Lx] x [0,Ly]
	regardless of their sample resolution. Scalar quantities live at cell
	centers; velocity components live on cell faces (see vectorfield.go).
	Queries outside the stored samples never fail - each field carries an
	extrapolation policy that resolves them.
*/

type ExtrapType uint8

const (
	ExtrapZero ExtrapType = iota
	ExtrapConstant
	ExtrapBoundary
)

func (et ExtrapType) Print() (s string) {
	switch et {
	case ExtrapZero:
		s = "zero"
	case ExtrapConstant:
		s = "constant"
	case ExtrapBoundary:
		s = "boundary"
	}
	return
}

// Extrapolation resolves out-of-bounds sample fetches.
type Extrapolation struct {
	Type  ExtrapType
	Value float64 // Used by ExtrapConstant
}

func ZeroExtrapolation() Extrapolation { return Extrapolation{Type: ExtrapZero} }
func ConstantExtrapolation(v float64) Extrapolation {
	return Extrapolation{Type: ExtrapConstant, Value: v}
}
func BoundaryExtrapolation() Extrapolation { return Extrapolation{Type: ExtrapBoundary} }

// Box is the physical domain extent, anchored at the origin.
type Box struct {
	Lx, Ly float64
}

// ScalarField samples a scalar quantity at cell centers: sample (i,j)
// sits at ((i+1/2)dx, (j+1/2)dy). Values are stored row-major with the
// y index as the row, matching the (Ry, Rx) snapshot layout.
type ScalarField struct {
	Box    Box
	Nx, Ny int
	V      utils.Matrix // (Ny, Nx)
	Extrap Extrapolation
}

func NewScalarField(box Box, nx, ny int, extrap Extrapolation, initVal ...float64) (f ScalarField) {
	f = ScalarField{
		Box:    box,
		Nx:     nx,
		Ny:     ny,
		V:      utils.NewMatrix(ny, nx),
		Extrap: extrap,
	}
	if len(initVal) != 0 && initVal[0] != 0 {
		f.V.AddScalar(initVal[0])
	}
	return
}

func (f ScalarField) Dx() float64 { return f.Box.Lx / float64(f.Nx) }
func (f ScalarField) Dy() float64 { return f.Box.Ly / float64(f.Ny) }

// Pos returns the physical location of sample (i,j), i indexing x and j
// indexing y.
func (f ScalarField) Pos(i, j int) (x, y float64) {
	x = (float64(i) + 0.5) * f.Dx()
	y = (float64(j) + 0.5) * f.Dy()
	return
}

// at fetches sample (i,j), resolving out-of-range indices through the
// extrapolation policy.
func (f ScalarField) at(i, j int) float64 {
	if i >= 0 && i < f.Nx && j >= 0 && j < f.Ny {
		return f.V.At(j, i)
	}
	switch f.Extrap.Type {
	case ExtrapBoundary:
		return f.V.At(clampInt(j, 0, f.Ny-1), clampInt(i, 0, f.Nx-1))
	case ExtrapConstant:
		return f.Extrap.Value
	default:
		return 0
	}
}

// Sample bilinearly interpolates the field at an arbitrary physical
// point. It is exact when (x,y) coincides with a sample location.
func (f ScalarField) Sample(x, y float64) (val float64) {
	val, _, _ = f.SampleStencil(x, y)
	return
}

// SampleStencil returns the interpolated value along with the min and
// max of the four stencil samples, which the MacCormack corrector uses
// as its overshoot clamp bounds.
func (f ScalarField) SampleStencil(x, y float64) (val, lo, hi float64) {
	var (
		dx, dy = f.Dx(), f.Dy()
	)
	fi := x/dx - 0.5
	fj := y/dy - 0.5
	i0 := int(math.Floor(fi))
	j0 := int(math.Floor(fj))
	tx := fi - float64(i0)
	ty := fj - float64(j0)
	s00 := f.at(i0, j0)
	s10 := f.at(i0+1, j0)
	s01 := f.at(i0, j0+1)
	s11 := f.at(i0+1, j0+1)
	val = (1-tx)*(1-ty)*s00 + tx*(1-ty)*s10 + (1-tx)*ty*s01 + tx*ty*s11
	lo = math.Min(math.Min(s00, s10), math.Min(s01, s11))
	hi = math.Max(math.Max(s00, s10), math.Max(s01, s11))
	return
}

func (f ScalarField) Copy() (R ScalarField) {
	R = f
	R.V = f.V.Copy()
	return
}

// Resample evaluates the field at the cell centers of an (nx,ny) grid
// over the same domain. This is the explicit cross-resolution operation
// used wherever two grids of differing resolution must meet.
func (f ScalarField) Resample(nx, ny int) (R ScalarField) {
	R = NewScalarField(f.Box, nx, ny, f.Extrap)
	parRange(ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 0; i < nx; i++ {
				x, y := R.Pos(i, j)
				R.V.Set(j, i, f.Sample(x, y))
			}
		}
	})
	return
}

// Sum returns the total of all samples (the discrete mass when the
// field is a density).
func (f ScalarField) Sum() float64 { return f.V.Sum() }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package SmokePlume2D

import (
	"math"

	"github.com/notargets/goplume/FD2D"
)

// DiskSource is the fixed inflow region. The rasterized mask has a soft
// edge one cell wide so the injected plume does not carry grid stair
// steps into the advection.
type DiskSource struct {
	X, Y, Radius float64
}

// Mask rasterizes the disk onto an (nx,ny) cell-centered grid. Values
// are 1 inside, 0 outside, with a linear ramp across the rim.
func (ds DiskSource) Mask(box FD2D.Box, nx, ny int) (mask FD2D.ScalarField) {
	mask = FD2D.NewScalarField(box, nx, ny, FD2D.ZeroExtrapolation())
	var (
		h = math.Min(mask.Dx(), mask.Dy())
	)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x, y := mask.Pos(i, j)
			dist := math.Hypot(x-ds.X, y-ds.Y)
			v := (ds.Radius-dist)/h + 0.5
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			mask.V.Set(j, i, v)
		}
	}
	return
}

// BackgroundField builds the static two-gas ambient density: gas1 left
// of interfaceX, gas2 to the right.
func BackgroundField(box FD2D.Box, nx, ny int, gas1, gas2, interfaceX float64) (bg FD2D.ScalarField) {
	bg = FD2D.NewScalarField(box, nx, ny, FD2D.BoundaryExtrapolation())
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x, _ := bg.Pos(i, j)
			if x <= interfaceX {
				bg.V.Set(j, i, gas1)
			} else {
				bg.V.Set(j, i, gas2)
			}
		}
	}
	return
}

package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps the dictionary-of-keys sparse format used while assembling
// the pressure Laplacian. Convert to CSR before repeated multiplies.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims and At minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }

// Accumulate adds val into entry (i,j).
func (m DOK) Accumulate(i, j int, val float64) { m.M.Set(i, j, m.M.At(i, j)+val) }

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

// CSR wraps the compressed sparse row format used for the repeated
// matrix-vector products inside iterative solvers.
type CSR struct {
	M *sparse.CSR
}

func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

// NNZ returns the stored nonzero count.
func (m CSR) NNZ() int { return m.M.NNZ() }

// MulVec computes y = A*x over the stored nonzeros.
func (m CSR) MulVec(y, x []float64) {
	var (
		nr, nc = m.M.Dims()
	)
	if len(y) != nr || len(x) != nc {
		err := fmt.Errorf("dimension mismatch in MulVec: A is %dx%d, len(y) = %d, len(x) = %d",
			nr, nc, len(y), len(x))
		panic(err)
	}
	for i := range y {
		y[i] = 0
	}
	m.M.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
}

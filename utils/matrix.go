package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps gonum's dense matrix with chainable mutating methods so
// field updates compose left to right, e.g. R.Scale(dt).Add(Q).
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// Data returns the backing slice in row-major order.
func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.Copy(m.M)
	return
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.M.Sub(m.M, A.M)
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	for i := range data {
		data[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Max() (mx float64) {
	var (
		data = m.Data()
	)
	mx = data[0]
	for _, val := range data {
		if val > mx {
			mx = val
		}
	}
	return
}

func (m Matrix) Min() (mn float64) {
	var (
		data = m.Data()
	)
	mn = data[0]
	for _, val := range data {
		if val < mn {
			mn = val
		}
	}
	return
}

func (m Matrix) Sum() (s float64) {
	for _, val := range m.Data() {
		s += val
	}
	return
}

// IsFinite reports whether every element is a finite number.
func (m Matrix) IsFinite() bool {
	for _, val := range m.Data() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}

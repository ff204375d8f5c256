package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Chainable scale and add
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := NewMatrix(2, 2, []float64{
			1, 1,
			1, 1,
		})
		M.Scale(2).Add(A)
		assert.Equal(t, []float64{3, 5, 7, 9}, M.Data())
	}
	// Copy does not alias
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy()
		A.Set(0, 0, 100)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 100., A.At(0, 0))
	}
	// Min, Max, Sum
	{
		M := NewMatrix(2, 3, []float64{-1, 2, 3, 4, 5, 6})
		assert.Equal(t, -1., M.Min())
		assert.Equal(t, 6., M.Max())
		assert.Equal(t, 19., M.Sum())
	}
	// Apply
	{
		M := NewMatrix(1, 3, []float64{1, 4, 9})
		M.Apply(math.Sqrt)
		assert.Equal(t, []float64{1, 2, 3}, M.Data())
	}
	// IsFinite
	{
		M := NewMatrix(1, 2, []float64{1, 2})
		assert.True(t, M.IsFinite())
		M.Set(0, 1, math.NaN())
		assert.False(t, M.IsFinite())
		M.Set(0, 1, math.Inf(1))
		assert.False(t, M.IsFinite())
	}
}

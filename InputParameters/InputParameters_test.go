package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlumeParametersParse(t *testing.T) {
	deck := `
Title: Test Plume
DomainX: 100
DomainY: 100
VelocityResX: 64
VelocityResY: 64
SmokeResX: 200
SmokeResY: 200
Viscosity: 0.01
Diffusivity: 0.01
Gravity: 0.1
SourceX: 40
SourceY: 9.5
SourceRadius: 5
InflowRate: 0.2
NTimeSteps: 375
DT: 1
`
	pp := NewPlumeParameters()
	err := pp.Parse([]byte(deck))
	assert.NoError(t, err)
	assert.Equal(t, "Test Plume", pp.Title)
	assert.Equal(t, 64, pp.VelocityResX)
	assert.Equal(t, 200, pp.SmokeResY)
	assert.Equal(t, 0.01, pp.Viscosity)
	assert.Equal(t, 375, pp.NTimeSteps)
	assert.Nil(t, pp.TwoGas)
	// Defaults survive an empty deck field
	assert.Equal(t, 1.e-5, pp.PoissonTolerance)
	assert.Equal(t, 2000, pp.PoissonMaxIterations)
}

func TestPlumeParametersParseTwoGas(t *testing.T) {
	deck := `
Title: Two Gases
Gravity: 0.1
TwoGas:
  Gas1Density: 1.0
  Gas2Density: 0.5
  InterfaceX: 50
`
	pp := NewPlumeParameters()
	err := pp.Parse([]byte(deck))
	assert.NoError(t, err)
	assert.NotNil(t, pp.TwoGas)
	assert.Equal(t, 1.0, pp.TwoGas.Gas1Density)
	assert.Equal(t, 0.5, pp.TwoGas.Gas2Density)
	assert.Equal(t, 50., pp.TwoGas.InterfaceX)
}

package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/notargets/goplume/InputParameters"
)

func TestRunPlume(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
DomainX: 100
DomainY: 100
VelocityResX: 32
VelocityResY: 32
SmokeResX: 100
SmokeResY: 100
Gravity: 0.1
SourceX: 40
SourceY: 9.5
SourceRadius: 5
InflowRate: 0.2
NTimeSteps: 10
DT: 1.
TwoGas:
  Gas1Density: 1.0
  Gas2Density: 0.5
  InterfaceX: 50
`)
	input := InputParameters.NewPlumeParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check the two-gas partition
	assert.Equal(t, input.TwoGas.Gas1Density, 1.)
	assert.Equal(t, input.TwoGas.InterfaceX, 50.)
	input.Print()
	assert.Equal(t, input.NTimeSteps, 10)
	assert.Equal(t, input.Gravity, 0.1)
}

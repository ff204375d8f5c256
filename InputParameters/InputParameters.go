package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input deck
type PlumeParameters struct {
	Title                string  `yaml:"Title"`
	DomainX              float64 `yaml:"DomainX"`
	DomainY              float64 `yaml:"DomainY"`
	VelocityResX         int     `yaml:"VelocityResX"`
	VelocityResY         int     `yaml:"VelocityResY"`
	SmokeResX            int     `yaml:"SmokeResX"`
	SmokeResY            int     `yaml:"SmokeResY"`
	Viscosity            float64 `yaml:"Viscosity"`
	Diffusivity          float64 `yaml:"Diffusivity"`
	Gravity              float64 `yaml:"Gravity"`
	SourceX              float64 `yaml:"SourceX"`
	SourceY              float64 `yaml:"SourceY"`
	SourceRadius         float64 `yaml:"SourceRadius"`
	InflowRate           float64 `yaml:"InflowRate"`
	NTimeSteps           int     `yaml:"NTimeSteps"`
	DT                   float64 `yaml:"DT"`
	PoissonTolerance     float64 `yaml:"PoissonTolerance"`
	PoissonMaxIterations int     `yaml:"PoissonMaxIterations"`
	LogFrequency         int     `yaml:"LogFrequency"`
	// Optional: adds a static background density split at InterfaceX;
	// buoyancy then acts on the difference between background and smoke
	TwoGas *TwoGasParameters `yaml:"TwoGas,omitempty"`
}

type TwoGasParameters struct {
	Gas1Density float64 `yaml:"Gas1Density"` // Density left of the interface
	Gas2Density float64 `yaml:"Gas2Density"` // Density right of the interface
	InterfaceX  float64 `yaml:"InterfaceX"`
}

// NewPlumeParameters returns the reference plume case; a parsed deck
// overrides whichever fields it sets.
func NewPlumeParameters() *PlumeParameters {
	return &PlumeParameters{
		Title:                "Smoke Plume",
		DomainX:              100,
		DomainY:              100,
		VelocityResX:         64,
		VelocityResY:         64,
		SmokeResX:            200,
		SmokeResY:            200,
		Viscosity:            0,
		Diffusivity:          0,
		Gravity:              0.1,
		SourceX:              40,
		SourceY:              9.5,
		SourceRadius:         5,
		InflowRate:           0.2,
		NTimeSteps:           375,
		DT:                   1,
		PoissonTolerance:     1.e-5,
		PoissonMaxIterations: 2000,
		LogFrequency:         10,
	}
}

func (pp *PlumeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PlumeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%4.0f x%4.0f]\t\t= Domain\n", pp.DomainX, pp.DomainY)
	fmt.Printf("[%4d x%4d]\t\t= Velocity Resolution\n", pp.VelocityResX, pp.VelocityResY)
	fmt.Printf("[%4d x%4d]\t\t= Smoke Resolution\n", pp.SmokeResX, pp.SmokeResY)
	fmt.Printf("%8.5f\t\t= Viscosity\n", pp.Viscosity)
	fmt.Printf("%8.5f\t\t= Diffusivity\n", pp.Diffusivity)
	fmt.Printf("%8.5f\t\t= Gravity\n", pp.Gravity)
	fmt.Printf("%8.5f\t\t= DT\n", pp.DT)
	fmt.Printf("[%d]\t\t\t= NTimeSteps\n", pp.NTimeSteps)
	if pp.TwoGas != nil {
		fmt.Printf("TwoGas[%g | %g] at X = %g\n",
			pp.TwoGas.Gas1Density, pp.TwoGas.Gas2Density, pp.TwoGas.InterfaceX)
	} else {
		fmt.Printf("Source[%g, %g] R = %g, Inflow = %g\n",
			pp.SourceX, pp.SourceY, pp.SourceRadius, pp.InflowRate)
	}
}

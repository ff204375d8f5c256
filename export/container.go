package export

import (
	"encoding/gob"
	"os"

	"github.com/notargets/goplume/model_problems/SmokePlume2D"
)

// RunMetadata describes the shape of a persisted run
type RunMetadata struct {
	NTimeSteps         int
	SmokeResolution    [2]int // (Rx, Ry)
	VelocityResolution [2]int
	DT                 float64
}

// RunData is the persisted run container. Both quantity sequences live
// on the smoke grid: density as (Ry*Rx) row-major arrays, velocity as
// (Ry*Rx*2) arrays with u,v interleaved per cell.
type RunData struct {
	Metadata          RunMetadata
	DomainX, DomainY  float64
	SmokeDensity      [][]float64
	VelocityField     [][]float64
	BackgroundDensity []float64 // Two-gas ambient field, nil otherwise
}

// Collect assembles the container from a completed run's recorder
func Collect(sp *SmokePlume2D.SmokePlume, rec *SmokePlume2D.MemoryRecorder) (rd *RunData) {
	var (
		pp = sp.Params
	)
	rd = &RunData{
		Metadata: RunMetadata{
			NTimeSteps:         rec.Len(),
			SmokeResolution:    [2]int{pp.SmokeResX, pp.SmokeResY},
			VelocityResolution: [2]int{pp.VelocityResX, pp.VelocityResY},
			DT:                 pp.DT,
		},
		DomainX: pp.DomainX,
		DomainY: pp.DomainY,
	}
	for n := 0; n < rec.Len(); n++ {
		density := rec.Density[n].Data()
		u, v := rec.U[n].Data(), rec.V[n].Data()
		vel := make([]float64, 2*len(density))
		for c := range density {
			vel[2*c] = u[c]
			vel[2*c+1] = v[c]
		}
		rd.SmokeDensity = append(rd.SmokeDensity, append([]float64(nil), density...))
		rd.VelocityField = append(rd.VelocityField, vel)
	}
	if pp.TwoGas != nil {
		rd.BackgroundDensity = append([]float64(nil), sp.Background.V.Data()...)
	}
	return
}

func (rd *RunData) Save(fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return
	}
	defer f.Close()
	err = gob.NewEncoder(f).Encode(rd)
	return
}

func Load(fileName string) (rd *RunData, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer f.Close()
	rd = &RunData{}
	err = gob.NewDecoder(f).Decode(rd)
	return
}

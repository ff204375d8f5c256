package SmokePlume2D

import "github.com/notargets/goplume/utils"

// Recorder receives one snapshot per completed step: the smoke density
// grid and the velocity resampled to the density grid's cell centers.
// Implementations own the passed matrices; the model hands over copies.
type Recorder interface {
	Record(step int, density, u, v utils.Matrix) error
}

// MemoryRecorder accumulates every snapshot in memory, in step order
type MemoryRecorder struct {
	Density []utils.Matrix
	U, V    []utils.Matrix
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (mr *MemoryRecorder) Record(step int, density, u, v utils.Matrix) error {
	mr.Density = append(mr.Density, density)
	mr.U = append(mr.U, u)
	mr.V = append(mr.V, v)
	return nil
}

func (mr *MemoryRecorder) Len() int { return len(mr.Density) }

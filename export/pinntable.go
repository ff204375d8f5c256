package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// DataInconsistencyError means a container's arrays disagree with its
// metadata; a table built from it would silently misalign, so this is
// fatal.
type DataInconsistencyError struct {
	Step     int // -1 for a whole-table mismatch
	Expected int
	Got      int
}

func (e *DataInconsistencyError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("data inconsistency: expected %d table points, got %d", e.Expected, e.Got)
	}
	return fmt.Sprintf("data inconsistency at step %d: expected %d points, got %d", e.Step, e.Expected, e.Got)
}

// SamplePoint is one row of the flattened training table
type SamplePoint struct {
	T       float64 `csv:"t"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	U       float64 `csv:"u"`
	V       float64 `csv:"v"`
	Density float64 `csv:"density"`
}

// BuildTable flattens the container into (t,x,y,u,v,density) rows at
// the smoke grid's cell centers, step-major. Every step's arrays are
// checked against the metadata before any row is emitted.
func BuildTable(rd *RunData) (points []SamplePoint, err error) {
	var (
		nx, ny = rd.Metadata.SmokeResolution[0], rd.Metadata.SmokeResolution[1]
		dx     = rd.DomainX / float64(nx)
		dy     = rd.DomainY / float64(ny)
		nCells = nx * ny
	)
	if len(rd.SmokeDensity) != rd.Metadata.NTimeSteps || len(rd.VelocityField) != rd.Metadata.NTimeSteps {
		err = &DataInconsistencyError{Step: -1,
			Expected: rd.Metadata.NTimeSteps,
			Got:      len(rd.SmokeDensity)}
		return
	}
	for n := 0; n < rd.Metadata.NTimeSteps; n++ {
		if len(rd.SmokeDensity[n]) != nCells {
			err = &DataInconsistencyError{Step: n, Expected: nCells, Got: len(rd.SmokeDensity[n])}
			return
		}
		if len(rd.VelocityField[n]) != 2*nCells {
			err = &DataInconsistencyError{Step: n, Expected: 2 * nCells, Got: len(rd.VelocityField[n])}
			return
		}
		t := float64(n) * rd.Metadata.DT
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				c := j*nx + i
				points = append(points, SamplePoint{
					T:       t,
					X:       (float64(i) + 0.5) * dx,
					Y:       (float64(j) + 0.5) * dy,
					U:       rd.VelocityField[n][2*c],
					V:       rd.VelocityField[n][2*c+1],
					Density: rd.SmokeDensity[n][c],
				})
			}
		}
	}
	if want := rd.Metadata.NTimeSteps * nCells; len(points) != want {
		err = &DataInconsistencyError{Step: -1, Expected: want, Got: len(points)}
		points = nil
	}
	return
}

// WriteCSV streams the table with a header row
func WriteCSV(w io.Writer, points []SamplePoint) error {
	return gocsv.Marshal(&points, w)
}

package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/goplume/InputParameters"
	"github.com/notargets/goplume/model_problems/SmokePlume2D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSmallRun(t *testing.T, nSteps int) (*SmokePlume2D.SmokePlume, *RunData) {
	pp := InputParameters.NewPlumeParameters()
	pp.VelocityResX, pp.VelocityResY = 8, 8
	pp.SmokeResX, pp.SmokeResY = 10, 10
	pp.NTimeSteps = nSteps
	pp.LogFrequency = 0
	pp.PoissonMaxIterations = 500
	rec := SmokePlume2D.NewMemoryRecorder()
	sp, err := SmokePlume2D.NewSmokePlume(pp, rec)
	require.NoError(t, err)
	require.NoError(t, sp.Run(false))
	return sp, Collect(sp, rec)
}

func TestContainerRoundTrip(t *testing.T) {
	_, rd := collectSmallRun(t, 3)
	assert.Equal(t, 3, rd.Metadata.NTimeSteps)
	assert.Equal(t, [2]int{10, 10}, rd.Metadata.SmokeResolution)
	assert.Len(t, rd.SmokeDensity, 3)
	assert.Len(t, rd.SmokeDensity[0], 100)
	assert.Len(t, rd.VelocityField[0], 200)
	assert.Nil(t, rd.BackgroundDensity)

	fileName := filepath.Join(t.TempDir(), "run.gob")
	require.NoError(t, rd.Save(fileName))
	loaded, err := Load(fileName)
	require.NoError(t, err)
	assert.Equal(t, rd.Metadata, loaded.Metadata)
	assert.Equal(t, rd.SmokeDensity, loaded.SmokeDensity)
	assert.Equal(t, rd.VelocityField, loaded.VelocityField)
}

func TestBuildTable(t *testing.T) {
	_, rd := collectSmallRun(t, 2)
	points, err := BuildTable(rd)
	require.NoError(t, err)
	require.Len(t, points, 2*100)
	// Snapshot n is stamped t = n*DT, zero-based like the recorder's
	// step index; the first row sits at the first cell center
	assert.Equal(t, 0., points[0].T)
	assert.InDelta(t, 5., points[0].X, 1.e-12)
	assert.InDelta(t, 5., points[0].Y, 1.e-12)
	assert.Equal(t, rd.SmokeDensity[0][0], points[0].Density)
	assert.Equal(t, rd.Metadata.DT, points[100].T)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, points))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "t,x,y,u,v,density", lines[0])
	assert.Len(t, lines, 1+len(points))
}

func TestBuildTablePointCountMismatch(t *testing.T) {
	_, rd := collectSmallRun(t, 2)
	rd.SmokeDensity[1] = rd.SmokeDensity[1][:50]
	_, err := BuildTable(rd)
	require.Error(t, err)
	var de *DataInconsistencyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Step)
	assert.Equal(t, 100, de.Expected)
	assert.Equal(t, 50, de.Got)
}

package SmokePlume2D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// Plot streams the total smoke mass over the run into a live chart,
// one point per step. The window scales to the total injection budget.
func (sp *SmokePlume) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		pp = sp.Params
	)
	if !showGraph {
		return
	}
	sp.PlotOnce.Do(func() {
		budget := pp.InflowRate * sp.SourceMask.Sum() * float64(pp.NTimeSteps)
		if budget <= 0 {
			budget = 1
		}
		sp.chart = chart2d.NewChart2D(1280, 1024, 0, float32(pp.NTimeSteps), 0, float32(budget))
		sp.colorMap = utils2.NewColorMap(-1, 1, 1)
		go sp.chart.Plot()
	})

	sp.stepHist = append(sp.stepHist, float64(sp.StepCount))
	sp.massHist = append(sp.massHist, sp.Smoke.Sum())
	if err := sp.chart.AddSeries("mass", sp.stepHist, sp.massHist,
		chart2d.NoGlyph, chart2d.Solid, sp.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

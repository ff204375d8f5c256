/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/notargets/goplume/InputParameters"
	"github.com/notargets/goplume/export"
	"github.com/notargets/goplume/model_problems/SmokePlume2D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type ModelPlume struct {
	IPFile  string
	OutFile string
	CSVFile string
	Graph   bool
	Delay   time.Duration
	Profile bool
}

// PlumeCmd represents the plume command
var PlumeCmd = &cobra.Command{
	Use:   "plume",
	Short: "Buoyant smoke plume solver, reads a YAML run deck and outputs run containers",
	Long:  `Buoyant smoke plume solver, reads a YAML run deck and outputs run containers`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("plume called")
		mp := &ModelPlume{}
		if mp.IPFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mp.OutFile, _ = cmd.Flags().GetString("outputFile")
		mp.CSVFile, _ = cmd.Flags().GetString("csvFile")
		mp.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mp.Delay = time.Duration(dr) * time.Millisecond
		mp.Profile, _ = cmd.Flags().GetBool("profile")
		pp := processInput(mp)
		RunPlume(mp, pp)
	},
}

func processInput(mp *ModelPlume) (pp *InputParameters.PlumeParameters) {
	var (
		err error
	)
	if len(mp.IPFile) == 0 {
		err = fmt.Errorf("must supply a run deck (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Smoke Plume"
DomainX: 100
DomainY: 100
VelocityResX: 64
VelocityResY: 64
SmokeResX: 200
SmokeResY: 200
Gravity: 0.1
SourceX: 40
SourceY: 9.5
SourceRadius: 5
InflowRate: 0.2
NTimeSteps: 375
DT: 1
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mp.IPFile); err != nil {
		panic(err)
	}
	pp = InputParameters.NewPlumeParameters()
	if err = pp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(PlumeCmd)
	PlumeCmd.Flags().StringP("inputParametersFile", "I", "", "YAML run deck with domain, resolutions, source and time stepping")
	PlumeCmd.Flags().StringP("outputFile", "o", "plume.gob", "output file for the persisted run container")
	PlumeCmd.Flags().String("csvFile", "", "also write the flattened (t,x,y,u,v,density) table to this CSV file")
	PlumeCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	PlumeCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	PlumeCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunPlume(mp *ModelPlume, pp *InputParameters.PlumeParameters) {
	if mp.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	pp.Print()
	rec := SmokePlume2D.NewMemoryRecorder()
	sp, err := SmokePlume2D.NewSmokePlume(pp, rec)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = sp.Run(mp.Graph, mp.Delay); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	rd := export.Collect(sp, rec)
	if err = rd.Save(mp.OutFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %d snapshots to %s\n", rd.Metadata.NTimeSteps, mp.OutFile)
	if len(mp.CSVFile) != 0 {
		var points []export.SamplePoint
		if points, err = export.BuildTable(rd); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		f, err := os.Create(mp.CSVFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		defer f.Close()
		if err = export.WriteCSV(f, points); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %d table rows to %s\n", len(points), mp.CSVFile)
	}
}

// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// utpge runs the artificial lift and well performance calculators from
// the command line
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"

	"github.com/bRunquist/utpgetools-package/alift"
	"github.com/bRunquist/utpgetools-package/inp"
	"github.com/bRunquist/utpgetools-package/server"
)

const version = "1.0.0"

var (
	rootCmd   *cobra.Command
	wellDir   string
	wellFile  string
	rate      float64
	npts      int
	confFile  string
	overrides []string
)

// applyOverrides patches example parameters with name=value pairs
func applyOverrides(prms dbf.Params) error {
	for _, s := range overrides {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 {
			return chk.Err("cannot parse override %q. use name=value", s)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return chk.Err("cannot parse override value in %q: %v", s, err)
		}
		p := prms.Find(parts[0])
		if p == nil {
			return chk.Err("no such parameter %q", parts[0])
		}
		p.V = v
	}
	return nil
}

func readWell() (*inp.WellData, error) {
	return inp.ReadWell(wellDir, wellFile)
}

func runIpr(cmd *cobra.Command, args []string) error {
	wd, err := readWell()
	if err != nil {
		return err
	}
	ipr, err := wd.IPR()
	if err != nil {
		return err
	}
	ipr.Report()
	pwfs := utl.LinSpace(wd.Pres, 0, npts)
	q, err := ipr.Curve(0, pwfs)
	if err != nil {
		return err
	}
	io.Pf("\n%12s %12s\n", "pwf [psia]", "q [STB/d]")
	for i := range pwfs {
		io.Pf("%12.1f %12.2f\n", pwfs[i], q[i])
	}
	return nil
}

func runVlp(cmd *cobra.Command, args []string) error {
	wd, err := readWell()
	if err != nil {
		return err
	}
	trv, err := wd.Traverse()
	if err != nil {
		return err
	}
	Z, P, T, err := trv.Profile(rate)
	if err != nil {
		return err
	}
	io.Pf("%12s %12s %12s\n", "depth [ft]", "p [psia]", "T [°F]")
	for i := range Z {
		io.Pf("%12.0f %12.1f %12.1f\n", Z[i], P[i], T[i])
	}
	io.Pfcyan("%-28s", "bottomhole pressure")
	io.Pf(" = ")
	io.PfRed("%.1f", P[len(P)-1])
	io.Pf(" psia\n")
	return nil
}

func runNodal(cmd *cobra.Command, args []string) error {
	wd, err := readWell()
	if err != nil {
		return err
	}
	ipr, err := wd.IPR()
	if err != nil {
		return err
	}
	trv, err := wd.Traverse()
	if err != nil {
		return err
	}
	pwfs := utl.LinSpace(wd.Pres, wd.Pres*0.1, npts)
	qop, pop, err := alift.OperatingPoint(ipr, 0, trv, pwfs)
	if err != nil {
		return err
	}
	io.Pfcyan("%-28s", "operating rate")
	io.Pf(" = ")
	io.PfRed("%.1f", qop)
	io.Pf(" STB/d\n")
	io.Pfcyan("%-28s", "operating pressure")
	io.Pf(" = ")
	io.PfRed("%.1f", pop)
	io.Pf(" psia\n")
	return nil
}

func runEcho(cmd *cobra.Command, args []string) error {
	var ec alift.Echometer
	prms := ec.GetPrms(true)
	if err := applyOverrides(prms); err != nil {
		return err
	}
	if err := ec.Init(prms); err != nil {
		return err
	}
	_, err := ec.Run()
	return err
}

func runPlunger(cmd *cobra.Command, args []string) error {
	var pl alift.Plunger
	prms := pl.GetPrms(true)
	if err := applyOverrides(prms); err != nil {
		return err
	}
	if err := pl.Init(prms); err != nil {
		return err
	}
	pl.Run()
	return nil
}

func runPcp(cmd *cobra.Command, args []string) error {
	var pcp alift.PCP
	prms := pcp.GetPrms(true)
	if err := applyOverrides(prms); err != nil {
		return err
	}
	if err := pcp.Init(prms); err != nil {
		return err
	}
	_, err := pcp.Run()
	return err
}

func runValves(cmd *cobra.Command, args []string) error {
	var gl alift.GasLift
	prms := gl.GetPrms(true)
	if err := applyOverrides(prms); err != nil {
		return err
	}
	if err := gl.Init(prms); err != nil {
		return err
	}
	_, err := gl.Depths()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.LoadConfig(confFile)
	srv, err := server.NewServer(cfg)
	if err != nil {
		return err
	}
	srv.Serve()
	return nil
}

func init() {
	rootCmd = &cobra.Command{
		Use:           "utpge",
		Short:         "Well performance and artificial lift calculators",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	iprCmd := &cobra.Command{Use: "ipr", Short: "Inflow performance curve of a well", RunE: runIpr}
	vlpCmd := &cobra.Command{Use: "vlp", Short: "Pressure traverse of a well at a rate", RunE: runVlp}
	nodalCmd := &cobra.Command{Use: "nodal", Short: "Operating point of a well", RunE: runNodal}
	echoCmd := &cobra.Command{Use: "echo", Short: "Fluid level and bottomhole pressure from an acoustic survey", RunE: runEcho}
	plungerCmd := &cobra.Command{Use: "plunger", Short: "Plunger lift cycle and production rate", RunE: runPlunger}
	pcpCmd := &cobra.Command{Use: "pcp", Short: "Progressing cavity pump sizing", RunE: runPcp}
	valvesCmd := &cobra.Command{Use: "valves", Short: "Gas lift valve spacing", RunE: runValves}
	serveCmd := &cobra.Command{Use: "serve", Short: "Serve well curves over a websocket", RunE: runServe}

	for _, c := range []*cobra.Command{iprCmd, vlpCmd, nodalCmd} {
		c.Flags().StringVar(&wellDir, "dir", "inp/data", "Directory with well definition files")
		c.Flags().StringVarP(&wellFile, "well", "w", "", "Well definition file (required)")
		c.Flags().IntVarP(&npts, "npts", "n", 25, "Points per computed curve")
		if err := c.MarkFlagRequired("well"); err != nil {
			panic(err)
		}
	}
	vlpCmd.Flags().Float64VarP(&rate, "rate", "q", 0, "Liquid rate [STB/d] (required)")
	if err := vlpCmd.MarkFlagRequired("rate"); err != nil {
		panic(err)
	}

	for _, c := range []*cobra.Command{echoCmd, plungerCmd, pcpCmd, valvesCmd} {
		c.Flags().StringArrayVarP(&overrides, "set", "s", nil, "Override an example parameter, e.g. --set tvd=6000")
	}

	serveCmd.Flags().StringVarP(&confFile, "config", "c", "conf/config.ini", "Server config file")

	rootCmd.AddCommand(iprCmd, vlpCmd, nodalCmd, echoCmd, plungerCmd, pcpCmd, valvesCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/vangen/ana"
	"github.com/gofem/vangen/mdl/conduct"
	"github.com/gofem/vangen/mdl/retention"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	dirout := io.ArgToString(0, "/tmp/vangen")
	doplot := io.ArgToBool(1, true)
	depth := io.ArgToFloat(2, 40.0)

	// message
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"output directory", "dirout", dirout,
		"generate figure", "doplot", doplot,
		"depth factor of initial water content", "depth", depth,
	))

	// loam
	lrm := retention.Loam()
	cnd := conduct.FromRetention(lrm)

	// forward model
	Psi := []float64{1, 10, 30, 100, 1000, 1500, 10000, 15000, 100000}
	Theta := retention.ThetaSeq(&lrm, Psi, retention.Centimeters)

	// inverse model: analytical
	PsiAna, err := retention.PsiSeq(&lrm, Theta, retention.Centimeters)
	if err != nil {
		chk.Panic("analytical inverse failed:\n%v", err)
	}

	// inverse model: numerical
	sol := retention.NewNumInverse()
	PsiNum := make([]float64, len(Theta))
	for i, theta := range Theta {
		PsiNum[i], err = sol.Solve(&lrm, theta)
		if err != nil {
			io.PfRed("numerical inverse failed for θ=%g:\n%v", theta, err)
			PsiNum[i] = math.NaN()
		}
	}

	// results
	io.Pfyel("\n%12s%14s%16s%16s%14s%14s\n", "ψ [cm]", "θ", "ψ num [cm]", "ψ ana [cm]", "rel.error", "klr")
	for i, psi := range Psi {
		relerr := math.Abs(PsiNum[i]-PsiAna[i]) / PsiAna[i]
		klr := conduct.KlrTheta(cnd, lrm, Theta[i])
		io.Pf("%12g%14.8f%16.6f%16.6f%14.3e%14.6e\n", psi, Theta[i], PsiNum[i], PsiAna[i], relerr, klr)
	}

	// figure
	if doplot {
		err = retention.PlotCurves(&lrm, Psi, PsiNum, PsiAna, dirout, "vanGenuchten_subplots")
		if err != nil {
			chk.Panic("cannot plot curves:\n%v", err)
		}
		io.Pfblue2("figure <%s/vanGenuchten_subplots.png> written\n", dirout)
	}

	// initial soil water content
	var iw ana.InitWater
	iw.Init(depth)
	_, err = iw.Calc(&lrm, ana.DefaultPotentials(), retention.Hectopascals)
	if err != nil {
		chk.Panic("cannot compute initial water content:\n%v", err)
	}
	io.Pf("\ninitial water content from potentials %v hPa\n", ana.DefaultPotentials())
	io.Pf("%v", iw)
}

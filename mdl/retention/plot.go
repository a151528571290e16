// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// LogSpace returns npts values evenly spaced in log scale within [xmin, xmax]; xmin > 0
func LogSpace(xmin, xmax float64, npts int) (X []float64) {
	X = utl.LinSpace(math.Log10(xmin), math.Log10(xmax), npts)
	for i, x := range X {
		X[i] = math.Pow(10, x)
	}
	return
}

// Plot plots θ(ψ) with ψ [cm] log-spaced within [psiMin, psiMax]
//  args -- line style; e.g. &plt.A{C: "b", Ls: "-"}. nil => default
func Plot(mdl Model, psiMin, psiMax float64, npts int, args *plt.A) (Psi, Theta []float64) {
	Psi = LogSpace(psiMin, psiMax, npts)
	Theta = ThetaSeq(mdl, Psi, Centimeters)
	if args == nil {
		args = &plt.A{C: "b", Ls: "-"}
	}
	plt.Plot(Psi, Theta, args)
	return
}

// PlotCurves plots van Genuchten's curve and its inverse in two panels and saves the figure
//  Psi    -- potentials [cm] used to compute θ
//  PsiNum -- potentials [cm] from the numerical inverse of θ(Psi)
//  PsiAna -- potentials [cm] from the closed-form inverse of θ(Psi)
func PlotCurves(mdl Model, Psi, PsiNum, PsiAna []float64, dirout, fnkey string) (err error) {

	// check
	if len(PsiNum) != len(Psi) || len(PsiAna) != len(Psi) {
		return chk.Err("sizes of Psi, PsiNum and PsiAna must be equal. %d, %d, %d are invalid\n", len(Psi), len(PsiNum), len(PsiAna))
	}
	Theta := ThetaSeq(mdl, Psi, Centimeters)

	// forward model
	plt.Reset(false, nil)
	plt.Subplot(1, 2, 1)
	plt.Plot(Psi, Theta, &plt.A{C: "b", Ls: "-"})
	plt.SetXlog()
	plt.Title("van Genuchten", nil)
	plt.Gll("$\\log\\,\\psi_m\\quad[cm]$", "$\\theta\\quad[cm^3/cm^3]$", nil)

	// inverse model
	plt.Subplot(1, 2, 2)
	plt.Plot(Theta, PsiNum, &plt.A{C: "b", Ls: "-", L: "numerical"})
	plt.Plot(Theta, PsiAna, &plt.A{C: "r", Ls: "--", L: "analytical"})
	plt.SetYlog()
	plt.Title("inverse van Genuchten", nil)
	plt.Gll("$\\theta\\quad[cm^3/cm^3]$", "$\\log\\,\\psi_m\\quad[cm]$", nil)

	plt.Save(dirout, fnkey)
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(mdl Model, show bool) {
	plt.AxisYrange(0, mdl.ThetaMax()*1.05)
	plt.SetXlog()
	plt.Gll("$\\psi\\quad[cm]$", "$\\theta$", nil)
	if show {
		plt.Show()
	}
}

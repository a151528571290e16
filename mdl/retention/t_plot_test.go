// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	X := LogSpace(1, 1e5, 6)
	chk.Array(tst, "X", 1e-9, X, []float64{1, 10, 100, 1000, 1e4, 1e5})

	mdl := Loam()
	err := PlotCurves(&mdl, X, X[:2], X, "/tmp/vangen", "plot01")
	if err == nil {
		tst.Errorf("PlotCurves should have failed\n")
		return
	}

	if !chk.Verbose {
		return
	}

	Psi := []float64{1, 10, 30, 100, 1000, 1500, 10000, 15000, 100000}
	Theta := ThetaSeq(&mdl, Psi, Centimeters)
	PsiAna, err := PsiSeq(&mdl, Theta, Centimeters)
	if err != nil {
		tst.Errorf("PsiSeq failed: %v\n", err)
		return
	}
	sol := NewNumInverse()
	PsiNum := make([]float64, len(Theta))
	for i, theta := range Theta {
		PsiNum[i], err = sol.Solve(&mdl, theta)
		if err != nil {
			tst.Errorf("Solve failed: %v\n", err)
			return
		}
	}
	err = PlotCurves(&mdl, Psi, PsiNum, PsiAna, "/tmp/vangen", "plot01_curves")
	if err != nil {
		tst.Errorf("PlotCurves failed: %v\n", err)
		return
	}

	plt.Reset(false, nil)
	Plot(&mdl, 1e-1, 1e7, 101, &plt.A{C: "b", Ls: "-", L: "loam"})
	Plot(&mdl, 1e-1, 1e7, 11, &plt.A{C: "r", M: "o", Ls: "none", L: "loam (11 points)"})
	PlotEnd(&mdl, false)
	plt.Save("/tmp/vangen", "plot01_loam")
}

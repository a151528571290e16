// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots klr(se) and, if deriv==true, ∂klr/∂se; then saves figure
func Plot(o Model, dirout, fnkey string, np int, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np-1)
	}
	for i := 0; i < np; i++ {
		Y[i] = o.Klr(X[i])
		if deriv && i < np-1 {
			Z[i] = o.DklrDse(X[i])
		}
	}
	plt.Reset(false, nil)
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$s_e$", "$k_{\\ell}^r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X[:np-1], Z, &plt.A{C: "b", Ls: "-"})
		plt.Gll("$s_e$", "$\\mathrm{d}{k_{\\ell}^r}/\\mathrm{d}{s_e}$", nil)
	}
	plt.Save(dirout, fnkey)
}

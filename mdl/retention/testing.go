// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Check checks a retention model at npts potentials log-spaced in [psiMin, psiMax]:
//  1) θr < θ(ψ) ≤ θs and θ is strictly decreasing
//  2) Cc = dθ/dψ against numerical derivatives of θ(ψ)
//  3) ψ(θ(ψ)) ≈ ψ with tolPsi relative to ψ and θ(ψ(θ)) ≈ θ with tolTheta
func Check(tst *testing.T, mdl Model, psiMin, psiMax float64, npts int, tolCc, tolPsi, tolTheta float64, verbose bool) {

	// for all ψ stations
	Psi := LogSpace(psiMin, psiMax, npts)
	prev := mdl.ThetaMax()
	for i, psi := range Psi {

		// bounds and monotonicity
		theta := mdl.Theta(psi)
		if theta <= mdl.ThetaMin() || theta > mdl.ThetaMax() {
			tst.Errorf("θ(%g) = %g is outside (%g, %g]\n", psi, theta, mdl.ThetaMin(), mdl.ThetaMax())
			return
		}
		if i > 0 && theta >= prev {
			tst.Errorf("θ is not decreasing: θ(%g) = %g ≥ θ(%g) = %g\n", psi, theta, Psi[i-1], prev)
			return
		}
		prev = theta

		// Cc = dθ/dψ
		if verbose {
			io.Pforan("ψ=%12g θ=%.8f\n", psi, theta)
		}
		chk.DerivScaSca(tst, "Cc = dθ/d|ψ|", tolCc, mdl.Cc(psi), psi, 1e-3*psi, verbose, mdl.Theta)

		// round trips
		psiBack, err := mdl.Psi(theta)
		if err != nil {
			tst.Errorf("Psi failed: %v\n", err)
			return
		}
		chk.AnaNum(tst, "ψ(θ(ψ))/ψ", tolPsi, 1, psiBack/psi, verbose)
		chk.AnaNum(tst, "θ(ψ(θ))", tolTheta, theta, mdl.Theta(psiBack), verbose)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// NumInverse inverts θ(ψ) numerically by bisection.
//  θ(ψ) is strictly decreasing for ψ > 0, thus the root of θ(ψ) - θ is first
//  bracketed in [ψlo, ψhi] by doubling ψhi and then refined by bisection.
//  It is used to check the closed-form inverse of retention models.
type NumInverse struct {
	MaxIt  int     // maximum number of bisection iterations
	Tol    float64 // tolerance on (ψhi - ψlo) / ψhi
	PsiMax float64 // largest ψ [cm] tried when bracketing

	// statistics
	NumIter  int // number of iterations in the last call to Solve
	NumFeval int // number of evaluations of θ(ψ) in the last call to Solve
}

// NewNumInverse returns a new numerical inverse with default settings
func NewNumInverse() *NumInverse {
	return &NumInverse{
		MaxIt:  200,
		Tol:    1e-12,
		PsiMax: 1e20,
	}
}

// Solve finds ψ [cm] such that mdl.Theta(ψ) = theta
func (o *NumInverse) Solve(mdl Model, theta float64) (psi float64, err error) {

	// check input
	o.NumIter, o.NumFeval = 0, 0
	err = checkDomain(theta, mdl.ThetaMin(), mdl.ThetaMax())
	if err != nil {
		return
	}
	if theta == mdl.ThetaMax() {
		return 0, nil
	}

	// bracket root
	lo, hi := 0.0, 1.0
	for o.feval(mdl, hi) > theta {
		lo = hi
		hi *= 2.0
		if hi > o.PsiMax {
			return 0, chk.Err("numerical inverse failed to bracket θ=%g: ψ > %g cm\n", theta, o.PsiMax)
		}
	}

	// bisection
	for o.NumIter = 0; o.NumIter < o.MaxIt; o.NumIter++ {
		psi = (lo + hi) / 2.0
		if hi-lo <= o.Tol*hi {
			return
		}
		if o.feval(mdl, psi) > theta {
			lo = psi
		} else {
			hi = psi
		}
	}
	return psi, chk.Err("numerical inverse did not converge after %d iterations. θ=%g, ψ∈[%g, %g], error=%g\n", o.MaxIt, theta, lo, hi, math.Abs(hi-lo)/hi)
}

// feval evaluates θ(ψ) and counts
func (o *NumInverse) feval(mdl Model, psi float64) float64 {
	o.NumFeval++
	return mdl.Theta(psi)
}

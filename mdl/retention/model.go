// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for soil water retention curves
//  The models relate the soil water potential (suction) ψ to the volumetric
//  water content θ. Potentials are given as positive suctions in centimetres
//  of water column; the sign of ψ is ignored.
//  References:
//   [1] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Science Society of America Journal,
//       44(5), 892-898, http://dx.doi.org/10.2136/sssaj1980.03615995004400050002x
//   [2] Carsel RF and Parrish RS (1988) Developing joint probability distributions of
//       soil water retention characteristics. Water Resources Research, 24(5), 755-769,
//       http://dx.doi.org/10.1029/WR024i005p00755
package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model implements a soil water retention model
//  Cc computes the specific moisture capacity dθ/d|ψ|
type Model interface {
	Init(prms dbf.Params) error                 // initialises retention model
	GetPrms(example bool) dbf.Params            // gets (an example) of parameters
	ThetaMin() float64                          // returns θr
	ThetaMax() float64                          // returns θs
	Theta(psi float64) float64                  // computes θ from ψ [cm]
	Psi(theta float64) (psi float64, err error) // computes ψ [cm] from θ
	Cc(psi float64) float64                     // computes Cc = dθ/d|ψ|
}

// DomainError reports a water content outside (θr, θs]
type DomainError struct {
	Theta    float64 // given water content
	ThetaMin float64 // residual water content θr (excluded)
	ThetaMax float64 // saturated water content θs (included)
}

// Error implements the error interface
func (o *DomainError) Error() string {
	return io.Sf("water content θ=%g is outside (θr, θs] = (%g, %g]", o.Theta, o.ThetaMin, o.ThetaMax)
}

// checkDomain returns a DomainError if theta is outside (θmin, θmax]
func checkDomain(theta, θmin, θmax float64) error {
	if math.IsNaN(theta) || theta <= θmin || theta > θmax {
		return &DomainError{theta, θmin, θmax}
	}
	return nil
}

// ThetaU computes θ for ψ given in unit
func ThetaU(mdl Model, psi float64, unit Unit) float64 {
	return mdl.Theta(unit.ToCm(psi))
}

// PsiU computes ψ in unit for given θ
func PsiU(mdl Model, theta float64, unit Unit) (psi float64, err error) {
	psi, err = mdl.Psi(theta)
	if err != nil {
		return
	}
	return unit.FromCm(psi), nil
}

// ThetaSeq computes θ for all potentials in Psi given in unit
func ThetaSeq(mdl Model, Psi []float64, unit Unit) (Theta []float64) {
	Theta = make([]float64, len(Psi))
	for i, psi := range Psi {
		Theta[i] = ThetaU(mdl, psi, unit)
	}
	return
}

// PsiSeq computes ψ in unit for all water contents in Theta.
// It stops at the first value outside the domain.
func PsiSeq(mdl Model, Theta []float64, unit Unit) (Psi []float64, err error) {
	Psi = make([]float64, len(Theta))
	for i, theta := range Theta {
		Psi[i], err = PsiU(mdl, theta, unit)
		if err != nil {
			return nil, chk.Err("cannot compute ψ[%d]:\n%v", i, err)
		}
	}
	return
}

// New returns new retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

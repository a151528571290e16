// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's model
//   θ(ψ) = θr + (θs - θr) / (1 + (α・|ψ|)ⁿ)ᵐ   with   m = 1 - 1/n
type VanGen struct {

	// parameters
	θs float64 // saturated water content
	θr float64 // residual water content
	α  float64 // inverse of air-entry suction [1/cm]
	n  float64 // shape exponent (n > 1)

	// derived
	m float64 // 1 - 1/n
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Loam returns van Genuchten's model with the loam parameters from HYDRUS
func Loam() (o VanGen) {
	err := o.Init(o.GetPrms(true))
	if err != nil {
		chk.Panic("cannot initialise loam parameters:\n%v", err)
	}
	return
}

// Forward computes θ for ψ given in unit using the loam parameters
func Forward(psi float64, unit Unit) float64 {
	mdl := Loam()
	return ThetaU(&mdl, psi, unit)
}

// Inverse computes ψ in unit for given θ using the loam parameters.
// A *DomainError is returned if θ is outside (θr, θs].
func Inverse(theta float64, unit Unit) (psi float64, err error) {
	mdl := Loam()
	return PsiU(&mdl, theta, unit)
}

// Init initialises model
//  Missing parameters take their default values: θs = 1, θr = 0, α = 0, n = 0.
//  The model is only modified if all parameters are valid.
func (o *VanGen) Init(prms dbf.Params) (err error) {
	var tmp VanGen
	tmp.θs = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "thetas":
			tmp.θs = p.V
		case "thetar":
			tmp.θr = p.V
		case "alp":
			tmp.α = p.V
		case "n":
			tmp.n = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if tmp.n <= 1 {
		return chk.Err("vg: n must be greater than 1. n = %g is invalid\n", tmp.n)
	}
	if tmp.α <= 0 {
		return chk.Err("vg: alp must be positive. alp = %g is invalid\n", tmp.α)
	}
	if tmp.θr < 0 || tmp.θr >= tmp.θs || tmp.θs > 1 {
		return chk.Err("vg: water contents must satisfy 0 ≤ thetar < thetas ≤ 1. thetar = %g and thetas = %g are invalid\n", tmp.θr, tmp.θs)
	}
	tmp.m = 1.0 - 1.0/tmp.n
	*o = tmp
	return
}

// GetPrms gets (an example) of parameters
//  The example corresponds to a loam soil
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "thetas", V: 0.3991}, // [cm³/cm³]
			&dbf.P{N: "thetar", V: 0.0609}, // [cm³/cm³]
			&dbf.P{N: "alp", V: 0.0111},    // [1/cm]
			&dbf.P{N: "n", V: 1.4737},      // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "thetas", V: o.θs},
		&dbf.P{N: "thetar", V: o.θr},
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "n", V: o.n},
	}
}

// ThetaMin returns θr
func (o VanGen) ThetaMin() float64 {
	return o.θr
}

// ThetaMax returns θs
func (o VanGen) ThetaMax() float64 {
	return o.θs
}

// M returns the derived exponent m = 1 - 1/n
func (o VanGen) M() float64 {
	return o.m
}

// Se returns the effective saturation (θ - θr) / (θs - θr) clipped to [0, 1]
func (o VanGen) Se(theta float64) float64 {
	se := (theta - o.θr) / (o.θs - o.θr)
	return math.Min(math.Max(se, 0), 1)
}

// Theta computes θ from ψ [cm]
func (o VanGen) Theta(psi float64) float64 {
	psi = math.Abs(psi)
	if psi == 0 {
		return o.θs
	}
	c := math.Pow(o.α*psi, o.n)
	return o.θr + (o.θs-o.θr)*math.Pow(1.0+c, -o.m)
}

// Psi computes ψ [cm] from θ using the closed-form inverse
//   ψ = (1/α)・(Se^(-1/m) - 1)^(1/n)   with   Se = (θ - θr) / (θs - θr)
func (o VanGen) Psi(theta float64) (float64, error) {
	err := checkDomain(theta, o.θr, o.θs)
	if err != nil {
		return 0, err
	}
	se := (theta - o.θr) / (o.θs - o.θr)
	if se >= 1 {
		return 0, nil
	}
	return math.Pow(math.Pow(se, -1.0/o.m)-1.0, 1.0/o.n) / o.α, nil
}

// Cc computes Cc = dθ/d|ψ|
func (o VanGen) Cc(psi float64) float64 {
	psi = math.Abs(psi)
	if psi == 0 {
		return 0
	}
	c := math.Pow(o.α*psi, o.n)
	return -(o.θs - o.θr) * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / psi
}

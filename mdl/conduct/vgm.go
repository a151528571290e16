// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/vangen/mdl/retention"
)

// VanGenMualem implements the relative conductivity of van Genuchten and Mualem
//   klr(se) = seˡ・(1 - (1 - se^(1/m))ᵐ)²
type VanGenMualem struct {
	m float64 // van Genuchten's exponent m = 1 - 1/n
	l float64 // pore connectivity
}

// add model to factory
func init() {
	allocators["vgm"] = func() Model { return new(VanGenMualem) }
}

// FromRetention returns a new VanGenMualem model sharing m with the retention model
// and using the default pore connectivity l = 0.5
func FromRetention(lrm retention.VanGen) (o *VanGenMualem) {
	o = new(VanGenMualem)
	err := o.Init(dbf.Params{
		&dbf.P{N: "m", V: lrm.M()},
		&dbf.P{N: "l", V: 0.5},
	})
	if err != nil {
		chk.Panic("cannot initialise conductivity model:\n%v", err)
	}
	return
}

// Init initialises this structure
//  The model is only modified if all parameters are valid
func (o *VanGenMualem) Init(prms dbf.Params) (err error) {
	var tmp VanGenMualem
	tmp.l = 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "m":
			tmp.m = p.V
		case "l":
			tmp.l = p.V
		default:
			return chk.Err("vgm: parameter named %q is incorrect\n", p.N)
		}
	}
	if tmp.m <= 0 || tmp.m >= 1 {
		return chk.Err("vgm: m must be in (0, 1). m = %g is invalid\n", tmp.m)
	}
	*o = tmp
	return
}

// GetPrms gets (an example) of parameters
func (o VanGenMualem) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "m", V: 1.0 - 1.0/1.4737},
			&dbf.P{N: "l", V: 0.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "l", V: o.l},
	}
}

// Klr returns klr
func (o VanGenMualem) Klr(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return 1
	}
	g := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/o.m), o.m)
	return math.Pow(se, o.l) * g * g
}

// DklrDse returns ∂klr/∂se
//  Note: the derivative is unbounded at se = 1
func (o VanGenMualem) DklrDse(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return math.Inf(1)
	}
	u := math.Pow(se, 1.0/o.m)
	w := 1.0 - u
	g := 1.0 - math.Pow(w, o.m)
	return math.Pow(se, o.l) * g * (o.l*g/se + 2.0*math.Pow(w, o.m-1.0)*u/se)
}

// KlrTheta returns klr for the water content theta of the retention model lrm
func KlrTheta(mdl Model, lrm retention.VanGen, theta float64) float64 {
	return mdl.Klr(lrm.Se(theta))
}

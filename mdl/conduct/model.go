// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the relative hydraulic conductivity of soils
//  References:
//   [1] Mualem Y (1976) A new model for predicting the hydraulic conductivity of
//       unsaturated porous media. Water Resources Research, 12(3), 513-522,
//       http://dx.doi.org/10.1029/WR012i003p00513
//   [2] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Science Society of America Journal,
//       44(5), 892-898, http://dx.doi.org/10.2136/sssaj1980.03615995004400050002x
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines liquid conductivity models
//  se is the effective saturation (θ - θr) / (θs - θr)
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Klr(se float64) float64          // Klr returns klr
	DklrDse(se float64) float64      // DklrDse returns ∂klr/∂se
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

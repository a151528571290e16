// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements examples and reference calculations using retention models
package ana

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/vangen/mdl/retention"
)

// InitWater estimates the initial water content of a soil profile from potentials
// given at the boundaries of consecutive layers:
//
//    θ[i]   = θ(ψ[i])
//    avg[j] = (θ[j] + θ[j+1]) / 2         j = 0 ... n-2
//    total  = Depth・Σ avg[j]
//
type InitWater struct {
	Depth float64   // factor multiplying the sum of layer averages; e.g. 40
	Theta []float64 // water content corresponding to each potential
	Avg   []float64 // average water content of each pair of adjacent potentials
	Total float64   // Depth times the sum of averages
}

// DefaultPotentials returns the default initial potentials [hPa] of a soil profile
func DefaultPotentials() []float64 {
	return []float64{-15000, -300, -300, -300}
}

// Init initialises this structure
func (o *InitWater) Init(depth float64) {
	o.Depth = depth
	o.Theta, o.Avg, o.Total = nil, nil, 0
}

// Calc computes the water contents, their averages and the total
func (o *InitWater) Calc(mdl retention.Model, Psi []float64, unit retention.Unit) (total float64, err error) {
	if len(Psi) < 2 {
		return 0, chk.Err("at least two potentials are required. %d is invalid\n", len(Psi))
	}
	o.Theta = retention.ThetaSeq(mdl, Psi, unit)
	o.Avg = make([]float64, len(Psi)-1)
	o.Total = 0
	for j := 0; j < len(o.Avg); j++ {
		o.Avg[j] = (o.Theta[j] + o.Theta[j+1]) / 2.0
		o.Total += o.Avg[j]
	}
	o.Total *= o.Depth
	return o.Total, nil
}

// String returns a summary of results
func (o InitWater) String() string {
	b := new(bytes.Buffer)
	io.Ff(b, "%8s%14s%14s\n", "i", "θ", "avg")
	for i, theta := range o.Theta {
		if i < len(o.Avg) {
			io.Ff(b, "%8d%14.8f%14.8f\n", i, theta, o.Avg[i])
			continue
		}
		io.Ff(b, "%8d%14.8f%14s\n", i, theta, "")
	}
	io.Ff(b, "total water content = %g\n", o.Total)
	return b.String()
}

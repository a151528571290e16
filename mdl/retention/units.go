// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Unit defines the unit of the soil water potential ψ
type Unit int

const (
	Centimeters  Unit = iota // centimetres of water column [cm]
	Hectopascals             // [hPa]
)

// String returns the symbol of the unit
func (u Unit) String() string {
	switch u {
	case Centimeters:
		return "cm"
	case Hectopascals:
		return "hPa"
	}
	return io.Sf("Unit(%d)", int(u))
}

// Valid tells whether u is one of the known units
func (u Unit) Valid() bool {
	return u == Centimeters || u == Hectopascals
}

// ToCm converts ψ given in unit u to centimetres.
//  Note: an unknown unit is reported and ψ is taken as centimetres
func (u Unit) ToCm(psi float64) float64 {
	switch u {
	case Centimeters:
		return psi
	case Hectopascals:
		return 10.0 * psi / 9.81
	}
	warnUnit(u)
	return psi
}

// FromCm converts ψ given in centimetres to unit u.
//  Note: an unknown unit is reported and ψ is returned in centimetres
func (u Unit) FromCm(psiCm float64) float64 {
	switch u {
	case Centimeters:
		return psiCm
	case Hectopascals:
		return psiCm * 9.81 / 10.0
	}
	warnUnit(u)
	return psiCm
}

// ParseUnit parses "cm" or "hPa" (case insensitive)
func ParseUnit(s string) (u Unit, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm":
		return Centimeters, nil
	case "hpa":
		return Hectopascals, nil
	}
	return Centimeters, chk.Err("unit %q is invalid; the only units accepted are \"cm\" and \"hPa\"", s)
}

// warnUnit prints a warning about an unknown unit
func warnUnit(u Unit) {
	io.PfRed("wrong unit provided: %v; the only units accepted are cm or hPa. using cm\n", u)
}

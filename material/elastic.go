// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "github.com/cpmech/gosl/chk"

// Calc_G_from_Enu returns the shear modulus G from Young's modulus E and Poisson's coefficient ν
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2 * (1 + ν))
}

// Calc_K_from_Enu returns the bulk modulus K from Young's modulus E and Poisson's coefficient ν
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3 * (1 - 2*ν))
}

// Calc_l_from_Enu returns Lamé's first parameter λ from Young's modulus E and Poisson's coefficient ν
func Calc_l_from_Enu(E, ν float64) float64 {
	return E * ν / ((1 + ν) * (1 - 2*ν))
}

// Calc_nu_from_EG returns Poisson's coefficient ν from Young's modulus E and shear modulus G
func Calc_nu_from_EG(E, G float64) float64 {
	return E/(2*G) - 1
}

// Calc_E_from_Gnu returns Young's modulus E from shear modulus G and Poisson's coefficient ν
func Calc_E_from_Gnu(G, ν float64) float64 {
	return 2 * G * (1 + ν)
}

// Moduli returns the isotropic elastic moduli of this material
//  Two of E, ν and G must be given; the third one is computed if missing.
//  K and λ are always computed from E and ν
func (o *Material) Moduli() (E, ν, G, K, λ float64, err error) {
	hasE, hasNu, hasG := o.Has("E"), o.Has("nu"), o.Has("G")
	E, ν, G = o.E, o.Nu, o.G
	switch {
	case hasE && hasNu:
		if !hasG {
			G = Calc_G_from_Enu(E, ν)
		}
	case hasE && hasG:
		if G <= 0 {
			return 0, 0, 0, 0, 0, chk.Err("material %q: G=%g must be positive to compute ν", o.Name, G)
		}
		ν = Calc_nu_from_EG(E, G)
	case hasNu && hasG:
		E = Calc_E_from_Gnu(G, ν)
	default:
		return 0, 0, 0, 0, 0, chk.Err("material %q: two of E, nu and G are required to compute elastic moduli", o.Name)
	}
	K = Calc_K_from_Enu(E, ν)
	λ = Calc_l_from_Enu(E, ν)
	return
}

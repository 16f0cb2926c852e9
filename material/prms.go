// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Prm holds one material property: a scalar or a matrix
type Prm struct {
	N string      `json:"n" yaml:"n"`                     // name of property. ex: E, nu, rho, D
	V float64     `json:"v" yaml:"v"`                     // value of scalar property
	M [][]float64 `json:"m,omitempty" yaml:"m,omitempty"` // value of matrix property; nil for scalars. ex: 18x18 constitutive matrix
	U string      `json:"u,omitempty" yaml:"u,omitempty"` // unit (not verified)
}

// IsMatrix tells whether this property holds a matrix
func (o *Prm) IsMatrix() bool {
	return o.M != nil
}

// GetCopy returns a deep copy of this property
func (o *Prm) GetCopy() *Prm {
	return &Prm{N: o.N, V: o.V, M: matCopy(o.M), U: o.U}
}

// Prms holds an ordered list of properties
type Prms []*Prm

// Find finds a property by name
//  Note: returns nil if not found
func (o Prms) Find(name string) *Prm {
	for _, p := range o {
		if p != nil && p.N == name {
			return p
		}
	}
	return nil
}

// Names returns the names of all properties, in order
func (o Prms) Names() (names []string) {
	names = make([]string, 0, len(o))
	for _, p := range o {
		if p != nil {
			names = append(names, p.N)
		}
	}
	return
}

// GetCopy returns a deep copy of the list
//  Note: 1) nil entries are skipped
//        2) repeated names are merged: the first position is kept and the last value wins
func (o Prms) GetCopy() (res Prms) {
	res = make([]*Prm, 0, len(o))
	names := make([]string, 0, len(o))
	for _, p := range o {
		if p == nil {
			continue
		}
		idx := utl.StrIndexSmall(names, p.N)
		if idx < 0 {
			names = append(names, p.N)
			res = append(res, p.GetCopy())
			continue
		}
		res[idx] = p.GetCopy()
	}
	return
}

// String returns the list in .mat (JSON) format
func (o Prms) String() (l string) {
	for _, p := range o {
		if p == nil {
			continue
		}
		if l != "" {
			l += ",\n"
		}
		if p.IsMatrix() {
			l += io.Sf(`{"n":%q, "m":%v`, p.N, p.M)
		} else {
			l += io.Sf(`{"n":%q, "v":%v`, p.N, p.V)
		}
		if p.U != "" {
			l += io.Sf(`, "u":%q`, p.U)
		}
		l += "}"
	}
	return
}

// matCopy returns a deep copy of a matrix; nil remains nil
func matCopy(a [][]float64) (b [][]float64) {
	if a == nil {
		return nil
	}
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = utl.GetCopy(a[i])
	}
	return
}

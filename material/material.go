// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements the physical properties of the base material of a lattice
package material

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// default values
const (
	DefaultName = "Steel"    // name of default material
	DefaultKind = KindCauchy // type of default material
)

// Material holds the physical properties of a material used by lattice elements
//
//  Every property in Prms is also projected into the typed field with the same meaning:
//
//    E -> E    nu -> Nu    G -> G    K -> K    rho -> Rho    D -> D
//
//  Properties without a typed field are reached with Get and GetMatrix.
//  Prms must only be modified through Set and SetMatrix, which keep both views in sync.
//  E, nu, G, K and rho are always scalars. A plain struct copy shares the properties
//  with the original; use GetCopy instead.
type Material struct {

	// input
	Name string // name of material. ex: Steel
	Kind string // type of constitutive model. ex: Cauchy, Classical, Cosserat
	Prms Prms   // all properties, including derived ones

	// projected
	E   float64     // Young's modulus
	Nu  float64     // Poisson's coefficient
	G   float64     // shear modulus
	K   float64     // bulk modulus
	Rho float64     // density
	D   [][]float64 // constitutive matrix. ex: [18][18] for micropolar materials
}

// scalars maps names of properties to projected scalar fields
var scalars = map[string]func(o *Material) *float64{
	"E":   func(o *Material) *float64 { return &o.E },
	"nu":  func(o *Material) *float64 { return &o.Nu },
	"G":   func(o *Material) *float64 { return &o.G },
	"K":   func(o *Material) *float64 { return &o.K },
	"rho": func(o *Material) *float64 { return &o.Rho },
}

// DefaultPrms returns a new list with the properties of a generic steel
func DefaultPrms() Prms {
	return []*Prm{
		&Prm{N: "E", V: 200e3},
		&Prm{N: "nu", V: 0.3},
		&Prm{N: "rho", V: 7.7e-9},
	}
}

// New returns a new material after checking the properties required by its kind and
// computing the derived ones
//  name -- name of material; "" => DefaultName
//  kind -- type of material; "" => DefaultKind
//  prms -- properties; nil => DefaultPrms(). The list is deep copied and never modified
//  Note: on failure, no material is returned. The error is a *ValidationError if required
//        properties are missing
func New(name, kind string, prms Prms) (o *Material, err error) {
	if name == "" {
		name = DefaultName
	}
	if kind == "" {
		kind = DefaultKind
	}
	if prms == nil {
		prms = DefaultPrms()
	}
	mat := &Material{Name: name, Kind: kind, Prms: prms.GetCopy()}
	for _, p := range mat.Prms {
		if err = checkScalar(p); err != nil {
			return nil, chk.Err("material %q: %v", name, err)
		}
		mat.project(p)
	}
	err = getDeriver(kind)(mat)
	if err != nil {
		return nil, err
	}
	return mat, nil
}

// Default returns the default steel material
func Default() *Material {
	o, err := New(DefaultName, DefaultKind, nil)
	if err != nil {
		panic(err) // cannot happen: default properties are complete
	}
	return o
}

// GetCopy returns a deep copy of this material
func (o *Material) GetCopy() *Material {
	res := &Material{Name: o.Name, Kind: o.Kind, Prms: o.Prms.GetCopy()}
	for _, p := range res.Prms {
		res.project(p)
	}
	return res
}

// Has tells whether a property named name exists
func (o *Material) Has(name string) bool {
	return o.Prms.Find(name) != nil
}

// Get returns the scalar value of property name
//  Note: found is false if the property does not exist or is a matrix
func (o *Material) Get(name string) (val float64, found bool) {
	if p := o.Prms.Find(name); p != nil && !p.IsMatrix() {
		return p.V, true
	}
	return
}

// GetMatrix returns the matrix value of property name
//  Note: found is false if the property does not exist or is a scalar
func (o *Material) GetMatrix(name string) (val [][]float64, found bool) {
	if p := o.Prms.Find(name); p != nil && p.IsMatrix() {
		return p.M, true
	}
	return
}

// Set sets the scalar value of property name, adding it if not present, and
// updates the projected field
func (o *Material) Set(name string, val float64) {
	p := o.find(name)
	p.V, p.M = val, nil
	o.project(p)
}

// SetMatrix sets (a copy of) the matrix value of property name, adding it if not
// present, and updates the projected field
//  Note: E, nu, G, K and rho cannot hold matrices
func (o *Material) SetMatrix(name string, val [][]float64) (err error) {
	if _, ok := scalars[name]; ok {
		return chk.Err("property %q must be a scalar", name)
	}
	p := o.find(name)
	p.V, p.M = 0, matCopy(val)
	o.project(p)
	return
}

// String returns a formatted table with all properties
func (o *Material) String() string {
	var b bytes.Buffer
	io.Ff(&b, "%s (%s)\n", o.Name, o.Kind)
	n := 0
	for _, p := range o.Prms {
		if len(p.N) > n {
			n = len(p.N)
		}
	}
	for _, p := range o.Prms {
		if p.IsMatrix() {
			ncol := 0
			if len(p.M) > 0 {
				ncol = len(p.M[0])
			}
			io.Ff(&b, "  %-*s = [%d x %d]", n, p.N, len(p.M), ncol)
		} else {
			io.Ff(&b, "  %-*s = %v", n, p.N, p.V)
		}
		if p.U != "" {
			io.Ff(&b, " %s", p.U)
		}
		io.Ff(&b, "\n")
	}
	return b.String()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// find finds property or appends a new one
func (o *Material) find(name string) *Prm {
	if p := o.Prms.Find(name); p != nil {
		return p
	}
	p := &Prm{N: name}
	o.Prms = append(o.Prms, p)
	return p
}

// checkScalar checks that properties with scalar fields do not hold matrices
func checkScalar(p *Prm) error {
	if _, ok := scalars[p.N]; ok && p.IsMatrix() {
		return chk.Err("property %q must be a scalar", p.N)
	}
	return nil
}

// project copies the value of property into the corresponding field, if any
func (o *Material) project(p *Prm) {
	if field, ok := scalars[p.N]; ok {
		*field(o) = p.V
		return
	}
	if p.N == "D" {
		o.D = p.M
	}
}

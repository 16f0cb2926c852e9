// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "sort"

// kinds of materials
const (
	KindCauchy    = "Cauchy"    // isotropic linear elasticity
	KindClassical = "Classical" // same as Cauchy
	KindCosserat  = "Cosserat"  // micropolar elasticity
)

// Deriver checks the properties required by a kind of material and adds the derived ones.
// It runs once, after the properties have been projected; derived values must be
// added with Set or SetMatrix
type Deriver func(o *Material) error

// derivers holds all known kinds of materials; kind => deriver
//  Note: unknown kinds are accepted with no derivation
var derivers = map[string]Deriver{}

// add kinds to factory
func init() {
	derivers[KindCauchy] = deriveIsotropic
	derivers[KindClassical] = deriveIsotropic
	derivers[KindCosserat] = passThrough
}

// Register adds or replaces the deriver of a kind of material
//  Note: not safe to call concurrently with New; call it from init functions
func Register(kind string, deriver Deriver) {
	if deriver == nil {
		deriver = passThrough
	}
	derivers[kind] = deriver
}

// Kinds returns the sorted list of registered kinds
func Kinds() (kinds []string) {
	kinds = make([]string, 0, len(derivers))
	for kind := range derivers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return
}

// getDeriver returns the deriver of kind or passThrough if kind is unknown
func getDeriver(kind string) Deriver {
	if deriver, ok := derivers[kind]; ok {
		return deriver
	}
	return passThrough
}

// passThrough keeps the properties as given
func passThrough(o *Material) error {
	return nil
}

// deriveIsotropic computes G from E and ν unless G is given
func deriveIsotropic(o *Material) error {
	if o.Has("G") {
		return nil
	}
	var missing []string
	for _, name := range []string{"E", "nu"} {
		if !o.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Material: o.Name, Kind: o.Kind, Missing: missing}
	}
	o.Set("G", Calc_G_from_Enu(o.E, o.Nu))
	return nil
}

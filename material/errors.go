// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// ValidationError reports a material whose kind requires properties that were not given
type ValidationError struct {
	Material string   // name of material
	Kind     string   // type of material
	Missing  []string // names of missing properties. ex: ["E", "nu"]
}

// Error returns the error message, naming all missing properties
func (o *ValidationError) Error() string {
	quoted := make([]string, len(o.Missing))
	for i, name := range o.Missing {
		quoted[i] = io.Sf("%q", name)
	}
	return io.Sf("material %q of type %q: missing required property %s. E and nu are required to compute G when G is not given",
		o.Material, o.Kind, strings.Join(quoted, " and "))
}

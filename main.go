// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/huang-lihao/MetaLattice/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".mat", true)
	verbose := io.ArgToBool(1, true)
	showInfo := io.ArgToBool(2, false)

	// message
	io.Verbose = verbose
	if verbose {
		io.PfWhite("\nMetaLattice -- materials for lattice metamaterials\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"print materials with derived properties", "showInfo", showInfo,
		))
	}

	// materials database
	mdb, err := inp.ReadMat(filepath.Dir(fnamepath), filepath.Base(fnamepath), verbose)
	if err != nil {
		chk.Panic("cannot read materials database:\n%v", err)
	}

	// summary
	for _, name := range mdb.Names() {
		mat := mdb.Get(name)
		io.Pf("\n%v", mat)
		if E, ν, G, K, λ, err := mat.Moduli(); err == nil {
			io.Pforan("  E=%g ν=%g G=%g K=%g λ=%g\n", E, ν, G, K, λ)
		}
	}

	// derived properties in .mat format
	if showInfo {
		io.Verbose = true
		io.Pf("\n")
		err = mdb.GetInfo(os.Stdout)
		if err != nil {
			chk.Panic("cannot write materials database:\n%v", err)
		}
		io.Pf("\n")
	}
}

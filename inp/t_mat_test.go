// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkLatticeDb checks the materials in data/lattice.mat and data/lattice.yaml
func checkLatticeDb(tst *testing.T, mdb *MatDb) {

	chk.Strings(tst, "names", mdb.Names(), []string{"Steel", "Aluminium", "Rubber", "Lattice Metamaterial"})
	chk.String(tst, mdb.Desc, "materials for lattice metamaterials")

	steel := mdb.Get("Steel")
	if steel == nil {
		tst.Errorf("cannot get Steel\n")
		return
	}
	chk.Strings(tst, "steel", steel.Prms.Names(), []string{"E", "nu", "rho", "G"})
	chk.Scalar(tst, "steel: G", 1e-10, steel.G, 76923.07692307692)
	chk.String(tst, mdb.GetData("Steel").Desc, "generic steel; default properties")

	alu := mdb.Get("Aluminium")
	if alu == nil {
		tst.Errorf("cannot get Aluminium\n")
		return
	}
	chk.String(tst, alu.Kind, "Classical")
	chk.Scalar(tst, "alu: E  ", 1e-17, alu.E, 70000)
	chk.Scalar(tst, "alu: nu ", 1e-17, alu.Nu, 0.25)
	chk.Scalar(tst, "alu: rho", 1e-17, alu.Rho, 2.7e-9)
	chk.Scalar(tst, "alu: G  ", 1e-17, alu.G, 28000)
	chk.String(tst, alu.Prms.Find("E").U, "MPa")

	rubber := mdb.Get("Rubber")
	if rubber == nil {
		tst.Errorf("cannot get Rubber\n")
		return
	}
	chk.Strings(tst, "rubber", rubber.Prms.Names(), []string{"G", "rho"})
	chk.Scalar(tst, "rubber: G", 1e-17, rubber.G, 0.4)

	meta := mdb.Get("Lattice Metamaterial")
	if meta == nil {
		tst.Errorf("cannot get Lattice Metamaterial\n")
		return
	}
	chk.String(tst, meta.Kind, "Cosserat")
	chk.Matrix(tst, "meta: D", 1e-17, meta.D, [][]float64{{10, 2, 0}, {2, 10, 0}, {0, 0, 4}})
	lc, found := meta.Get("lc")
	if !found {
		tst.Errorf("cannot find lc\n")
		return
	}
	chk.Scalar(tst, "meta: lc", 1e-17, lc, 0.5)
	if meta.Has("G") {
		tst.Errorf("G must not be derived for Cosserat materials\n")
	}

	if mdb.Get("Wood") != nil || mdb.GetData("Wood") != nil {
		tst.Errorf("Wood is not in the database\n")
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. reading JSON and YAML files")

	for _, fn := range []string{"lattice.mat", "lattice.yaml"} {
		mdb, err := ReadMat("data", fn, chk.Verbose)
		if err != nil {
			tst.Errorf("ReadMat failed on %q:\n%v\n", fn, err)
			return
		}
		checkLatticeDb(tst, mdb)
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. invalid files")

	_, err := ReadMat("data", "missingnu.mat", false)
	if err == nil {
		tst.Errorf("ReadMat should have failed on missing nu\n")
		return
	}
	io.Pforan("%v\n", err)
	if !strings.Contains(err.Error(), `"nu"`) {
		tst.Errorf("error message should name nu: %v\n", err)
	}

	_, err = ReadMat("data", "repeated.yml", false)
	if err == nil {
		tst.Errorf("ReadMat should have failed on repeated names\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = ReadMat("data", "inexistent.mat", false)
	if err == nil {
		tst.Errorf("ReadMat should have failed on inexistent file\n")
		return
	}
	io.Pforan("%v\n", err)

	dir := tst.TempDir()
	err = os.WriteFile(filepath.Join(dir, "bad.mat"), []byte(`{"materials": [`), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v\n", err)
		return
	}
	_, err = ReadMat(dir, "bad.mat", false)
	if err == nil {
		tst.Errorf("ReadMat should have failed on bad JSON\n")
	}
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. writing info")

	mdb, err := ReadMat("data", "lattice.yaml", false)
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v\n", err)
		return
	}

	dir := tst.TempDir()
	fil, err := os.Create(filepath.Join(dir, "info.mat"))
	if err != nil {
		tst.Errorf("cannot create file: %v\n", err)
		return
	}
	err = mdb.GetInfo(fil)
	fil.Close()
	if err != nil {
		tst.Errorf("GetInfo failed: %v\n", err)
		return
	}

	// derived properties are now given
	info, err := ReadMat(dir, "info.mat", false)
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v\n", err)
		return
	}
	checkLatticeDb(tst, info)
	chk.Strings(tst, "alu", info.GetData("Aluminium").Prms.Names(), []string{"E", "nu", "rho", "G"})
	chk.Scalar(tst, "alu: G", 1e-17, info.GetData("Aluminium").Prms.Find("G").V, 28000)
}

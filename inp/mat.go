// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a materials database (.mat) file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/huang-lihao/MetaLattice/material"
)

// MatData holds material data
type MatData struct {
	Name string        `json:"name" yaml:"name"` // name of material. ex: Steel
	Type string        `json:"type" yaml:"type"` // type of material. ex: Cauchy, Cosserat
	Desc string        `json:"desc" yaml:"desc"` // description of material
	Prms material.Prms `json:"prms" yaml:"prms"` // properties; missing => default steel properties
}

// MatDb holds all materials' data
type MatDb struct {

	// input
	Desc      string     `json:"desc" yaml:"desc"`           // description of database
	Materials []*MatData `json:"materials" yaml:"materials"` // all materials

	// derived
	mats     []*material.Material // materials built from data, in the same order
	name2idx map[string]int       // maps name of material to index in Materials
}

// ReadMat reads all materials data from a .mat (JSON) or .yaml file
//  dir -- directory; environment variables are expanded
//  fn  -- filename; the extension selects the decoder: .yaml or .yml => YAML; otherwise JSON
func ReadMat(dir, fn string, verbose bool) (o *MatDb, err error) {

	// read file
	path := filepath.Join(os.ExpandEnv(dir), fn)
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", path, err)
	}

	// decode
	o = new(MatDb)
	switch io.FnExt(fn) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", path, err)
	}

	// build materials
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("materials file %q is invalid:\n%v", path, err)
	}
	if verbose {
		io.Pf("%d materials read from %q\n", len(o.mats), path)
		for _, mat := range o.mats {
			io.Pf("  %-24s %-10s %d properties\n", mat.Name, mat.Kind, len(mat.Prms))
		}
	}
	return
}

// PostProcess builds all materials from the data just read
//  Note: names of materials must be unique
func (o *MatDb) PostProcess() (err error) {
	o.mats = make([]*material.Material, 0, len(o.Materials))
	o.name2idx = make(map[string]int)
	for i, m := range o.Materials {
		if m == nil {
			return chk.Err("material # %d is empty", i)
		}
		mat, err := material.New(m.Name, m.Type, m.Prms)
		if err != nil {
			return chk.Err("cannot set material # %d:\n%v", i, err)
		}
		if _, ok := o.name2idx[mat.Name]; ok {
			return chk.Err("material named %q is repeated", mat.Name)
		}
		o.name2idx[mat.Name] = i
		o.mats = append(o.mats, mat)
	}
	return
}

// Get returns the material named name
//  Note: returns nil if not found
func (o *MatDb) Get(name string) *material.Material {
	idx, ok := o.name2idx[name]
	if !ok {
		return nil
	}
	return o.mats[idx]
}

// GetData returns the input data of the material named name
//  Note: returns nil if not found
func (o *MatDb) GetData(name string) *MatData {
	idx, ok := o.name2idx[name]
	if !ok {
		return nil
	}
	return o.Materials[idx]
}

// Names returns the names of all materials, in file order
func (o *MatDb) Names() (names []string) {
	names = make([]string, len(o.mats))
	for i, mat := range o.mats {
		names[i] = mat.Name
	}
	return
}

// GetInfo writes all materials, including derived properties, in .mat (JSON) format
func (o *MatDb) GetInfo(w goio.Writer) (err error) {
	res := MatDb{Desc: o.Desc}
	for i, mat := range o.mats {
		res.Materials = append(res.Materials, &MatData{
			Name: mat.Name,
			Type: mat.Kind,
			Desc: o.Materials[i].Desc,
			Prms: mat.Prms,
		})
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

/*
Copyright © 2025 the seaice authors.
This file is part of seaice.

seaice is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seaice is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seaice.  If not, see <http://www.gnu.org/licenses/>.
*/

package seaice

import (
	"sort"

	"github.com/ctessum/sparse"
)

// Encoding holds the storage parameters of a variable: how the data
// values are packed when the variable is serialized to a NetCDF file.
// Data held in memory is always in unpacked (physical) units;
// physical = packed*ScaleFactor + AddOffset.
type Encoding struct {
	ScaleFactor float64
	AddOffset   float64
	FillValue   float64
	HasFill     bool
	// Dtype is the NetCDF storage type: one of
	// "BYTE", "SHORT", "INT", "FLOAT" or "DOUBLE".
	Dtype string
}

// scale returns the scale factor and additive offset,
// substituting the defaults of 1 and 0 where they are unset.
func (e Encoding) scale() (scaleFactor, addOffset float64) {
	scaleFactor = e.ScaleFactor
	if scaleFactor == 0 {
		scaleFactor = 1
	}
	return scaleFactor, e.AddOffset
}

// A Variable is a multidimensional array of numeric samples together
// with its semantic attributes and storage parameters. String-valued
// scalar variables (for example a sensor identifier) hold their value
// in Str and have nil Data.
type Variable struct {
	Name string

	Data *sparse.DenseArray
	Str  string

	Dims     []string
	Attrs    map[string]interface{}
	Encoding Encoding
}

// Copy returns a deep copy of v.
func (v *Variable) Copy() *Variable {
	o := &Variable{
		Name:     v.Name,
		Str:      v.Str,
		Dims:     append([]string{}, v.Dims...),
		Attrs:    make(map[string]interface{}, len(v.Attrs)),
		Encoding: v.Encoding,
	}
	if v.Data != nil {
		o.Data = v.Data.Copy()
	}
	for a, val := range v.Attrs {
		o.Attrs[a] = val
	}
	return o
}

// A Dataset is a mapping from variable names to Variables, plus the
// shared dimension definitions and the global attributes of the file
// the variables came from. Variables listed in Coords act as
// coordinates rather than data variables.
type Dataset struct {
	Dims   map[string]int
	Vars   map[string]*Variable
	Attrs  map[string]interface{}
	Coords map[string]bool
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Dims:   make(map[string]int),
		Vars:   make(map[string]*Variable),
		Attrs:  make(map[string]interface{}),
		Coords: make(map[string]bool),
	}
}

// DataVars returns the sorted names of the variables that are not
// acting as coordinates.
func (d *Dataset) DataVars() []string {
	var names []string
	for name := range d.Vars {
		if !d.Coords[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AddVar adds v to the dataset under v.Name.
func (d *Dataset) AddVar(v *Variable) {
	d.Vars[v.Name] = v
}

// AddCoord adds v to the dataset under v.Name and marks it as a
// coordinate.
func (d *Dataset) AddCoord(v *Variable) {
	d.Vars[v.Name] = v
	d.Coords[v.Name] = true
}

// DropVars removes the named variables from the dataset.
// Names that are not present are ignored.
func (d *Dataset) DropVars(names ...string) {
	for _, name := range names {
		delete(d.Vars, name)
		delete(d.Coords, name)
	}
}

// KeepVars removes every data variable that is not listed in names.
// Coordinates are always retained.
func (d *Dataset) KeepVars(names ...string) {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}
	for _, name := range d.DataVars() {
		if !keep[name] {
			d.DropVars(name)
		}
	}
}

// Rename renames dimensions and any variables that share their names
// according to the mapping in names.
func (d *Dataset) Rename(names map[string]string) {
	for old, to := range names {
		if n, ok := d.Dims[old]; ok {
			delete(d.Dims, old)
			d.Dims[to] = n
		}
	}
	d.renameVarDims(names)
	d.RenameVars(names)
}

// RenameVars renames variables according to the mapping in names,
// leaving dimensions untouched. A renamed variable whose new name
// matches a dimension becomes a coordinate.
func (d *Dataset) RenameVars(names map[string]string) {
	for old, to := range names {
		v, ok := d.Vars[old]
		if !ok {
			continue
		}
		delete(d.Vars, old)
		wasCoord := d.Coords[old]
		delete(d.Coords, old)
		v.Name = to
		d.Vars[to] = v
		if _, ok := d.Dims[to]; ok || wasCoord {
			d.Coords[to] = true
		}
	}
}

// SwapDims replaces each dimension named in dims with its new name.
// If a variable with the new name is defined over the old dimension,
// it becomes the coordinate for the renamed dimension.
func (d *Dataset) SwapDims(dims map[string]string) {
	for old, to := range dims {
		if n, ok := d.Dims[old]; ok {
			delete(d.Dims, old)
			d.Dims[to] = n
		}
	}
	d.renameVarDims(dims)
	for _, to := range dims {
		if _, ok := d.Vars[to]; ok {
			d.Coords[to] = true
		}
	}
}

// renameVarDims rewrites the dimension lists of every variable
// according to the mapping in names.
func (d *Dataset) renameVarDims(names map[string]string) {
	for _, v := range d.Vars {
		for i, dim := range v.Dims {
			if to, ok := names[dim]; ok {
				v.Dims[i] = to
			}
		}
	}
}

// ResetCoords demotes the named coordinates to ordinary data
// variables.
func (d *Dataset) ResetCoords(names ...string) {
	for _, name := range names {
		delete(d.Coords, name)
	}
}

// Transpose reorders the dimensions of every variable so that the
// dimensions named in order come first, in the given order. Dimensions
// not named keep their relative positions; variables without any of
// the named dimensions are left unchanged.
func (d *Dataset) Transpose(order ...string) {
	for _, v := range d.Vars {
		transposeVar(v, order)
	}
}

func transposeVar(v *Variable, order []string) {
	if v.Data == nil || len(v.Dims) < 2 {
		return
	}
	has := make(map[string]int, len(v.Dims))
	for i, dim := range v.Dims {
		has[dim] = i
	}
	// perm[i] is the position in the old dimension list of the ith
	// dimension of the transposed variable.
	perm := make([]int, 0, len(v.Dims))
	for _, dim := range order {
		if i, ok := has[dim]; ok {
			perm = append(perm, i)
		}
	}
	named := make(map[string]bool, len(order))
	for _, dim := range order {
		named[dim] = true
	}
	for i, dim := range v.Dims {
		if !named[dim] {
			perm = append(perm, i)
		}
	}
	unchanged := true
	for i, p := range perm {
		if i != p {
			unchanged = false
			break
		}
	}
	if unchanged {
		return
	}

	newDims := make([]string, len(perm))
	newShape := make([]int, len(perm))
	for i, p := range perm {
		newDims[i] = v.Dims[p]
		newShape[i] = v.Data.Shape[p]
	}
	out := sparse.ZerosDense(newShape...)
	newIndex := make([]int, len(perm))
	for i := range v.Data.Elements {
		oldIndex := v.Data.IndexNd(i)
		for k, p := range perm {
			newIndex[k] = oldIndex[p]
		}
		out.Set(v.Data.Get1d(i), newIndex...)
	}
	v.Data = out
	v.Dims = newDims
}

// attrFloats converts a NetCDF attribute value of any numeric type to
// a float64 slice. It returns false for strings and other non-numeric
// attribute types.
func attrFloats(attr interface{}) ([]float64, bool) {
	switch a := attr.(type) {
	case []float64:
		return a, true
	case []float32:
		o := make([]float64, len(a))
		for i, v := range a {
			o[i] = float64(v)
		}
		return o, true
	case []int32:
		o := make([]float64, len(a))
		for i, v := range a {
			o[i] = float64(v)
		}
		return o, true
	case []int16:
		o := make([]float64, len(a))
		for i, v := range a {
			o[i] = float64(v)
		}
		return o, true
	case []int8:
		o := make([]float64, len(a))
		for i, v := range a {
			o[i] = float64(v)
		}
		return o, true
	case []uint8:
		o := make([]float64, len(a))
		for i, v := range a {
			o[i] = float64(v)
		}
		return o, true
	case float64:
		return []float64{a}, true
	}
	return nil, false
}

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
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// ReadDataset loads a NetCDF classic file into memory. Packed
// variables are unpacked to physical units, with the scale factor,
// additive offset and fill value moved from the attribute set into the
// variable's Encoding; fill-valued samples are left in place so that
// embedded flag vocabularies survive for mask extraction. Variables
// whose names match dimension names become coordinates.
func ReadDataset(f *os.File) (*Dataset, error) {
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("seaice: opening netcdf file: %v", err)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	numRecs := int(ff.Header.NumRecs(fi.Size()))

	ds := NewDataset()
	dimNames := ff.Header.Dimensions("")
	dimLengths := ff.Header.Lengths("")
	for i, name := range dimNames {
		n := dimLengths[i]
		if n == 0 { // record dimension
			n = numRecs
		}
		ds.Dims[name] = n
	}
	for _, a := range ff.Header.Attributes("") {
		ds.Attrs[a] = ff.Header.GetAttribute("", a)
	}

	for _, name := range ff.Header.Variables() {
		v, err := readVariable(ff, name, numRecs)
		if err != nil {
			return nil, err
		}
		ds.Vars[name] = v
		if _, ok := ds.Dims[name]; ok {
			ds.Coords[name] = true
		}
	}
	return ds, nil
}

// readVariable reads one variable, its attributes and its encoding
// from an open NetCDF file.
func readVariable(ff *cdf.File, name string, numRecs int) (*Variable, error) {
	lengths := ff.Header.Lengths(name)
	if len(lengths) > 0 && lengths[0] == 0 {
		lengths[0] = numRecs
	}
	n := 1
	for _, l := range lengths {
		n *= l
	}

	v := &Variable{
		Name:  name,
		Dims:  ff.Header.Dimensions(name),
		Attrs: make(map[string]interface{}),
	}

	r := ff.Reader(name, nil, nil)
	if _, ok := ff.Header.ZeroValue(name, 0).(string); ok { // CHAR variable
		b := make([]uint8, n)
		if _, err := r.Read(b); err != nil {
			return nil, fmt.Errorf("seaice: reading netcdf variable %s: %v", name, err)
		}
		v.Str = string(b)
		v.Encoding.Dtype = "CHAR"
	} else {
		buf := r.Zero(n)
		if _, err := r.Read(buf); err != nil {
			return nil, fmt.Errorf("seaice: reading netcdf variable %s: %v", name, err)
		}
		v.Data = sparse.ZerosDense(lengths...)
		v.Encoding.Dtype = fillElements(v.Data, buf)
	}

	for _, a := range ff.Header.Attributes(name) {
		v.Attrs[a] = ff.Header.GetAttribute(name, a)
	}
	decodeEncoding(v)
	return v, nil
}

// fillElements copies a typed NetCDF read buffer into data and
// reports the buffer's storage type.
func fillElements(data *sparse.DenseArray, buf interface{}) string {
	switch b := buf.(type) {
	case []float64:
		copy(data.Elements, b)
		return "DOUBLE"
	case []float32:
		for i, val := range b {
			data.Elements[i] = float64(val)
		}
		return "FLOAT"
	case []int32:
		for i, val := range b {
			data.Elements[i] = float64(val)
		}
		return "INT"
	case []int16:
		for i, val := range b {
			data.Elements[i] = float64(val)
		}
		return "SHORT"
	case []uint8:
		for i, val := range b {
			data.Elements[i] = float64(val)
		}
		return "BYTE"
	case []int8:
		for i, val := range b {
			data.Elements[i] = float64(val)
		}
		return "BYTE"
	}
	panic(fmt.Errorf("seaice: unsupported netcdf buffer type %T", buf))
}

// decodeEncoding moves the CF packing attributes into v.Encoding and
// unpacks the data to physical units.
func decodeEncoding(v *Variable) {
	v.Encoding.ScaleFactor = 1
	if s, ok := attrFloats(v.Attrs["scale_factor"]); ok && len(s) > 0 {
		v.Encoding.ScaleFactor = s[0]
		delete(v.Attrs, "scale_factor")
	}
	if o, ok := attrFloats(v.Attrs["add_offset"]); ok && len(o) > 0 {
		v.Encoding.AddOffset = o[0]
		delete(v.Attrs, "add_offset")
	}
	if f, ok := attrFloats(v.Attrs["_FillValue"]); ok && len(f) > 0 {
		v.Encoding.FillValue = f[0]
		v.Encoding.HasFill = true
		delete(v.Attrs, "_FillValue")
	}
	if v.Data == nil {
		return
	}
	if v.Encoding.ScaleFactor != 1 || v.Encoding.AddOffset != 0 {
		for i, val := range v.Data.Elements {
			v.Data.Elements[i] = val*v.Encoding.ScaleFactor + v.Encoding.AddOffset
		}
	}
}

// Write serializes the dataset to a NetCDF classic file, re-packing
// each variable through its Encoding. Variables are written in sorted
// name order so that output files are deterministic.
func (d *Dataset) Write(w *os.File) error {
	dimNames, dimLengths := d.headerDims()
	h := cdf.NewHeader(dimNames, dimLengths)

	var globalAttrs []string
	for a := range d.Attrs {
		globalAttrs = append(globalAttrs, a)
	}
	sort.Strings(globalAttrs)
	for _, a := range globalAttrs {
		h.AddAttribute("", a, attrValue(d.Attrs[a]))
	}

	var names []string
	for name := range d.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := d.Vars[name]
		if v.Data == nil {
			dims := v.Dims
			if len(dims) == 0 {
				dims = []string{charDimName(name)}
			}
			h.AddVariable(name, dims, "")
		} else {
			h.AddVariable(name, v.Dims, zeroValue(v.Encoding.Dtype))
		}
		var attrs []string
		for a := range v.Attrs {
			attrs = append(attrs, a)
		}
		sort.Strings(attrs)
		for _, a := range attrs {
			h.AddAttribute(name, a, attrValue(v.Attrs[a]))
		}
		scaleFactor, addOffset := v.Encoding.scale()
		if scaleFactor != 1 {
			h.AddAttribute(name, "scale_factor", []float64{scaleFactor})
		}
		if addOffset != 0 {
			h.AddAttribute(name, "add_offset", []float64{addOffset})
		}
		if v.Encoding.HasFill {
			h.AddAttribute(name, "_FillValue", packValues([]float64{v.Encoding.FillValue}, v.Encoding.Dtype))
		}
	}
	h.Define()

	ff, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("seaice: creating netcdf file: %v", err)
	}
	for _, name := range names {
		v := d.Vars[name]
		// An explicit begin/end places the writer's bound one element
		// past the data; a nil end makes a complete write of a
		// fixed-size variable report io.EOF.
		end := ff.Header.Lengths(name)
		start := make([]int, len(end))
		wr := ff.Writer(name, start, end)
		if v.Data == nil {
			_, err = wr.Write(v.Str)
		} else {
			_, err = wr.Write(packVariable(v))
		}
		// Scalar variables end exactly at the writer's bound, which
		// reports io.EOF on a complete write.
		if err != nil && err != io.EOF {
			return fmt.Errorf("seaice: writing variable %s to netcdf file: %v", name, err)
		}
	}
	return cdf.UpdateNumRecs(w)
}

// headerDims returns the dimension names and lengths for the file
// header: the dataset's shared dimensions plus one string-length
// dimension for each character variable.
func (d *Dataset) headerDims() ([]string, []int) {
	var names []string
	for name := range d.Dims {
		names = append(names, name)
	}
	sort.Strings(names)
	lengths := make([]int, len(names))
	for i, name := range names {
		lengths[i] = d.Dims[name]
	}

	// Character variables that came from preprocessing rather than
	// from a file have no dimensions yet; give each a string-length
	// dimension.
	var charVars []string
	for name, v := range d.Vars {
		if v.Data == nil && len(v.Dims) == 0 {
			charVars = append(charVars, name)
		}
	}
	sort.Strings(charVars)
	for _, name := range charVars {
		names = append(names, charDimName(name))
		lengths = append(lengths, len(d.Vars[name].Str))
	}
	return names, lengths
}

func charDimName(varName string) string { return varName + "_len" }

// zeroValue returns a one-element sample slice of the NetCDF storage
// type named by dtype, for use with cdf.Header.AddVariable.
func zeroValue(dtype string) interface{} {
	switch dtype {
	case "BYTE":
		return []uint8{0}
	case "SHORT":
		return []int16{0}
	case "INT":
		return []int32{0}
	case "DOUBLE":
		return []float64{0}
	default:
		return []float32{0}
	}
}

// packVariable converts a variable's physical-unit samples to a typed
// slice in packed units. NaN samples become the encoding's fill value,
// or the NetCDF default fill for the storage type when none is set.
func packVariable(v *Variable) interface{} {
	scaleFactor, addOffset := v.Encoding.scale()
	packed := make([]float64, len(v.Data.Elements))
	for i, val := range v.Data.Elements {
		switch {
		case math.IsNaN(val):
			// The fill value is already in packed units.
			if v.Encoding.HasFill {
				packed[i] = v.Encoding.FillValue
			} else {
				packed[i] = defaultFill(v.Encoding.Dtype)
			}
		default:
			packed[i] = (val - addOffset) / scaleFactor
		}
	}
	return packValues(packed, v.Encoding.Dtype)
}

// packValues converts packed-unit values to the typed slice the given
// NetCDF storage type is serialized as.
func packValues(packed []float64, dtype string) interface{} {
	switch dtype {
	case "BYTE":
		o := make([]uint8, len(packed))
		for i, val := range packed {
			o[i] = uint8(math.Round(val))
		}
		return o
	case "SHORT":
		o := make([]int16, len(packed))
		for i, val := range packed {
			o[i] = int16(math.Round(val))
		}
		return o
	case "INT":
		o := make([]int32, len(packed))
		for i, val := range packed {
			o[i] = int32(math.Round(val))
		}
		return o
	case "DOUBLE":
		return packed
	default:
		o := make([]float32, len(packed))
		for i, val := range packed {
			o[i] = float32(val)
		}
		return o
	}
}

// defaultFill returns the NetCDF default fill value for a storage
// type, used when a NaN sample must be serialized without an explicit
// fill value in the encoding.
func defaultFill(dtype string) float64 {
	switch dtype {
	case "BYTE":
		return 255
	case "SHORT":
		return -32767
	case "INT":
		return -2147483647
	default:
		return math.NaN()
	}
}

// attrValue normalizes an attribute value set by preprocessing code to
// one of the slice or string types the NetCDF header accepts.
func attrValue(val interface{}) interface{} {
	switch a := val.(type) {
	case string, []uint8, []int16, []int32, []float32, []float64:
		return a
	case float64:
		return []float64{a}
	case float32:
		return []float32{a}
	case int:
		return []int32{int32(a)}
	case int32:
		return []int32{a}
	case []int8:
		o := make([]int32, len(a))
		for i, v := range a {
			o[i] = int32(v)
		}
		return o
	case []int:
		o := make([]int32, len(a))
		for i, v := range a {
			o[i] = int32(v)
		}
		return o
	}
	panic(fmt.Errorf("seaice: unsupported attribute type %T", val))
}

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
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

// arrayCompare checks a result array against expected values within
// the given tolerance. NaN values are considered equal to each other.
func arrayCompare(result, want *sparse.DenseArray, tolerance float64, name string, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(result.Shape, want.Shape) {
		t.Errorf("%s: shape: want %v, got %v", name, want.Shape, result.Shape)
		return
	}
	for i, w := range want.Elements {
		r := result.Elements[i]
		if math.IsNaN(w) != math.IsNaN(r) {
			t.Errorf("%s: element %d: want %g, got %g", name, i, w, r)
			continue
		}
		if !math.IsNaN(w) && math.Abs(r-w) > tolerance {
			t.Errorf("%s: element %d: want %g, got %g", name, i, w, r)
		}
	}
}

// denseArray builds an array of the given shape from elements.
func denseArray(elements []float64, shape ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, elements)
	return a
}

// testConcentration builds a packed byte concentration variable in the
// style of an NSIDC-0051 granule: scale factor 0.01, encoded valid
// range [0, 100], and flag codes 251-255 above the range.
func testConcentration(name string) *Variable {
	return &Variable{
		Name: name,
		Data: denseArray([]float64{0.95, 1.0, 2.51, 2.55, 0, 0.42}, 1, 2, 3),
		Dims: []string{"time", "y", "x"},
		Attrs: map[string]interface{}{
			"long_name":     "sea ice concentration",
			"units":         "1",
			"valid_range":   []uint8{0, 100},
			"flag_values":   []uint8{251, 252, 253, 254, 255},
			"flag_meanings": "pole_hole_mask unused coast land missing",
			"comment":       "flag values are embedded in the data",
		},
		Encoding: Encoding{
			ScaleFactor: 0.01,
			FillValue:   255,
			HasFill:     true,
			Dtype:       "BYTE",
		},
	}
}

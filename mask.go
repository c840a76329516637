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
	"strings"

	"github.com/ctessum/sparse"
)

// ExtractMask separates the flag values embedded in a measurement
// variable into a companion mask variable of the same shape. Samples
// within the valid range become 0 ("valid"); samples outside it keep
// their original packed flag code, recovered by inverting the
// scale/offset transform and rounding to the nearest integer. Trailing
// length-1 dimensions are squeezed out of the result.
//
// The mask inherits the source's flag vocabulary with 0 prepended as
// the "valid" flag, and is stored with the source's storage type and
// fill value but without its scale/offset packing, since flag codes
// are already integers.
func ExtractMask(v *Variable) (*Variable, error) {
	lo, hi, err := ValidRange(v)
	if err != nil {
		return nil, err
	}
	scaleFactor, addOffset := v.Encoding.scale()

	data := sparse.ZerosDense(v.Data.Shape...)
	for i, val := range v.Data.Elements {
		if val < lo || val > hi {
			// Flag codes are integers, so rounding recovers them
			// exactly; truncation loses a code whenever the decoded
			// sample rounds down (trunc(2.51/0.01) is 250, not 251).
			data.Elements[i] = math.Round((val - addOffset) / scaleFactor)
		}
	}

	flagValues := []int32{0}
	if f, ok := attrFloats(v.Attrs["flag_values"]); ok {
		for _, val := range f {
			flagValues = append(flagValues, int32(val))
		}
	}
	flagMeanings, _ := v.Attrs["flag_meanings"].(string)

	mask := &Variable{
		Name: "mask",
		Data: data,
		Dims: append([]string{}, v.Dims...),
		Attrs: map[string]interface{}{
			"long_name":     "mask",
			"standard_name": "mask",
			"flag_values":   flagValues,
			"flag_meanings": strings.Join([]string{"valid", flagMeanings}, " "),
		},
		Encoding: Encoding{
			ScaleFactor: 1,
			FillValue:   v.Encoding.FillValue,
			HasFill:     v.Encoding.HasFill,
			Dtype:       v.Encoding.Dtype,
		},
	}
	squeezeTrailing(mask)
	return mask, nil
}

// squeezeTrailing removes trailing length-1 dimensions from v.
func squeezeTrailing(v *Variable) {
	shape := v.Data.Shape
	n := len(shape)
	for n > 1 && shape[n-1] == 1 {
		n--
	}
	if n == len(shape) {
		return
	}
	out := sparse.ZerosDense(shape[:n]...)
	copy(out.Elements, v.Data.Elements)
	v.Data = out
	v.Dims = v.Dims[:n]
}

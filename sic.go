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

import "math"

// flagAttrs are the cleanup attributes removed from a recoded
// concentration variable. Removal tolerates absence: a missing
// attribute is logged and skipped rather than treated as an error.
var flagAttrs = []string{
	"legacy_binary_header",
	"flag_values",
	"flag_meanings",
	"comment",
}

// RecodeConcentration returns a copy of v containing only valid
// concentration values: samples outside the physical valid range
// (boundaries included as valid) are blanked to NaN, which serializes
// as the variable's fill value. The flag-related attributes are
// removed, the valid_range attribute is rewritten in physical units,
// and the variable is renamed to newName.
//
// Because valid_range changes units, the scale factor and additive
// offset are folded out of the returned variable's encoding (and its
// fill value converted to physical units) so that resolving the new
// range is consistent; this also makes the operation idempotent.
func RecodeConcentration(v *Variable, newName string) (*Variable, error) {
	lo, hi, err := ValidRange(v)
	if err != nil {
		return nil, err
	}

	out := v.Copy()
	out.Name = newName
	for i, val := range out.Data.Elements {
		if !(val >= lo && val <= hi) {
			out.Data.Elements[i] = math.NaN()
		}
	}

	for _, attr := range flagAttrs {
		if _, ok := out.Attrs[attr]; ok {
			delete(out.Attrs, attr)
		} else {
			logger.WithField("attribute", attr).Debugf("seaice: variable %s has no %s attribute, skipping deletion", v.Name, attr)
		}
	}
	out.Attrs["valid_range"] = []float64{lo, hi}

	scaleFactor, addOffset := v.Encoding.scale()
	if scaleFactor != 1 || addOffset != 0 {
		out.Encoding.ScaleFactor = 1
		out.Encoding.AddOffset = 0
		if out.Encoding.HasFill {
			out.Encoding.FillValue = out.Encoding.FillValue*scaleFactor + addOffset
		}
		if out.Encoding.Dtype != "DOUBLE" {
			out.Encoding.Dtype = "FLOAT"
		}
	}
	return out, nil
}

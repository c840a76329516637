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

import "fmt"

// ValidRange returns the valid range of v in physical units. The
// valid_range attribute is stored in packed units; it is unpacked here
// using the variable's scale factor and additive offset. A variable
// without a valid_range attribute is a hard error; no default range is
// substituted.
func ValidRange(v *Variable) (lo, hi float64, err error) {
	attr, ok := v.Attrs["valid_range"]
	if !ok {
		return 0, 0, &MissingAttributeError{Variable: v.Name, Attribute: "valid_range"}
	}
	r, ok := attrFloats(attr)
	if !ok || len(r) < 2 {
		return 0, 0, fmt.Errorf("seaice: malformed valid_range attribute for variable %s: %v", v.Name, attr)
	}
	scaleFactor, addOffset := v.Encoding.scale()
	return r[0]*scaleFactor + addOffset, r[1]*scaleFactor + addOffset, nil
}

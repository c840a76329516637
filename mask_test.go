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
	"reflect"
	"testing"
)

func TestExtractMask(t *testing.T) {
	const tolerance = 1.0e-10

	v := testConcentration("F13_ICECON")
	mask, err := ExtractMask(v)
	if err != nil {
		t.Fatal(err)
	}

	// 2.51 and 2.55 are the pole hole and missing flags; the in-range
	// samples, including the boundaries 0 and 1, become 0.
	want := denseArray([]float64{0, 0, 251, 255, 0, 0}, 1, 2, 3)
	arrayCompare(mask.Data, want, tolerance, "mask", t)

	flagValues, ok := mask.Attrs["flag_values"].([]int32)
	if !ok {
		t.Fatalf("flag_values: want []int32, got %T", mask.Attrs["flag_values"])
	}
	wantFlags := []int32{0, 251, 252, 253, 254, 255}
	if !reflect.DeepEqual(flagValues, wantFlags) {
		t.Errorf("flag_values: want %v, got %v", wantFlags, flagValues)
	}
	wantMeanings := "valid pole_hole_mask unused coast land missing"
	if m := mask.Attrs["flag_meanings"]; m != wantMeanings {
		t.Errorf("flag_meanings: want %q, got %q", wantMeanings, m)
	}

	// Flag codes are already integers, so the mask keeps the source's
	// storage type and fill value but not its scale factor.
	wantEncoding := Encoding{ScaleFactor: 1, FillValue: 255, HasFill: true, Dtype: "BYTE"}
	if mask.Encoding != wantEncoding {
		t.Errorf("encoding: want %+v, got %+v", wantEncoding, mask.Encoding)
	}
	if !reflect.DeepEqual(mask.Dims, v.Dims) {
		t.Errorf("dims: want %v, got %v", v.Dims, mask.Dims)
	}

	// The source variable is left untouched.
	wantSource := denseArray([]float64{0.95, 1.0, 2.51, 2.55, 0, 0.42}, 1, 2, 3)
	arrayCompare(v.Data, wantSource, tolerance, "source", t)
}

func TestExtractMask_squeeze(t *testing.T) {
	const tolerance = 1.0e-10

	v := testConcentration("F13_ICECON")
	v.Data = denseArray([]float64{0.95, 1.0, 2.51, 2.55, 0, 0.42}, 2, 3, 1)
	v.Dims = []string{"y", "x", "time"}

	mask, err := ExtractMask(v)
	if err != nil {
		t.Fatal(err)
	}
	want := denseArray([]float64{0, 0, 251, 255, 0, 0}, 2, 3)
	arrayCompare(mask.Data, want, tolerance, "mask", t)
	if wantDims := []string{"y", "x"}; !reflect.DeepEqual(mask.Dims, wantDims) {
		t.Errorf("dims: want %v, got %v", wantDims, mask.Dims)
	}
}

// TestExtractMask_flagRecovery checks that every flag code is
// recovered exactly from its decoded value: quotients like 2.51/0.01
// land just below the integer in float64, so truncation would return
// the wrong code.
func TestExtractMask_flagRecovery(t *testing.T) {
	const tolerance = 1.0e-10

	v := testConcentration("F13_ICECON")
	v.Data = denseArray([]float64{2.51, 2.52, 2.53, 2.54, 2.55, 0.5}, 1, 2, 3)

	mask, err := ExtractMask(v)
	if err != nil {
		t.Fatal(err)
	}
	want := denseArray([]float64{251, 252, 253, 254, 255, 0}, 1, 2, 3)
	arrayCompare(mask.Data, want, tolerance, "mask", t)
}

func TestExtractMask_missingRange(t *testing.T) {
	v := testConcentration("F13_ICECON")
	delete(v.Attrs, "valid_range")
	if _, err := ExtractMask(v); err == nil {
		t.Error("expected an error for a variable without a valid_range attribute")
	}
}

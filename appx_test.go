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
	"time"

	"github.com/ctessum/sparse"
)

// testAPPx builds a dataset in the shape of a Polar APP-x granule for
// 2015-01-01 at 14:30 local solar time.
func testAPPx() *Dataset {
	ds := NewDataset()
	ds.Dims["Time"] = 1
	ds.Dims["columns"] = 361
	ds.Dims["rows"] = 361

	ds.AddCoord(&Variable{
		Name:     "time",
		Data:     denseArray([]float64{1}, 1),
		Dims:     []string{"Time"},
		Attrs:    map[string]interface{}{"units": "days since 2015-01-01 00:00:00"},
		Encoding: Encoding{Dtype: "DOUBLE"},
	})
	ds.AddCoord(&Variable{
		Name:     "longitude",
		Data:     sparse.ZerosDense(361, 361),
		Dims:     []string{"columns", "rows"},
		Attrs:    map[string]interface{}{"units": "degrees_east"},
		Encoding: Encoding{Dtype: "FLOAT"},
	})
	ds.AddCoord(&Variable{
		Name:     "latitude",
		Data:     sparse.ZerosDense(361, 361),
		Dims:     []string{"columns", "rows"},
		Attrs:    map[string]interface{}{"units": "degrees_north"},
		Encoding: Encoding{Dtype: "FLOAT"},
	})
	ds.AddVar(&Variable{
		Name:     "crs",
		Data:     denseArray([]float64{0}, 1),
		Attrs:    map[string]interface{}{"grid_mapping_name": "lambert_azimuthal_equal_area"},
		Encoding: Encoding{Dtype: "INT"},
	})
	ds.AddVar(&Variable{
		Name:     "cld_frac",
		Data:     sparse.ZerosDense(1, 361, 361),
		Dims:     []string{"Time", "columns", "rows"},
		Attrs:    map[string]interface{}{"long_name": "cloud fraction"},
		Encoding: Encoding{Dtype: "FLOAT"},
	})
	ds.Attrs["id"] = "Polar-APP-X_v02r00_Nhem_1430_d20150101_c20170513.nc"
	return ds
}

func TestPreprocessPolarAPPx(t *testing.T) {
	const tolerance = 1.0e-6

	ds, err := PreprocessPolarAPPx(testAPPx(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// The columns dimension becomes y and the rows dimension becomes
	// x; the usual mapping is transposed because the source files have
	// them backwards.
	for _, dim := range []string{"time", "y", "x"} {
		if _, ok := ds.Dims[dim]; !ok {
			t.Errorf("missing dimension %s; have %v", dim, ds.Dims)
		}
	}
	if wantDims := []string{"time", "y", "x"}; !reflect.DeepEqual(ds.Vars["cld_frac"].Dims, wantDims) {
		t.Errorf("cld_frac dims: want %v, got %v", wantDims, ds.Vars["cld_frac"].Dims)
	}

	if ds.Coords["longitude"] || ds.Coords["latitude"] {
		t.Error("longitude and latitude should have been demoted to data variables")
	}
	if !ds.Coords["x"] || !ds.Coords["y"] {
		t.Error("projected x and y coordinates should have been added")
	}

	x := ds.Vars["x"].Data.Elements
	y := ds.Vars["y"].Data.Elements
	if len(x) != 361 || len(y) != 361 {
		t.Fatalf("coordinate lengths: want 361 and 361, got %d and %d", len(x), len(y))
	}
	if diff := x[0] + 180*25067.525; math.Abs(diff) > tolerance {
		t.Errorf("x[0]: want %g, got %g", -180*25067.525, x[0])
	}
	if math.Abs(x[180]) > tolerance {
		t.Errorf("x[180]: want 0, got %g", x[180])
	}
	if diff := y[0] - 180*25067.525; math.Abs(diff) > tolerance {
		t.Errorf("y[0]: want %g, got %g", 180*25067.525, y[0])
	}

	if wkt, ok := ds.Vars["crs"].Attrs["crs_wkt"].(string); !ok || wkt == "" {
		t.Error("the crs variable should have been given a crs_wkt attribute")
	}

	// The stored day-of-year value decodes one day late, so one day is
	// subtracted and the 14:30 observation time from the id attribute
	// is added.
	times, err := DecodeTime(ds.Vars["time"])
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2015, 1, 1, 14, 30, 0, 0, time.UTC)
	if len(times) != 1 || !times[0].Equal(want) {
		t.Errorf("time: want %v, got %v", want, times)
	}
}

func TestPreprocessPolarAPPx_keepVars(t *testing.T) {
	ds, err := PreprocessPolarAPPx(testAPPx(), []string{"cld_frac", "crs"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cld_frac", "crs"}
	if vars := ds.DataVars(); !reflect.DeepEqual(vars, want) {
		t.Errorf("data variables: want %v, got %v", want, vars)
	}
}

func TestPreprocessPolarAPPx_noID(t *testing.T) {
	ds := testAPPx()
	delete(ds.Attrs, "id")
	_, err := PreprocessPolarAPPx(ds, nil)
	if err == nil {
		t.Fatal("expected an error for a granule without an id attribute")
	}
	if _, ok := err.(*MissingAttributeError); !ok {
		t.Errorf("want MissingAttributeError, got %T: %v", err, err)
	}
}

func TestTimeFromID(t *testing.T) {
	ds := NewDataset()
	ds.Attrs["id"] = "Polar-APP-X_v02r00_Shem_0400_d20190715_c20200103.nc"
	hour, minute, err := timeFromID(ds)
	if err != nil {
		t.Fatal(err)
	}
	if hour != 4 || minute != 0 {
		t.Errorf("want 4:00, got %d:%02d", hour, minute)
	}

	ds.Attrs["id"] = "not-a-granule-id"
	if _, _, err := timeFromID(ds); err == nil {
		t.Error("expected an error for an id without an observation time")
	}
}

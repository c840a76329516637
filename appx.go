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
	"regexp"
	"strconv"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/seaice/grid"
)

// appxTimePattern matches the observation hour and minute embedded in
// the id global attribute of a Polar APP-x granule, for example
// "Polar-APP-X_v02r00_Nhem_1400_d20150101_c20170513".
var appxTimePattern = regexp.MustCompile(`hem_(\d{2})(\d{2})_d`)

// timeFromID returns the observation hour and minute parsed from the
// dataset's id global attribute.
func timeFromID(ds *Dataset) (hour, minute int, err error) {
	id, ok := ds.Attrs["id"].(string)
	if !ok {
		return 0, 0, &MissingAttributeError{Attribute: "id"}
	}
	m := appxTimePattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("seaice: no observation time in id attribute %q", id)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// PreprocessPolarAPPx makes a NOAA Polar APP-x granule analysis ready:
//
//  1. the longitude and latitude coordinates are demoted to data
//     variables,
//  2. the horizontal dimensions are renamed to x and y. The original
//     dimensions are incorrectly named: columns run up-down and rows
//     run left-right, so the mapping used here is the transpose of the
//     usual one to correct the mistake,
//  3. projected x and y coordinates in the 25 km AVHRR EASE grid are
//     attached, along with the CF WKT of the grid's reference system,
//  4. the time coordinate is corrected. Stored time values are day of
//     year numbers against "days since" units, which decodes one day
//     after the file name timestamp, so one day is subtracted; and the
//     observation hour and minute from the id global attribute are
//     added so that granules from the same day do not collide when
//     concatenated,
//  5. dimensions are reordered to (time, y, x), and
//  6. if dataVars is non-nil, data variables not listed are dropped.
func PreprocessPolarAPPx(ds *Dataset, dataVars []string) (*Dataset, error) {
	ds.ResetCoords("longitude", "latitude")
	ds.Rename(map[string]string{"columns": "y", "rows": "x"})

	x, y := grid.AVHRREASEGridNorth25km.Coordinates()
	ds.AddCoord(projectionCoord("x", x))
	ds.AddCoord(projectionCoord("y", y))

	crs, ok := ds.Vars["crs"]
	if !ok {
		return nil, &VariableNotFoundError{Pattern: "crs"}
	}
	crs.Attrs["crs_wkt"] = grid.AVHRREASEGridNorth25km.WKT()

	ds.SwapDims(map[string]string{"Time": "time"})
	if err := fixTimeCoord(ds); err != nil {
		return nil, err
	}

	ds.Transpose("time", "y", "x")

	if dataVars != nil {
		ds.KeepVars(dataVars...)
	}
	return ds, nil
}

// fixTimeCoord applies the Polar APP-x time corrections to the raw
// (undecoded) time coordinate, whose units are days.
func fixTimeCoord(ds *Dataset) error {
	hour, minute, err := timeFromID(ds)
	if err != nil {
		return err
	}
	t, ok := ds.Vars["time"]
	if !ok {
		return &VariableNotFoundError{Pattern: "time"}
	}
	offset := float64(hour)/24 + float64(minute)/(24*60) - 1
	for i := range t.Data.Elements {
		t.Data.Elements[i] += offset
	}
	return nil
}

// projectionCoord builds a projected coordinate variable with the
// attributes CF conventions expect on grid-mapping coordinates.
func projectionCoord(name string, values []float64) *Variable {
	data := sparse.ZerosDense(len(values))
	copy(data.Elements, values)
	axis := "X"
	if name == "y" {
		axis = "Y"
	}
	return &Variable{
		Name: name,
		Data: data,
		Dims: []string{name},
		Attrs: map[string]interface{}{
			"units":         "m",
			"long_name":     name + " coordinate of projection",
			"standard_name": "projection_" + name + "_coordinate",
			"grid_mapping":  "lambert_azimuthal_equal_area",
			"axis":          axis,
		},
		Encoding: Encoding{Dtype: "DOUBLE"},
	}
}

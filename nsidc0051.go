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

import "strings"

// iceconMarker is the substring that identifies the sea ice
// concentration variable in an NSIDC-0051 granule; the full variable
// name carries the sensor as a prefix, for example F13_ICECON.
const iceconMarker = "ICECON"

// iceconVariableName returns the name of the unique data variable
// containing the ICECON marker. Zero matches or more than one match is
// an error.
func iceconVariableName(ds *Dataset) (string, error) {
	var matches []string
	for _, name := range ds.DataVars() {
		if strings.Contains(name, iceconMarker) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &VariableNotFoundError{Pattern: iceconMarker}
	default:
		return "", &AmbiguousVariableError{Pattern: iceconMarker, Matches: matches}
	}
}

// PreprocessNSIDC0051 makes an NSIDC-0051 sea ice concentration
// granule analysis ready:
//
//  1. the flag values embedded in the ICECON variable are extracted
//     into a new mask variable,
//  2. the concentration values are recoded into a new sic variable
//     with flags blanked and the valid range rewritten in physical
//     units,
//  3. the sensor identifier is stored as a new sensor variable, and
//  4. the original *_ICECON variable is dropped.
func PreprocessNSIDC0051(ds *Dataset) (*Dataset, error) {
	iceconVar, err := iceconVariableName(ds)
	if err != nil {
		return nil, err
	}
	// The sensor name is the variable name's first segment.
	sensorID := strings.Split(iceconVar, "_")[0]

	icecon := ds.Vars[iceconVar]
	mask, err := ExtractMask(icecon)
	if err != nil {
		return nil, err
	}
	sic, err := RecodeConcentration(icecon, "sic")
	if err != nil {
		return nil, err
	}

	ds.AddVar(mask)
	ds.AddVar(sic)
	ds.AddVar(&Variable{
		Name:  "sensor",
		Str:   sensorID,
		Attrs: map[string]interface{}{"long_name": "passive microwave sensor"},
	})
	ds.DropVars(iceconVar)
	return ds, nil
}

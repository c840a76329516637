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

// cdrConcVar is the sea ice concentration variable in a NOAA/NSIDC
// CDR (G02202) granule.
const cdrConcVar = "cdr_seaice_conc"

// PreprocessCDR makes a granule of the NOAA/NSIDC Climate Data Record
// of passive microwave sea ice concentration (G02202) analysis ready:
//
//  1. the spatial coordinate variables and the time dimension are
//     renamed to follow CF conventions (xgrid→x, ygrid→y, tdim→time),
//  2. the flag values embedded in cdr_seaice_conc are extracted into a
//     new mask variable,
//  3. the concentration values are recoded with flags blanked and the
//     valid range rewritten in physical units, and
//  4. the originally present data variables are dropped.
//
// keepVars names originally present data variables to retain in the
// output. rename maps original variable names to output names; by
// default cdr_seaice_conc becomes sic. Retained variables listed in
// rename are renamed accordingly.
func PreprocessCDR(ds *Dataset, keepVars []string, rename map[string]string) (*Dataset, error) {
	if rename == nil {
		rename = map[string]string{cdrConcVar: "sic"}
	}
	ds.Rename(map[string]string{"xgrid": "x", "ygrid": "y"})
	ds.SwapDims(map[string]string{"tdim": "time"})
	// Snapshot the original data variables after the dimension swap,
	// which promotes the time variable to a coordinate.
	dataVars := ds.DataVars()

	conc, ok := ds.Vars[cdrConcVar]
	if !ok {
		return nil, &VariableNotFoundError{Pattern: cdrConcVar}
	}
	mask, err := ExtractMask(conc)
	if err != nil {
		return nil, err
	}
	concName, ok := rename[cdrConcVar]
	if !ok {
		concName = "sic"
	}
	sic, err := RecodeConcentration(conc, concName)
	if err != nil {
		return nil, err
	}
	ds.AddVar(mask)
	ds.AddVar(sic)

	// Drop the originally present data variables except those the
	// caller asked to keep.
	keep := make(map[string]bool, len(keepVars))
	for _, name := range keepVars {
		keep[name] = true
	}
	for _, name := range dataVars {
		if !keep[name] || name == cdrConcVar {
			ds.DropVars(name)
		}
	}
	for _, name := range keepVars {
		if to, ok := rename[name]; ok && name != cdrConcVar {
			ds.RenameVars(map[string]string{name: to})
		}
	}
	return ds, nil
}

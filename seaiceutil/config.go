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

package seaiceutil

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigInfo holds the configuration information for a preprocessing
// run.
type ConfigInfo struct {
	// Dataset is the dataset to be preprocessed. Valid options are
	// "nsidc0051", "cdr", and "appx".
	Dataset string

	// InputFile is the path of the NetCDF file to preprocess.
	InputFile string

	// OutputFile is the path where the result should be written.
	OutputFile string

	// KeepVars lists ancillary variables that should be retained
	// alongside the recoded concentration when preprocessing the
	// climate data record. Optional.
	KeepVars []string

	// Rename maps source variable names to output variable names
	// when preprocessing the climate data record. Optional.
	Rename map[string]string

	// DataVars restricts the output of APP-x preprocessing to the
	// named data variables. Optional; if empty all variables are
	// kept.
	DataVars []string
}

// loadConfig reads the configuration file at path, or returns an
// empty configuration if path is "".
func loadConfig(path string) (*ConfigInfo, error) {
	cfg := new(ConfigInfo)
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seaice: reading configuration file: %v", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("seaice: parsing configuration file %s: %v", path, err)
	}
	return cfg, nil
}

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

// Package seaice preprocesses satellite passive-microwave sea ice
// datasets (NSIDC-0051, the NOAA/NSIDC sea ice concentration CDR, and
// NOAA Polar APP-x) into analysis-ready form: it extracts the flag
// vocabulary embedded in concentration variables into separate mask
// variables, recodes concentrations to their physical valid range,
// renames dimensions and variables to follow CF conventions, and fixes
// known timestamp defects in the Polar APP-x archive.
package seaice

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for progress and skipped-cleanup
// messages. The default is logrus.StandardLogger().
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

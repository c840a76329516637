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
	"math"
	"regexp"
	"time"
)

var timeUnitsPattern = regexp.MustCompile(`^(\w+) since (.+)$`)

// timeUnitFormats are the reference time layouts accepted in CF
// "<unit> since <time>" attributes.
var timeUnitFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02",
}

// decodeTimeUnits parses a CF time units string such as
// "days since 2015-01-01 00:00:00" into the reference time and the
// duration of one unit.
func decodeTimeUnits(units string) (time.Time, time.Duration, error) {
	m := timeUnitsPattern.FindStringSubmatch(units)
	if m == nil {
		return time.Time{}, 0, fmt.Errorf("seaice: malformed time units %q", units)
	}
	var unit time.Duration
	switch m[1] {
	case "days", "day":
		unit = 24 * time.Hour
	case "hours", "hour":
		unit = time.Hour
	case "minutes", "minute":
		unit = time.Minute
	case "seconds", "second":
		unit = time.Second
	default:
		return time.Time{}, 0, fmt.Errorf("seaice: unsupported time unit %q", m[1])
	}
	for _, format := range timeUnitFormats {
		if base, err := time.Parse(format, m[2]); err == nil {
			return base, unit, nil
		}
	}
	return time.Time{}, 0, fmt.Errorf("seaice: unsupported reference time %q", m[2])
}

// DecodeTime decodes a time coordinate variable into UTC timestamps
// using its CF units attribute.
func DecodeTime(v *Variable) ([]time.Time, error) {
	units, ok := v.Attrs["units"].(string)
	if !ok {
		return nil, &MissingAttributeError{Variable: v.Name, Attribute: "units"}
	}
	base, unit, err := decodeTimeUnits(units)
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, len(v.Data.Elements))
	for i, val := range v.Data.Elements {
		// Round to the nearest nanosecond so that fractional day
		// values land on exact timestamps.
		times[i] = base.Add(time.Duration(math.Round(val * float64(unit))))
	}
	return times, nil
}

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
	"testing"
	"time"
)

func TestDecodeTimeUnits(t *testing.T) {
	tests := []struct {
		units string
		base  time.Time
		unit  time.Duration
	}{
		{"days since 1970-01-01 00:00:00", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 24 * time.Hour},
		{"days since 2015-01-01", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), 24 * time.Hour},
		{"hours since 2008-06-15 12:00:00", time.Date(2008, 6, 15, 12, 0, 0, 0, time.UTC), time.Hour},
		{"minutes since 1981-01-01T00:00:00Z", time.Date(1981, 1, 1, 0, 0, 0, 0, time.UTC), time.Minute},
		{"seconds since 1993-01-01 00:00:00", time.Date(1993, 1, 1, 0, 0, 0, 0, time.UTC), time.Second},
	}
	for _, test := range tests {
		base, unit, err := decodeTimeUnits(test.units)
		if err != nil {
			t.Errorf("%s: %v", test.units, err)
			continue
		}
		if !base.Equal(test.base) {
			t.Errorf("%s: base: want %v, got %v", test.units, test.base, base)
		}
		if unit != test.unit {
			t.Errorf("%s: unit: want %v, got %v", test.units, test.unit, unit)
		}
	}

	for _, bad := range []string{"", "days", "fortnights since 1970-01-01", "days since yesterday"} {
		if _, _, err := decodeTimeUnits(bad); err == nil {
			t.Errorf("expected an error for units %q", bad)
		}
	}
}

func TestDecodeTime(t *testing.T) {
	v := &Variable{
		Name:  "time",
		Data:  denseArray([]float64{0, 0.5, 31}, 3),
		Dims:  []string{"time"},
		Attrs: map[string]interface{}{"units": "days since 2015-01-01 00:00:00"},
	}
	times, err := DecodeTime(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Time{
		time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2015, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2015, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if len(times) != len(want) {
		t.Fatalf("want %d times, got %d", len(want), len(times))
	}
	for i, w := range want {
		if !times[i].Equal(w) {
			t.Errorf("time %d: want %v, got %v", i, w, times[i])
		}
	}
}

func TestDecodeTime_missingUnits(t *testing.T) {
	v := &Variable{
		Name:  "time",
		Data:  denseArray([]float64{0}, 1),
		Dims:  []string{"time"},
		Attrs: map[string]interface{}{},
	}
	if _, err := DecodeTime(v); err == nil {
		t.Error("expected an error for a time variable without units")
	}
}

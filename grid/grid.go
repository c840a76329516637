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

// Package grid describes the polar projected grids that NSIDC passive
// microwave products are delivered on, and computes projection
// coordinates for grids whose source files omit them.
package grid

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"gonum.org/v1/gonum/floats"
)

// Grid describes a regular grid in an azimuthal polar projection. The
// origin offsets locate the pole within the grid, in grid cells from
// the upper-left corner.
type Grid struct {
	// Name identifies the grid in NSIDC documentation.
	Name string

	// NX and NY are the number of grid columns and rows.
	NX, NY int

	// Cell is the grid cell size [m].
	Cell float64

	// R0 and S0 are the column and row offsets of the pole from the
	// upper-left grid corner [cells].
	R0, S0 float64

	// Proj4 is the PROJ.4 specification of the grid projection.
	Proj4 string

	// WellKnownText is the OGC well-known text specification of the
	// grid projection.
	WellKnownText string
}

// AVHRREASEGridNorth25km is the 25 km northern hemisphere EASE-Grid
// used by the AVHRR Polar Pathfinder Extended (APP-x) product. The
// projection is a Lambert azimuthal equal-area projection on a sphere
// of authalic radius 6371228 m, centered on the north pole (EPSG:3408).
var AVHRREASEGridNorth25km = &Grid{
	Name:  "EASE-Grid North 25km",
	NX:    361,
	NY:    361,
	Cell:  25067.525,
	R0:    180.0,
	S0:    180.0,
	Proj4: "+proj=laea +lat_0=90 +lon_0=0 +x_0=0 +y_0=0 +a=6371228 +b=6371228 +units=m +no_defs",
	WellKnownText: `PROJCS["NSIDC EASE-Grid North",
    GEOGCS["Unspecified datum based upon the International 1924 Authalic Sphere",
        DATUM["Not_specified_based_on_International_1924_Authalic_Sphere",
            SPHEROID["International 1924 Authalic Sphere",6371228,0]],
        PRIMEM["Greenwich",0],
        UNIT["degree",0.0174532925199433]],
    PROJECTION["Lambert_Azimuthal_Equal_Area"],
    PARAMETER["latitude_of_center",90],
    PARAMETER["longitude_of_center",0],
    PARAMETER["false_easting",0],
    PARAMETER["false_northing",0],
    UNIT["metre",1],
    AXIS["X",EAST],
    AXIS["Y",NORTH],
    AUTHORITY["EPSG","3408"]]`,
}

// Coordinates returns the projection coordinates of the grid cell
// centers: x ascending from the western edge and y descending from
// the northern edge, matching the row-major storage order of the
// source rasters.
func (g *Grid) Coordinates() (x, y []float64) {
	x = floats.Span(make([]float64, g.NX), (0-g.R0)*g.Cell, (float64(g.NX-1)-g.R0)*g.Cell)
	y = floats.Span(make([]float64, g.NY), (g.S0-0)*g.Cell, (g.S0-float64(g.NY-1))*g.Cell)
	return x, y
}

// SR returns the spatial reference of the grid projection.
func (g *Grid) SR() (*proj.SR, error) {
	sr, err := proj.Parse(g.Proj4)
	if err != nil {
		return nil, fmt.Errorf("grid: parsing projection for %s: %v", g.Name, err)
	}
	return sr, nil
}

// WKT returns the well-known text specification of the grid
// projection, suitable for a CF crs_wkt attribute.
func (g *Grid) WKT() string {
	return g.WellKnownText
}

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

import "fmt"

// MissingAttributeError indicates that a required semantic attribute
// is absent from a variable or from a dataset's global attributes.
type MissingAttributeError struct {
	Variable  string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("seaice: no %s global attribute", e.Attribute)
	}
	return fmt.Sprintf("seaice: no %s attribute for variable %s", e.Attribute, e.Variable)
}

// VariableNotFoundError indicates that no variable matched the name
// or name pattern an orchestrator was looking for.
type VariableNotFoundError struct {
	Pattern string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("seaice: no variable matching %q found", e.Pattern)
}

// AmbiguousVariableError indicates that more than one variable matched
// a name pattern that must identify a unique variable.
type AmbiguousVariableError struct {
	Pattern string
	Matches []string
}

func (e *AmbiguousVariableError) Error() string {
	return fmt.Sprintf("seaice: more than one variable matching %q found: %v", e.Pattern, e.Matches)
}

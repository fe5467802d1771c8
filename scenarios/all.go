// seehuhn.de/go/lineannot - line annotations for 2D charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scenarios collects line annotation configurations together with
// their expected geometry.  They are used by tests, benchmarks, and the
// export command.
package scenarios

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]Scenario{
	"horizontal": horizontalCases,
	"vertical":   verticalCases,
	"clamp":      clampCases,
	"active":     activeCases,
	"invalid":    invalidCases,
}

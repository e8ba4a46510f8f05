/*
 * atomicdata.go, part of hefesto2xml.
 *
 * Copyright 2026 Sia Ghelichkhani
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package hefesto

//A map for assigning molar mass (g/mol) to elements.
//Note that just elements that show up in mantle mineralogy are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Zn": 65.38,
	"Sr": 87.62,
	"Zr": 91.224,
	"Ba": 137.33,
}

// KnownElement returns whether the given symbol is in the element table.
func KnownElement(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

// AtomicMass returns the molar mass for an element symbol, in g/mol,
// or 0 and false if the element is not in the table.
func AtomicMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

/*
 * units.go, part of hefesto2xml.
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

package eosdoc

import (
	"strconv"
	"strings"
)

//The parameter files carry kJ/mol, cm^3/mol and GPa; the schema wants
//J/mol, m^3/mol and Pa. The values are precise literals, so conversion is
//a textual exponent rewrite, never a float multiplication: 500.0 in
//kJ/mol becomes 500.0e3, 10.0 in cm^3/mol becomes 10.0e-6.

//decimal exponents of the unit conversions
const (
	expKJToJ    = 3  //kJ/mol -> J/mol
	expCm3ToM3  = -6 //cm^3/mol -> m^3/mol
	expGPaToPa  = 9  //GPa -> Pa
	expUnscaled = 0
)

// rescale appends a power-of-ten exponent to a decimal literal. If the
// literal already carries an exponent, the two are folded into one. A
// token that is not a well-formed number is returned unchanged with the
// suffix attached; the parsers guarantee that never happens here.
func rescale(raw string, exp int) string {
	raw = strings.TrimSpace(raw)
	if exp == 0 || raw == "" {
		return raw
	}
	if i := strings.IndexAny(raw, "eE"); i >= 0 {
		old, err := strconv.Atoi(raw[i+1:])
		if err == nil {
			combined := old + exp
			if combined == 0 {
				return raw[:i]
			}
			return raw[:i] + "e" + strconv.Itoa(combined)
		}
	}
	return raw + "e" + strconv.Itoa(exp)
}

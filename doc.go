/*
 * doc.go, part of hefesto2xml.
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

/*Package hefesto reads the HeFESTo thermodynamic parameter corpus: one
line-positional parameter file per mineral, plus one interaction file per
solid-solution phase.

	**Capabilities**

    Parses the 43-field positional parameter files into typed records,
	keeping the raw numeric tokens so unit rewrites stay exact.

    Tokenizes the site-notation stoichiometries (Mg_2Si_1O_4,
	(Na_2Mg_1)Si_1...) into ordered crystallographic sites.

    Parses the upper-triangular interaction files into symmetric energy
	and volume matrices (gonum SymDense); the endmember list of a solution
	is always the header of its interaction file, never configuration.

    Reads plain, gzip- or zstd-compressed corpus files.

The eosdoc subpackage assembles the parsed corpus into the EoS XML
document; the report subpackage prints and plots corpus diagnostics.
*/
package hefesto

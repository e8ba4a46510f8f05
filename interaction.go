/*
 * interaction.go, part of hefesto2xml.
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

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//A phase interaction file starts with a header line naming the endmembers,
//in order. That header is the single source of truth for which endmembers a
//solution has; it is never duplicated in configuration. The rows after it
//hold the upper triangle of the pairwise energy matrix (kJ/mol), a literal
//"Volume" marker line, and the upper triangle of the volume matrix
//(cm^3/mol). Both matrices are symmetric; only the upper triangle is ever
//read, the mirror comes from the storage itself.

// Interaction is the parsed content of one phase interaction file.
type Interaction struct {
	PhaseID    string
	Endmembers []string
	energy     *mat.SymDense
	volume     *mat.SymDense
	energyRaw  [][]string //raw tokens, mirrored on assignment
	volumeRaw  [][]string
}

// N returns the matrix dimension, which is always the endmember count.
func (I *Interaction) N() int {
	return len(I.Endmembers)
}

// Energy returns the pairwise interaction energy between endmembers i and j,
// in kJ/mol. The matrix is symmetric by construction.
func (I *Interaction) Energy(i, j int) float64 {
	return I.energy.At(i, j)
}

// Volume returns the pairwise interaction volume between endmembers i and j,
// in cm^3/mol, or zero if the file had no Volume block.
func (I *Interaction) Volume(i, j int) float64 {
	return I.volume.At(i, j)
}

// EnergyRaw returns the raw token for the (i,j) energy entry, or the empty
// string if the file did not supply one.
func (I *Interaction) EnergyRaw(i, j int) string {
	return I.energyRaw[i][j]
}

// VolumeRaw is the volume-block counterpart of EnergyRaw.
func (I *Interaction) VolumeRaw(i, j int) string {
	return I.volumeRaw[i][j]
}

// ReadInteraction parses the lines of one phase interaction file.
// A file with no Volume marker gets an all-zero volume matrix; that is an
// explicit default, not an error.
func ReadInteraction(phaseID string, lines []string) (*Interaction, error) {
	if len(lines) == 0 || len(strings.Fields(lines[0])) == 0 {
		return nil, &MalformedRecordError{ID: phaseID, Lines: len(lines)}
	}
	I := &Interaction{PhaseID: phaseID}
	I.Endmembers = strings.Fields(lines[0])
	n := I.N()
	I.energy = mat.NewSymDense(n, nil)
	I.volume = mat.NewSymDense(n, nil)
	I.energyRaw = emptyTokens(n)
	I.volumeRaw = emptyTokens(n)
	dst, raw := I.energy, I.energyRaw
	row := 0
	for lno, line := range lines[1:] {
		tok := strings.Fields(line)
		if len(tok) == 0 {
			continue
		}
		if tok[0] == "Volume" {
			//the marker ends the energy block and restarts the
			//triangular row count for the volume block
			dst, raw = I.volume, I.volumeRaw
			row = 0
			continue
		}
		if row >= n-1 {
			//rows past the triangle carry nothing to read
			row++
			continue
		}
		if err := parseTriangularRow(phaseID, dst, raw, row, n, lno+2, tok); err != nil {
			return nil, err
		}
		row++
	}
	return I, nil
}

// parseTriangularRow reads the entries right of the diagonal for row i.
// The corpus writes rows in two layouts: a full n-column row, where only
// columns j > i are read, or a shrunken row holding just those columns.
func parseTriangularRow(phaseID string, dst *mat.SymDense, raw [][]string, i, n, lno int, tok []string) error {
	offset := i + 1 //shrunken layout: first token is column i+1
	if len(tok) >= n {
		offset = 0 //aligned layout: token k is column k
	}
	for k, t := range tok {
		j := k + offset
		if j <= i {
			continue
		}
		if j >= n {
			break
		}
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return &InvalidFieldError{ID: phaseID, Field: "W(" + strconv.Itoa(i) + "," + strconv.Itoa(j) + ")", Line: lno, Token: t}
		}
		dst.SetSym(i, j, v)
		raw[i][j] = t
		raw[j][i] = t
	}
	return nil
}

func emptyTokens(n int) [][]string {
	t := make([][]string, n)
	for i := range t {
		t[i] = make([]string, n)
	}
	return t
}

/*
 * mineral.go, part of hefesto2xml.
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
)

//A HeFESTo parameter file is strictly line-positional: the first line holds
//the formula token and the human-readable name, and each of the next 43 lines
//holds exactly one named numeric field. One line, one field, by position.

// recordLines is the total line count of a well-formed parameter file:
// the header plus the 43 numeric fields.
const recordLines = 44

// Scalar is one numeric field as read from a parameter file. The raw token
// is kept next to the parsed value so unit rewrites at emission time can
// stay exact instead of going through float arithmetic.
type Scalar struct {
	Raw   string
	Value float64
}

// Params holds the 43 positional fields of a parameter file, in file order.
type Params struct {
	NAtoms      Scalar //atoms per formula unit
	Z           Scalar //formula units per unit cell
	Mass        Scalar //g/mol
	T0          Scalar //K
	F0          Scalar //reference Helmholtz energy, kJ/mol
	V0          Scalar //reference volume, cm^3/mol
	K0          Scalar //bulk modulus, GPa
	K0p         Scalar //pressure derivative of K0
	K0K0pp      Scalar
	Theta0      Scalar //Debye temperature, K
	DebyeAc2    Scalar
	DebyeAc3    Scalar
	SinAc1      Scalar
	SinAc2      Scalar
	SinAc3      Scalar
	Einstein1   Scalar
	WEinstein1  Scalar
	Einstein2   Scalar
	WEinstein2  Scalar
	Einstein3   Scalar
	WEinstein3  Scalar
	Einstein4   Scalar
	WEinstein4  Scalar
	OpticUpper  Scalar
	OpticLower  Scalar
	Gamma0      Scalar //Grueneisen parameter
	Q0          Scalar //its volume derivative
	Beta        Scalar //anharmonic parameter
	GammaEl0    Scalar
	Q2A2        Scalar
	HighTempApx Scalar
	BMOrVinet   Scalar
	EinOrDebye  Scalar
	ZeroPointP  Scalar
	G0          Scalar //shear modulus, GPa
	G0p         Scalar //pressure derivative of G0
	G0T         Scalar //temperature derivative of G0
	TCrit       Scalar //Landau critical temperature, K
	SCrit       Scalar //Landau critical entropy, J/mol/K
	VCrit       Scalar //Landau critical volume, cm^3/mol
	VanLaar     Scalar
	C12p        Scalar
	C44p        Scalar
}

// byLine returns pointers to the fields in file order, so the parser can
// walk the layout positionally. Keep this in sync with fieldNames.
func (p *Params) byLine() []*Scalar {
	return []*Scalar{
		&p.NAtoms, &p.Z, &p.Mass, &p.T0, &p.F0, &p.V0, &p.K0, &p.K0p,
		&p.K0K0pp, &p.Theta0, &p.DebyeAc2, &p.DebyeAc3, &p.SinAc1,
		&p.SinAc2, &p.SinAc3, &p.Einstein1, &p.WEinstein1, &p.Einstein2,
		&p.WEinstein2, &p.Einstein3, &p.WEinstein3, &p.Einstein4,
		&p.WEinstein4, &p.OpticUpper, &p.OpticLower, &p.Gamma0, &p.Q0,
		&p.Beta, &p.GammaEl0, &p.Q2A2, &p.HighTempApx, &p.BMOrVinet,
		&p.EinOrDebye, &p.ZeroPointP, &p.G0, &p.G0p, &p.G0T, &p.TCrit,
		&p.SCrit, &p.VCrit, &p.VanLaar, &p.C12p, &p.C44p,
	}
}

//field names in file order, for error messages
var fieldNames = []string{
	"n_atoms", "Z", "mass", "T0", "F0", "V0", "K0", "K0_p", "K0K0_pp",
	"theta0", "debye_acoustic_2", "debye_acoustic_3", "sin_acoustic_1",
	"sin_acoustic_2", "sin_acoustic_3", "einstein_1", "weight_einstein_1",
	"einstein_2", "weight_einstein_2", "einstein_3", "weight_einstein_3",
	"einstein_4", "weight_einstein_4", "optic_upper", "optic_lower",
	"gamma0", "q0", "beta", "gammael0", "q2A2", "high_temp_approx",
	"BM_or_Vinet", "Einstein_or_Debye", "zero_point_pressure", "G0",
	"G0_p", "G0_T", "T_crit", "S_crit", "V_crit", "van_laar", "C12_p",
	"C44_p",
}

// Mineral is the parsed content of one parameter file. It is read-only
// after ReadMineral returns it.
type Mineral struct {
	ID         string
	Name       string
	FormulaRaw string
	Formula    Formula
	Par        Params
}

// Landau reports whether the Landau modification is active for this
// mineral. The triple is present in every file; only a positive critical
// temperature switches it on.
func (M *Mineral) Landau() bool {
	return M.Par.TCrit.Value > 0
}

// Valid returns nil for a well-formed record, or the *MalformedRecordError
// that a file of the given line count would produce.
func (M *Mineral) Valid(lines int) error {
	if lines < recordLines {
		return &MalformedRecordError{ID: M.ID, Lines: lines}
	}
	return nil
}

// ReadMineral parses the lines of one parameter file into a Mineral.
// Parsing is strict: too few lines, a bad formula or a non-numeric field
// all abort with a typed error naming the culprit. Nothing is ever
// defaulted from outside the file.
func ReadMineral(id string, lines []string) (*Mineral, error) {
	M := &Mineral{ID: id}
	if err := M.Valid(len(lines)); err != nil {
		return nil, err
	}
	header := strings.Fields(lines[0])
	if len(header) < 2 {
		return nil, &MalformedRecordError{ID: id, Lines: len(lines)}
	}
	M.FormulaRaw = header[0]
	M.Name = strings.Join(header[1:], " ")
	var err error
	M.Formula, err = ParseFormula(M.FormulaRaw)
	if err != nil {
		return nil, errDecorate(err, "ReadMineral: "+id)
	}
	fields := M.Par.byLine()
	for i, f := range fields {
		line := lines[i+1]
		tok := strings.Fields(line)
		if len(tok) == 0 {
			return nil, &InvalidFieldError{ID: id, Field: fieldNames[i], Line: i + 2, Token: strings.TrimSpace(line)}
		}
		v, err := strconv.ParseFloat(tok[0], 64)
		if err != nil {
			return nil, &InvalidFieldError{ID: id, Field: fieldNames[i], Line: i + 2, Token: tok[0]}
		}
		f.Raw = tok[0]
		f.Value = v
	}
	return M, nil
}

/*
 * tree.go, part of hefesto2xml.
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

//The output document is a rooted tree of typed nodes. Each mineral is
//either a plain Debye solid or a Landau wrapper around one; the two are
//separate types rather than one struct with optional fields, so emission
//never has to test a flag halfway through a node.

//phase type strings of the target schema
const (
	xmlns          = "http://chust.org/eos"
	DebyeSolidType = "EoS.DebyeModel.DebyeSolid, EoS.DebyeModel"
	LandauType     = "EoS.DebyeModel.LandauModification, EoS.DebyeModel"
)

// Let is one named, unit-tagged scalar. An empty unit means a bare flag.
type Let struct {
	Name  string
	Unit  string
	Value string
}

// Phase is a node that can appear under the module root or inside a
// solution phase.
type Phase interface {
	PhaseID() string
}

// Module is the root of the document.
type Module struct {
	ID     string
	Blurb  string
	Lets   []Let
	Phases []Phase
}

// DebyeSolid is a plain thermodynamic mineral node: formula plus the ten
// unit-converted standard scalars.
type DebyeSolid struct {
	ID      string
	Blurb   string
	Formula string
	Lets    []Let
}

func (d *DebyeSolid) PhaseID() string { return d.ID }

// LandauPhase wraps a Debye solid in a Landau modification: the three
// critical scalars outside, the no-Landau variant as the single child.
type LandauPhase struct {
	ID    string
	Blurb string
	Lets  []Let
	Inner *DebyeSolid
}

func (l *LandauPhase) PhaseID() string { return l.ID }

// InteractionTerm is one pairwise interaction element of a solution phase.
type InteractionTerm struct {
	Unit  string
	Value string
	Refs  [2]string //endmember identifiers
}

// SolutionPhase is a solid-solution node: its endmember children, in the
// order the interaction file header gave them, plus the pairwise terms.
type SolutionPhase struct {
	ID           string
	Type         string
	Blurb        string
	Lets         []Let
	Members      []Phase
	Interactions []InteractionTerm
}

func (s *SolutionPhase) PhaseID() string { return s.ID }

// Warning is a non-fatal condition found during assembly. Translation
// proceeds; the caller decides how to surface it.
type Warning interface {
	Warning() string
}

// OrphanWarning flags a mineral that no solution references and the
// standalone list does not name. The record is parsed but not emitted.
type OrphanWarning struct {
	ID string
}

func (w OrphanWarning) Warning() string {
	return "mineral " + w.ID + " is not an endmember of any solution and not in the standalone list; it will not be emitted"
}

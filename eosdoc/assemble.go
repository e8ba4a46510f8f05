/*
 * assemble.go, part of hefesto2xml.
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
	hefesto "github.com/sghelichkhani/HeFESTo-Parameters-010123"
)

// Assemble builds the document tree for a parsed corpus. Any fatal
// condition (identifier collision without an override, an endmember with
// no parameter file) aborts with no tree; orphaned minerals only produce
// warnings, returned alongside the completed tree.
func Assemble(c *hefesto.Corpus) (*Module, []Warning, error) {
	cfg := c.Config
	m := &Module{
		ID:    cfg.DatasetID,
		Blurb: rootBlurb(cfg),
		Lets: []Let{
			{Name: "T0", Unit: "K", Value: cfg.T0},
			{Name: "allows-negative-components", Value: "False"},
			{Name: "excludes-endmember-configuration-entropy", Value: "False"},
			{Name: "transparent-fallback", Value: "True"},
		},
	}

	//identifier collisions are resolved for every group up front, so a
	//collision late in the table cannot leave a half-built document
	topIDs := make(map[string]bool)
	for _, g := range cfg.Groups {
		if _, ok := c.Interactions[g.ID]; !ok {
			continue //no interaction file, no solution
		}
		id := g.Resolved()
		if _, taken := c.Minerals[id]; taken {
			return nil, nil, &hefesto.IdentifierCollisionError{PhaseID: g.ID, CollidesWith: id}
		}
		if topIDs[id] {
			return nil, nil, &hefesto.IdentifierCollisionError{PhaseID: g.ID, CollidesWith: id}
		}
		topIDs[id] = true
	}
	for _, id := range cfg.Standalone {
		if _, ok := c.Minerals[id]; !ok {
			continue
		}
		if topIDs[id] {
			return nil, nil, &hefesto.IdentifierCollisionError{PhaseID: id, CollidesWith: id}
		}
		topIDs[id] = true
	}

	used := make(map[string]bool)
	for _, g := range cfg.Groups {
		inter, ok := c.Interactions[g.ID]
		if !ok {
			continue
		}
		sp, err := solutionPhase(&g, inter, c.Minerals, used)
		if err != nil {
			return nil, nil, err
		}
		m.Phases = append(m.Phases, sp)
	}
	for _, id := range cfg.Standalone {
		used[id] = true
		min, ok := c.Minerals[id]
		if !ok {
			continue
		}
		m.Phases = append(m.Phases, mineralPhase(min))
	}

	var warns []Warning
	for _, id := range c.Order {
		if !used[id] {
			warns = append(warns, OrphanWarning{ID: id})
		}
	}
	return m, warns, nil
}

func rootBlurb(cfg *hefesto.Config) string {
	return "\n    Thermodynamic dataset: " + cfg.DatasetName +
		"\n    Parameter set 010123 for use with HeFESTo\n\n    Reference:\n    " +
		cfg.Reference + "\n  "
}

// solutionPhase builds one solution node. Its children are exactly the
// endmembers the interaction file header names, in that order.
func solutionPhase(g *hefesto.PhaseGroup, inter *hefesto.Interaction, minerals map[string]*hefesto.Mineral, used map[string]bool) (*SolutionPhase, error) {
	sp := &SolutionPhase{
		ID:    g.Resolved(),
		Type:  g.Type,
		Blurb: g.Name,
	}
	if g.AllowsNegative {
		sp.Lets = append(sp.Lets, Let{Name: "allows-negative-components", Value: "True"})
	}
	for _, em := range inter.Endmembers {
		min, ok := minerals[em]
		if !ok {
			return nil, &hefesto.UnresolvedEndmemberError{PhaseID: g.ID, Endmember: em}
		}
		used[em] = true
		sp.Members = append(sp.Members, mineralPhase(min))
	}
	n := inter.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if raw := inter.EnergyRaw(i, j); raw != "" && inter.Energy(i, j) != 0 {
				sp.Interactions = append(sp.Interactions, InteractionTerm{
					Unit:  "J/mol",
					Value: rescale(raw, expKJToJ),
					Refs:  [2]string{inter.Endmembers[i], inter.Endmembers[j]},
				})
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if raw := inter.VolumeRaw(i, j); raw != "" && inter.Volume(i, j) != 0 {
				sp.Interactions = append(sp.Interactions, InteractionTerm{
					Unit:  "m^3/mol",
					Value: rescale(raw, expCm3ToM3),
					Refs:  [2]string{inter.Endmembers[i], inter.Endmembers[j]},
				})
			}
		}
	}
	return sp, nil
}

// mineralPhase builds the node for one mineral: a plain Debye solid when
// the critical temperature is zero, a Landau wrapper around the no-Landau
// variant when it is positive. There is no third case.
func mineralPhase(min *hefesto.Mineral) Phase {
	solid := &DebyeSolid{
		ID:      min.ID,
		Blurb:   min.Name,
		Formula: min.Formula.String(),
		Lets:    standardLets(min),
	}
	if !min.Landau() {
		return solid
	}
	solid.ID = min.ID + "/nolandau"
	solid.Blurb = min.Name + " (no Landau)"
	return &LandauPhase{
		ID:    min.ID,
		Blurb: min.Name,
		Lets: []Let{
			{Name: "TC0", Unit: "K", Value: min.Par.TCrit.Raw},
			{Name: "SD", Unit: "J/mol/K", Value: min.Par.SCrit.Raw},
			{Name: "VD", Unit: "m^3/mol", Value: rescale(min.Par.VCrit.Raw, expCm3ToM3)},
		},
		Inner: solid,
	}
}

// standardLets emits the ten standard scalars with their unit rewrites.
// Conversions happen here and nowhere earlier.
func standardLets(min *hefesto.Mineral) []Let {
	p := &min.Par
	return []Let{
		{Name: "F0", Unit: "J/mol", Value: rescale(p.F0.Raw, expKJToJ)},
		{Name: "V0", Unit: "m^3/mol", Value: rescale(p.V0.Raw, expCm3ToM3)},
		{Name: "K0", Unit: "Pa", Value: rescale(p.K0.Raw, expGPaToPa)},
		{Name: "K0_p", Unit: "1", Value: p.K0p.Raw},
		{Name: "θ0", Unit: "K", Value: p.Theta0.Raw},
		{Name: "γ0", Unit: "1", Value: p.Gamma0.Raw},
		{Name: "q0", Unit: "1", Value: p.Q0.Raw},
		{Name: "G0", Unit: "Pa", Value: rescale(p.G0.Raw, expGPaToPa)},
		{Name: "G0_p", Unit: "1", Value: p.G0p.Raw},
		{Name: "η0", Unit: "1", Value: p.G0T.Raw},
	}
}

/*
 * assemble_test.go, part of hefesto2xml.
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
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	hefesto "github.com/sghelichkhani/HeFESTo-Parameters-010123"
)

func scalar(raw string) hefesto.Scalar {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic(err)
	}
	return hefesto.Scalar{Raw: raw, Value: v}
}

func testMineral(Te *testing.T, id, name, formulaRaw string, set func(*hefesto.Params)) *hefesto.Mineral {
	f, err := hefesto.ParseFormula(formulaRaw)
	if err != nil {
		Te.Fatal(err)
	}
	m := &hefesto.Mineral{ID: id, Name: name, FormulaRaw: formulaRaw, Formula: f}
	zero := scalar("0.0")
	p := &m.Par
	p.F0, p.V0, p.K0, p.K0p = zero, zero, zero, zero
	p.Theta0, p.Gamma0, p.Q0 = zero, zero, zero
	p.G0, p.G0p, p.G0T = zero, zero, zero
	p.TCrit, p.SCrit, p.VCrit = zero, zero, zero
	if set != nil {
		set(p)
	}
	return m
}

func testInteraction(Te *testing.T, phaseID string, lines ...string) *hefesto.Interaction {
	in, err := hefesto.ReadInteraction(phaseID, lines)
	if err != nil {
		Te.Fatal(err)
	}
	return in
}

//testCorpus builds the canonical miniature corpus: an olivine solution
//(fo, fa), a spinel solution whose key collides with its own endmember,
//one standalone mineral and one orphan.
func buildCorpus(Te *testing.T) *hefesto.Corpus {
	cfg := &hefesto.Config{
		DatasetID:   "TEST",
		DatasetName: "test set",
		Reference:   "nobody, nowhere, 2026",
		T0:          "300.0",
		Groups: []hefesto.PhaseGroup{
			{ID: "ol", Name: "Olivine", Type: "EoS.Phases.RegularSolution, EoS.Core"},
			{ID: "sp", Name: "Spinel", Type: "EoS.Phases.RegularSolution, EoS.Core", SolutionID: "sps"},
		},
		Standalone: []string{"st"},
	}
	minerals := map[string]*hefesto.Mineral{
		"fo": testMineral(Te, "fo", "Forsterite", "Mg_2Si_1O_4", func(p *hefesto.Params) {
			p.F0 = scalar("500.0")
			p.V0 = scalar("10.0")
			p.K0 = scalar("127.95527")
			p.G0 = scalar("81.6")
		}),
		"fa": testMineral(Te, "fa", "Fayalite", "Fe_2Si_1O_4", func(p *hefesto.Params) {
			p.TCrit = scalar("65.0")
			p.SCrit = scalar("26.7627")
			p.VCrit = scalar("0.05")
		}),
		"sp":   testMineral(Te, "sp", "Spinel", "Mg_4Al_8O_16", nil),
		"herc": testMineral(Te, "herc", "Hercynite", "Fe_4Al_8O_16", nil),
		"st":   testMineral(Te, "st", "Stishovite", "Si_1O_2", nil),
		"wu":   testMineral(Te, "wu", "Wuestite", "Fe_1O_1", nil),
	}
	var order []string
	for id := range minerals {
		order = append(order, id)
	}
	sort.Strings(order)
	return &hefesto.Corpus{
		Minerals: minerals,
		Order:    order,
		Interactions: map[string]*hefesto.Interaction{
			"ol": testInteraction(Te, "ol", "fo fa", "0.0 7.81", "Volume", "0.0 0.0"),
			"sp": testInteraction(Te, "sp", "sp herc", "0.0 5.0"),
		},
		Config: cfg,
	}
}

func TestAssemble(Te *testing.T) {
	c := buildCorpus(Te)
	doc, warns, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	//top level: ol, sps, st — the spinel solution under its override,
	//and no two top-level identifiers equal
	ids := make(map[string]bool)
	var got []string
	for _, p := range doc.Phases {
		id := p.PhaseID()
		if ids[id] {
			Te.Errorf("duplicate top-level identifier %q", id)
		}
		ids[id] = true
		got = append(got, id)
	}
	want := []string{"ol", "sps", "st"}
	if len(got) != len(want) {
		Te.Fatalf("top-level phases: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("top-level phase %d: got %s, want %s", i, got[i], want[i])
		}
	}
	//one orphan: wu
	if len(warns) != 1 {
		Te.Fatalf("got %d warnings, want 1: %v", len(warns), warns)
	}
	if !strings.Contains(warns[0].Warning(), "wu") {
		Te.Errorf("orphan warning should name wu: %s", warns[0].Warning())
	}
	fmt.Println("assembled:", got, "warning:", warns[0].Warning())
}

//The children of a solution are exactly the interaction file's header,
//in its order — never anything from configuration.
func TestAssembleEndmemberFidelity(Te *testing.T) {
	c := buildCorpus(Te)
	doc, _, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	ol := doc.Phases[0].(*SolutionPhase)
	if len(ol.Members) != 2 {
		Te.Fatalf("olivine members: %d", len(ol.Members))
	}
	if ol.Members[0].PhaseID() != "fo" || ol.Members[1].PhaseID() != "fa" {
		Te.Errorf("olivine members out of order: %s, %s", ol.Members[0].PhaseID(), ol.Members[1].PhaseID())
	}
	if len(ol.Interactions) != 1 {
		Te.Fatalf("olivine interactions: %d", len(ol.Interactions))
	}
	w := ol.Interactions[0]
	if w.Unit != "J/mol" || w.Value != "7.81e3" || w.Refs != [2]string{"fo", "fa"} {
		Te.Errorf("olivine W term wrong: %+v", w)
	}
}

//Exactly one of plain node or wrapped node per mineral, on the single
//predicate TCrit > 0.
func TestAssembleLandauBranch(Te *testing.T) {
	c := buildCorpus(Te)
	doc, _, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	ol := doc.Phases[0].(*SolutionPhase)
	if _, ok := ol.Members[0].(*DebyeSolid); !ok {
		Te.Errorf("fo should be a plain node, got %T", ol.Members[0])
	}
	landau, ok := ol.Members[1].(*LandauPhase)
	if !ok {
		Te.Fatalf("fa should be Landau-wrapped, got %T", ol.Members[1])
	}
	if landau.ID != "fa" || landau.Inner.ID != "fa/nolandau" {
		Te.Errorf("landau ids: %s wrapping %s", landau.ID, landau.Inner.ID)
	}
	if landau.Inner.Blurb != "Fayalite (no Landau)" {
		Te.Errorf("inner blurb: %q", landau.Inner.Blurb)
	}
	wantLets := map[string]string{"TC0": "65.0", "SD": "26.7627", "VD": "0.05e-6"}
	for _, l := range landau.Lets {
		if wantLets[l.Name] != l.Value {
			Te.Errorf("landau let %s: got %q, want %q", l.Name, l.Value, wantLets[l.Name])
		}
	}
}

func TestAssembleUnitExactness(Te *testing.T) {
	c := buildCorpus(Te)
	doc, _, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	fo := doc.Phases[0].(*SolutionPhase).Members[0].(*DebyeSolid)
	lets := make(map[string]Let)
	for _, l := range fo.Lets {
		lets[l.Name] = l
	}
	if l := lets["F0"]; l.Value != "500.0e3" || l.Unit != "J/mol" {
		Te.Errorf("F0: %+v", l)
	}
	if l := lets["V0"]; l.Value != "10.0e-6" || l.Unit != "m^3/mol" {
		Te.Errorf("V0: %+v", l)
	}
	if l := lets["K0"]; l.Value != "127.95527e9" || l.Unit != "Pa" {
		Te.Errorf("K0: %+v", l)
	}
	if fo.Formula != "(Mg)2(Si)(O)4" {
		Te.Errorf("formula: %q", fo.Formula)
	}
}

func TestAssembleCollisionWithoutOverride(Te *testing.T) {
	c := buildCorpus(Te)
	c.Config.Groups[1].SolutionID = "" //sp now collides with the mineral sp
	doc, _, err := Assemble(c)
	if err == nil {
		Te.Fatal("expected an identifier collision")
	}
	if _, ok := err.(*hefesto.IdentifierCollisionError); !ok {
		Te.Fatalf("got %T, want *IdentifierCollisionError", err)
	}
	if doc != nil {
		Te.Error("a fatal condition must produce no tree")
	}
	fmt.Println("rejected as expected:", err)
}

func TestAssembleUnresolvedEndmember(Te *testing.T) {
	c := buildCorpus(Te)
	c.Interactions["ol"] = testInteraction(Te, "ol", "fo ghost", "0.0 1.0")
	doc, _, err := Assemble(c)
	if err == nil {
		Te.Fatal("expected an unresolved endmember")
	}
	uerr, ok := err.(*hefesto.UnresolvedEndmemberError)
	if !ok {
		Te.Fatalf("got %T, want *UnresolvedEndmemberError", err)
	}
	if uerr.Endmember != "ghost" {
		Te.Errorf("error should name ghost: %+v", uerr)
	}
	if doc != nil {
		Te.Error("a fatal condition must produce no tree")
	}
}

//A group with no interaction file is simply not a solution in this
//corpus; it is skipped, not an error.
func TestAssembleMissingInteractionFile(Te *testing.T) {
	c := buildCorpus(Te)
	delete(c.Interactions, "sp")
	doc, _, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	for _, p := range doc.Phases {
		if p.PhaseID() == "sps" {
			Te.Error("sp group should be skipped without its interaction file")
		}
	}
}

func TestAssembleRootLets(Te *testing.T) {
	c := buildCorpus(Te)
	doc, _, err := Assemble(c)
	if err != nil {
		Te.Fatal(err)
	}
	if doc.ID != "TEST" {
		Te.Errorf("module id: %q", doc.ID)
	}
	if len(doc.Lets) != 4 || doc.Lets[0].Name != "T0" || doc.Lets[0].Value != "300.0" {
		Te.Errorf("root lets wrong: %+v", doc.Lets)
	}
}

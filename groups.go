/*
 * groups.go, part of hefesto2xml.
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
	"os"

	"gopkg.in/yaml.v3"
)

//Configuration carries metadata only: display names, solution types, flags
//and identifier overrides. Endmember lists are never configured; they come
//from the interaction files themselves.

// regularSolution is the solution type every phase group in the 010123 set
// uses. Kept as a default so the YAML override may omit it.
const regularSolution = "EoS.Phases.RegularSolution, EoS.Core"

// PhaseGroup is the static metadata for one known solution phase.
type PhaseGroup struct {
	ID             string `yaml:"id"`   //key used to locate the interaction file
	Name           string `yaml:"name"` //human-readable
	Type           string `yaml:"type"`
	AllowsNegative bool   `yaml:"allows-negative"`
	SolutionID     string `yaml:"solution-id"` //override when ID collides with a mineral
}

// Resolved returns the identifier the phase is emitted under: the natural
// key, unless an override is registered.
func (g *PhaseGroup) Resolved() string {
	if g.SolutionID != "" {
		return g.SolutionID
	}
	return g.ID
}

// Config is the static configuration for one translation run.
type Config struct {
	DatasetID   string       `yaml:"dataset-id"`
	DatasetName string       `yaml:"dataset-name"`
	Reference   string       `yaml:"reference"`
	T0          string       `yaml:"t0"` //reference temperature, K, as a literal
	Groups      []PhaseGroup `yaml:"groups"`
	Standalone  []string     `yaml:"standalone"`
}

// DefaultConfig returns the built-in configuration for the 010123
// parameter set. The sp group carries the one known identifier override:
// its natural key is taken by the spinel endmember.
func DefaultConfig() *Config {
	return &Config{
		DatasetID:   "SLB24",
		DatasetName: "Stixrude & Lithgow-Bertelloni 2024 - The role of iron",
		Reference: "Stixrude, L. and C. Lithgow-Bertelloni,\n" +
			"Thermodynamics of mantle minerals - III. The role of iron,\n" +
			"Geophysical Journal International, in press, 2024.",
		T0: "300.0",
		Groups: []PhaseGroup{
			{ID: "ol", Name: "Olivine", Type: regularSolution},
			{ID: "opx", Name: "Orthopyroxene", Type: regularSolution, AllowsNegative: true},
			{ID: "cpx", Name: "Clinopyroxene", Type: regularSolution, AllowsNegative: true},
			{ID: "gt", Name: "Garnet", Type: regularSolution, AllowsNegative: true},
			{ID: "pv", Name: "Perovskite", Type: regularSolution},
			{ID: "ppv", Name: "Post-Perovskite", Type: regularSolution},
			{ID: "sp", Name: "Spinel", Type: regularSolution, SolutionID: "sps"},
			{ID: "wa", Name: "Wadsleyite", Type: regularSolution},
			{ID: "ri", Name: "Ringwoodite", Type: regularSolution},
			{ID: "plg", Name: "Feldspar", Type: regularSolution},
			{ID: "cf", Name: "Ca-Ferrite", Type: regularSolution},
			{ID: "mw", Name: "Ferropericlase", Type: regularSolution},
			{ID: "il", Name: "Akimotoite", Type: regularSolution, AllowsNegative: true},
			{ID: "nal", Name: "NAL Phase", Type: regularSolution},
			{ID: "c2c", Name: "HP-Clinopyroxene", Type: regularSolution},
		},
		Standalone: []string{
			"st", "coes", "qtz", "capv", "ky", "neph",
			"fea", "fee", "feg", "wo", "pwo", "apbo", "lppv",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Fields the file leaves
// out keep their default values; a groups or standalone list in the file
// replaces the default list wholesale.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Groups {
		if cfg.Groups[i].Type == "" {
			cfg.Groups[i].Type = regularSolution
		}
	}
	return cfg, nil
}

/*
 * report.go, part of hefesto2xml.
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

//Package report prints and plots corpus diagnostics. It is purely
//additive: nothing here influences the translation itself.
package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	hefesto "github.com/sghelichkhani/HeFESTo-Parameters-010123"
)

// Stats is a summary of one parsed corpus.
type Stats struct {
	Minerals  int
	Solutions int
	Landau    int //minerals with an active Landau modification
	Plain     int
	TCritMean float64 //over Landau minerals only, K
	TCritStd  float64
}

// Summary computes corpus statistics. The Landau/plain split is the same
// branch the assembler takes: strictly on a positive critical temperature.
func Summary(c *hefesto.Corpus) Stats {
	s := Stats{Minerals: len(c.Minerals), Solutions: len(c.Interactions)}
	var tc []float64
	for _, id := range c.Order {
		m := c.Minerals[id]
		if m.Landau() {
			s.Landau++
			tc = append(tc, m.Par.TCrit.Value)
		} else {
			s.Plain++
		}
	}
	if len(tc) > 0 {
		s.TCritMean, s.TCritStd = stat.MeanStdDev(tc, nil)
	}
	return s
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "minerals: %d (%d Landau, %d plain)\n", s.Minerals, s.Landau, s.Plain)
	fmt.Fprintf(&b, "solution phases: %d\n", s.Solutions)
	if s.Landau > 0 {
		fmt.Fprintf(&b, "critical temperature: mean %.1f K, stddev %.1f K\n", s.TCritMean, s.TCritStd)
	}
	return b.String()
}

// CritTempHist saves a histogram of the Landau critical temperatures to
// filename (format by suffix, .png works).
func CritTempHist(c *hefesto.Corpus, filename string) error {
	var tc plotter.Values
	for _, id := range c.Order {
		if m := c.Minerals[id]; m.Landau() {
			tc = append(tc, m.Par.TCrit.Value)
		}
	}
	if len(tc) == 0 {
		return fmt.Errorf("report: no Landau minerals to plot")
	}
	return saveHist(tc, "Landau critical temperatures", "T_c (K)", filename)
}

// InteractionHist saves a histogram of the nonzero pairwise interaction
// energies (kJ/mol) over all solution phases.
func InteractionHist(c *hefesto.Corpus, filename string) error {
	var ws plotter.Values
	for _, inter := range c.Interactions {
		n := inter.N()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if w := inter.Energy(i, j); w != 0 {
					ws = append(ws, w)
				}
			}
		}
	}
	if len(ws) == 0 {
		return fmt.Errorf("report: no nonzero interaction energies to plot")
	}
	return saveHist(ws, "Pairwise interaction energies", "W (kJ/mol)", filename)
}

func saveHist(vals plotter.Values, title, xlabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(vals, 16)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}

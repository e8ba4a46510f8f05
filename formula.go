/*
 * formula.go, part of hefesto2xml.
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

//HeFESTo writes stoichiometries with one term per crystallographic site:
//a bare term like Mg_2, or a parenthesized mixed-occupancy site like
//(Na_2Mg_1), optionally followed by a count for the whole site.
//The EoS schema wants every site parenthesized and counts of 1 dropped,
//e.g. Mg_2Si_1O_4 -> (Mg)2(Si)(O)4.

// Pair is one element together with its occupancy within a site.
// The count is kept as the raw token from the file; "1" means full.
type Pair struct {
	Element string
	Count   string
}

// Site is one crystallographic site: one or more element pairs and a
// multiplier for the whole site. A simple element is the degenerate case
// of a single pair with count 1.
type Site struct {
	Pairs []Pair
	Count string
}

// Formula is an ordered sequence of sites. Order matters: it is the order
// in which the parameter file writes them.
type Formula []Site

// String renders the formula in the EoS notation: each site parenthesized,
// pair counts of 1 and site multipliers of 1 dropped. The two drops are
// independent decisions, applied uniformly.
func (F Formula) String() string {
	var b strings.Builder
	for _, s := range F {
		b.WriteByte('(')
		for _, p := range s.Pairs {
			b.WriteString(p.Element)
			if p.Count != "1" {
				b.WriteString(p.Count)
			}
		}
		b.WriteByte(')')
		if s.Count != "1" {
			b.WriteString(s.Count)
		}
	}
	return b.String()
}

// Mass returns the molar mass of the formula in g/mol, from the element
// table. Unknown elements and unparseable counts give an error; this is a
// diagnostic, the translation itself never needs it.
func (F Formula) Mass() (float64, error) {
	total := 0.0
	for _, s := range F {
		sm := 0.0
		for _, p := range s.Pairs {
			m, ok := AtomicMass(p.Element)
			if !ok {
				return 0, &FormulaSyntaxError{Formula: F.String(), Msg: "unknown element " + p.Element}
			}
			c, err := strconv.ParseFloat(p.Count, 64)
			if err != nil {
				return 0, err
			}
			sm += m * c
		}
		c, err := strconv.ParseFloat(s.Count, 64)
		if err != nil {
			return 0, err
		}
		total += sm * c
	}
	return total, nil
}

//scanner states for ParseFormula
const (
	outsideGroup = iota
	insideGroup
)

// ParseFormula tokenizes one HeFESTo formula string into its ordered sites.
// It is a single left-to-right scan with one character of lookahead; anything
// other than letters, digits, dots, underscores and parentheses fails with
// a *FormulaSyntaxError.
func ParseFormula(raw string) (Formula, error) {
	f := Formula{}
	state := outsideGroup
	var site Site
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '(' && state == outsideGroup:
			state = insideGroup
			site = Site{Count: "1"}
			i++
		case c == ')' && state == insideGroup:
			state = outsideGroup
			i++
			//an optional digit run right after ')' multiplies the whole site
			if count, n := scanCount(raw[i:]); n > 0 {
				site.Count = count
				i += n
			}
			if len(site.Pairs) == 0 {
				return nil, &FormulaSyntaxError{Formula: raw, Pos: i - 1}
			}
			f = append(f, site)
		case isUpper(c):
			pair, n := scanPair(raw, i)
			i += n
			if state == insideGroup {
				site.Pairs = append(site.Pairs, pair)
			} else {
				//a bare element is a singleton site; its count becomes
				//the site multiplier, the inner occupancy stays 1
				f = append(f, Site{Pairs: []Pair{{Element: pair.Element, Count: "1"}}, Count: pair.Count})
			}
		default:
			return nil, &FormulaSyntaxError{Formula: raw, Pos: i}
		}
	}
	if state == insideGroup {
		return nil, &FormulaSyntaxError{Formula: raw, Pos: len(raw) - 1}
	}
	return f, nil
}

// scanPair reads an element symbol (one uppercase letter plus an optional
// lowercase one), the underscore the source notation puts before counts,
// and the count itself. An omitted count defaults to 1.
func scanPair(raw string, start int) (Pair, int) {
	i := start
	elem := string(raw[i])
	i++
	if i < len(raw) && isLower(raw[i]) {
		elem += string(raw[i])
		i++
	}
	if i < len(raw) && raw[i] == '_' {
		i++
	}
	count := "1"
	if c, n := scanCount(raw[i:]); n > 0 {
		count = c
		i += n
	}
	return Pair{Element: elem, Count: count}, i - start
}

// scanCount reads a decimal digit run (with an optional fractional part)
// and returns it with the number of bytes consumed. Zero consumed bytes
// means there was no count.
func scanCount(s string) (string, int) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i > 0 && i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	return s[:i], i
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

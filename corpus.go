/*
 * corpus.go, part of hefesto2xml.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//The corpus root holds one parameter file per mineral, named by its
//identifier, plus a phase/ subdirectory with one interaction file per
//solution. Files may be stored gzip- or zstd-compressed; the reader is
//picked by suffix, the identifier is the stem.

// ParamFile is the raw content of one corpus file: its identifier (the
// file stem) and its lines.
type ParamFile struct {
	ID    string
	Lines []string
}

//bookkeeping files that live in the corpus root but are not minerals
var notMinerals = map[string]bool{
	"changelog":  true,
	"README.md":  true,
	"out":        true,
	".gitignore": true,
}

// ListParameterFiles reads every mineral parameter file in dir, sorted by
// identifier. Directories, hidden files and the usual bookkeeping files
// are skipped.
func ListParameterFiles(dir string) ([]ParamFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []ParamFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || notMinerals[name] || strings.HasPrefix(name, ".") {
			continue
		}
		lines, err := readLines(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, ParamFile{ID: stem(name), Lines: lines})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// ListInteractionFiles reads every phase interaction file in dir, sorted
// by phase identifier. A missing directory just means there are no
// solution phases.
func ListInteractionFiles(dir string) ([]ParamFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []ParamFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		lines, err := readLines(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, ParamFile{ID: stem(name), Lines: lines})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// readLines slurps a text file into lines, decompressing by suffix the
// same way the trajectory formats do: .gz is gzip, .zst is zstd, anything
// else is plain text.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	var lines []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// stem strips a compression suffix, if any, from a corpus file name.
// Identifiers never contain dots, so anything after one is a suffix.
func stem(name string) string {
	switch filepath.Ext(name) {
	case ".gz", ".zst":
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// Corpus is everything one run translates: the parsed minerals, the parsed
// interaction files and the static configuration.
type Corpus struct {
	Minerals     map[string]*Mineral
	Order        []string //mineral identifiers, sorted
	Interactions map[string]*Interaction
	Config       *Config
}

// LoadCorpus parses the whole corpus. Any parse failure is fatal; a
// partially translated database is worse than none.
func LoadCorpus(paramDir, phaseDir string, cfg *Config) (*Corpus, error) {
	c := &Corpus{
		Minerals:     make(map[string]*Mineral),
		Interactions: make(map[string]*Interaction),
		Config:       cfg,
	}
	params, err := ListParameterFiles(paramDir)
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		m, err := ReadMineral(p.ID, p.Lines)
		if err != nil {
			return nil, errDecorate(err, "LoadCorpus")
		}
		c.Minerals[m.ID] = m
		c.Order = append(c.Order, m.ID)
	}
	phases, err := ListInteractionFiles(phaseDir)
	if err != nil {
		return nil, err
	}
	for _, p := range phases {
		in, err := ReadInteraction(p.ID, p.Lines)
		if err != nil {
			return nil, errDecorate(err, "LoadCorpus")
		}
		c.Interactions[in.PhaseID] = in
	}
	return c, nil
}

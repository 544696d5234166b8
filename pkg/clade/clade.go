// Package clade knows which group each species belongs to. The
// information comes from a two column, tab separated file,
//
//	Lineus_longissimus	Nemertea
//
// Species names are taken from assembly file names.
package clade

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// NoClade is written in the clade column if no species file was given.
const NoClade = "NA"

var ErrNoClade = errors.New("species not in clade file")

// SpeciesName takes a file name like
// Lineus_longissimus-GCA_910592395.2-2022_03-cds.fa and returns
// Lineus_longissimus. Everything from the first "." is dropped, then
// everything from the first "-".
func SpeciesName(fname string) string {
	base := filepath.Base(fname)
	base = strings.Split(base, ".")[0]
	return strings.Split(base, "-")[0]
}

// Map is species name to clade.
type Map map[string]string

// Read reads species and clades from an io.Reader. Extra columns are
// ignored. White space is trimmed from the clade, but not from the
// species.
func Read(rdr io.Reader) (Map, error) {
	csvReader := csv.NewReader(rdr)
	csvReader.Comma = '\t'
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	m := make(Map)
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			line, _ := csvReader.FieldPos(0)
			return nil, fmt.Errorf("line %d: want species and clade, got %q", line, row)
		}
		m[row[0]] = strings.TrimSpace(row[1])
	}
	return m, nil
}

// ReadFile reads the species to clade file.
func ReadFile(fname string) (Map, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	m, err := Read(fp)
	if err != nil {
		return nil, fmt.Errorf("clade file %s: %w", fname, err)
	}
	return m, nil
}

// Lookup returns the clade of a species. A nil map means no clade
// file was given and every species gets NoClade.
func (m Map) Lookup(species string) (string, error) {
	if m == nil {
		return NoClade, nil
	}
	if c, ok := m[species]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoClade, species)
}

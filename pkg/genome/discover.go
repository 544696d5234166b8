// Finding genome files and their cds partners.

package genome

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/clade"
)

// Exts are the endings we take as fasta files.
var Exts = []string{".fa", ".fasta", ".fas", ".fna"}

var (
	ErrNoCDS        = errors.New("no cds file")
	ErrAmbiguousCDS = errors.New("more than one cds file")
)

// primaryDir is the piece of the path that separates primary files
// from their cds partners. .../primary/x.fa goes with .../x.fa
const primaryDir = "primary"

// Genome is one primary assembly file.
type Genome struct {
	Path    string
	Name    string // file name without directory
	Species string
}

// New makes a Genome from a file name.
func New(fname string) Genome {
	return Genome{
		Path:    fname,
		Name:    filepath.Base(fname),
		Species: clade.SpeciesName(fname),
	}
}

// isFasta checks the file ending.
func isFasta(fname string) bool {
	for _, e := range Exts {
		if strings.HasSuffix(fname, e) {
			return true
		}
	}
	return false
}

// hidden says a name starts with a dot. Like a shell glob, we leave
// these out unless the pattern itself starts with a dot, so macOS "._"
// sidecar files are not taken for genomes.
func hidden(name string) bool { return strings.HasPrefix(filepath.Base(name), ".") }

// Discover lists the genomes under path. path is used as a prefix,
// so "data/primary/" lists a directory and "data/primary/Homo" lists
// everything starting with Homo. Directories and hidden files are
// skipped.
func Discover(path string) ([]Genome, error) {
	pattern := path + "*"
	names, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}
	dotOK := hidden(pattern)
	var genomes []Genome
	for _, n := range names {
		if !isFasta(n) || (hidden(n) && !dotOK) {
			continue
		}
		if fi, err := os.Stat(n); err != nil {
			return nil, err
		} else if fi.IsDir() {
			continue
		}
		genomes = append(genomes, New(n))
	}
	return genomes, nil
}

// CDSPath finds the cds file for a genome. path is the same prefix
// given to Discover. Everything from the first "primary" on is
// dropped and the genome's file name is looked for there. If path
// does not mention primary, the cds and primary file are the same.
func CDSPath(path string, g Genome) (string, error) {
	cdsDir, _, _ := strings.Cut(path, primaryDir)
	pattern := cdsDir + g.Name
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("cds for %s: %w", g.Name, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoCDS, pattern)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: %s matches %d files", ErrAmbiguousCDS, pattern, len(matches))
}

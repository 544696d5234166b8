// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// WrtNamed writes a string to a file with a given name in a directory,
// making the directory if necessary. Tests of genome directories need
// the names to look like real assemblies, so WrtTemp's random names do
// not work there.
func WrtNamed(dir, name, s string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("making %s: %w", dir, err)
	}
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(s), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", fname, err)
	}
	return fname, nil
}

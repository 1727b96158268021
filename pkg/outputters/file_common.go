package outputters

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveOutputPath places a relative report file beneath the output
// directory. Absolute paths are used as given.
func ResolveOutputPath(outdir, outfile string) string {
	if outdir == "" || filepath.IsAbs(outfile) {
		return outfile
	}
	return filepath.Join(outdir, outfile)
}

// EnsureFileDirectory creates the directory portion of a file path.
func EnsureFileDirectory(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for output file %s: %w", filePath, err)
	}
	return nil
}

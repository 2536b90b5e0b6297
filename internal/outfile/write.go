package outfile

import "os"

// WriteMarkupFile writes markup to outPath, always overwriting any existing file.
func WriteMarkupFile(outPath string, markup []byte) error {
	return os.WriteFile(outPath, markup, 0o644)
}

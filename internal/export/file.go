package export

import (
	"fmt"
	"io"
	"os"
)

// Write renders r in the given format: csv, xml or json.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "csv":
		return WriteCSV(w, r)
	case "xml":
		return WriteXML(w, r)
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// WriteFile renders r into outPath.
func WriteFile(outPath, format string, r Report) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", outPath, err)
	}
	if err := Write(f, format, r); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", outPath, err)
	}
	return f.Close()
}

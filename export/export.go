package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pagemill/outliner/model"
)

// WriteOutline encodes the outline as indented JSON
func WriteOutline(w io.Writer, outline *model.Outline) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(outline); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// WriteOutlineFile writes the outline JSON to a file
func WriteOutlineFile(filename string, outline *model.Outline) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return WriteOutline(f, outline)
}

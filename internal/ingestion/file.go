package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument loads a résumé document from disk, extracts its text (PDF
// files go through the PDF collaborator, everything else is read as plain
// text), normalizes it, and returns the text with metadata.
func ReadDocument(path string) (string, *Metadata, error) {
	var raw string

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := ExtractPDFText(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract PDF text: %w", err)
		}
		raw = text
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil, fmt.Errorf("file not found: %w", err)
			}
			return "", nil, fmt.Errorf("failed to read file: %w", err)
		}
		raw = string(content)
	}

	normalized := NormalizeText(raw)
	return normalized, NewMetadata(normalized, path), nil
}

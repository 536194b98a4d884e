package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Metadata describes one ingested résumé document.
type Metadata struct {
	DocumentID string `json:"document_id"`      // UUID assigned at ingestion
	Source     string `json:"source,omitempty"` // Originating file path, if any
	Timestamp  string `json:"timestamp"`        // RFC3339 format
	Hash       string `json:"hash"`             // SHA256 hex digest of the normalized text
	Chars      int    `json:"chars"`
	Lines      int    `json:"lines"`
	Words      int    `json:"words"`
}

// NewMetadata creates Metadata for normalized document content.
func NewMetadata(content, source string) *Metadata {
	return &Metadata{
		DocumentID: uuid.NewString(),
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Chars:      len(content),
		Lines:      countLines(content),
		Words:      len(strings.Fields(content)),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}

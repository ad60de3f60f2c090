// Package export writes list and statistics data to CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/example/frontdesk/internal/dates"
)

// Document is a table ready to be encoded.
type Document struct {
	Header []string
	Rows   [][]string
}

// quote wraps a field in double quotes, doubling any quotes it contains.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Encode renders the document. Every field is quote-wrapped so commas and
// line breaks inside values survive a round trip through any CSV reader.
func (d Document) Encode() string {
	lines := make([]string, 0, len(d.Rows)+1)
	lines = append(lines, encodeRow(d.Header))
	for _, row := range d.Rows {
		lines = append(lines, encodeRow(row))
	}
	return strings.Join(lines, "\n")
}

func encodeRow(row []string) string {
	quoted := make([]string, len(row))
	for i, field := range row {
		quoted[i] = quote(field)
	}
	return strings.Join(quoted, ",")
}

// Filename builds the conventional name for an exported range, for example
// "reservations_2024-08-01_2024-08-31.csv".
func Filename(resource string, r dates.Range) string {
	return fmt.Sprintf("%s_%s_%s.csv", resource, r.Start, r.End)
}

// Save encodes the document into dir under the conventional name and returns
// the full path written. The directory is created if needed.
func Save(dir, resource string, r dates.Range, doc Document) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expanding export dir: %w", err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(expanded, Filename(resource, r))
	if err := os.WriteFile(path, []byte(doc.Encode()), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

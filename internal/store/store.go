package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/sirapobp/regtable/internal/course"
)

// Format identifies an intermediate file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'json' or 'csv')", s)
}

// DetectFormat picks the encoding implied by a file name, defaulting to
// JSON for anything without a .csv extension.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Write encodes the records in order. JSON output is indented; CSV output
// starts with a header row.
func Write(w io.Writer, records []*course.Record, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return nil
	case FormatCSV:
		if err := gocsv.Marshal(records, w); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return nil
	}
	return fmt.Errorf("invalid format: %s", format)
}

// Read decodes a record file produced by Write, or by hand as long as the
// eight fields are present.
func Read(r io.Reader, format Format) ([]*course.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	records := make([]*course.Record, 0)
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing records: %w", err)
		}
		// json.Unmarshal accepts a top-level null into a slice.
		if records == nil {
			return nil, fmt.Errorf("parsing records: document is not a JSON array")
		}
	case FormatCSV:
		if err := gocsv.UnmarshalBytes(data, &records); err != nil {
			return nil, fmt.Errorf("parsing records: %w", err)
		}
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
	return records, nil
}

// Save writes the records to path, creating or truncating it.
func Save(path string, records []*course.Record, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, records, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads the record file at path.
func Load(path string, format Format) ([]*course.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() // nolint:errcheck

	records, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

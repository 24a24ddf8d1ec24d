// Package roster turns an uploaded CSV or XLSX file into header-keyed rows.
package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	ErrParse             = errors.New("roster parse error")
	ErrEmptyInput        = errors.New("roster has no data rows")
	ErrUnsupportedFormat = errors.New("unsupported roster format")
)

// Row maps a header cell to the row's value in that column. Header keys are
// kept as written in the file; callers match them case-insensitively.
type Row map[string]string

// FormatFromFilename picks the reader from the file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(name))) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Read parses data as the given format. The first non-empty record is the
// header; blank records are dropped.
func Read(data []byte, format Format) ([]Row, error) {
	var records [][]string
	var err error

	switch format {
	case FormatCSV:
		records, err = readCSV(data)
	case FormatXLSX:
		records, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return toRows(records)
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var out [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrParse, sheets[0], err)
	}
	return rows, nil
}

func toRows(records [][]string) ([]Row, error) {
	var header []string
	out := make([]Row, 0, len(records))

	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if header == nil {
			header = make([]string, len(rec))
			for i, h := range rec {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}

		row := make(Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		out = append(out, row)
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

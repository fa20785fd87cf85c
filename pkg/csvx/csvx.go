// Package csvx reads and writes the interchange CSV format: semicolon
// delimited, UTF-8 with a byte order mark, header row first.
package csvx

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// ReadFile parses a CSV file into one map per record keyed by the header row.
func ReadFile(path string) ([]map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, bom)

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = ';'

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteFile writes a header row and records to path, prefixed with a BOM.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(bom); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

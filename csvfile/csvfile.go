// Package csvfile reads header-keyed CSV tables and writes CSV files
// atomically.
package csvfile

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Table struct {
	Path   string
	Header []string
	Rows   []map[string]string
}

// Read loads a CSV file whose first line is the header. Cells are trimmed.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	table.Path = path
	return table, nil
}

func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("missing header")
	}

	table := &Table{}
	for _, h := range records[0] {
		table.Header = append(table.Header, strings.TrimSpace(h))
	}
	for _, record := range records[1:] {
		row := make(map[string]string, len(table.Header))
		for i, h := range table.Header {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Records lays the table out in header order, header first.
func (t *Table) Records() [][]string {
	res := make([][]string, 0, len(t.Rows)+1)
	res = append(res, append([]string{}, t.Header...))
	for _, row := range t.Rows {
		record := make([]string, len(t.Header))
		for i, h := range t.Header {
			record[i] = row[h]
		}
		res = append(res, record)
	}
	return res
}

func WriteRecords(w io.Writer, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

// Write writes records to a temporary file next to path and renames it into
// place, so readers never see a half written file. It returns the number of
// bytes written.
func Write(path string, records [][]string) (int64, error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return 0, errors.Wrapf(err, "Error writing %s", path)
	}

	if err := WriteRecords(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, errors.Wrapf(err, "Error writing %s", path)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, errors.Wrapf(err, "Error writing %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return 0, errors.Wrapf(err, "Error writing %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, errors.Wrapf(err, "Error writing %s", path)
	}
	return stat.Size(), nil
}

func (t *Table) Write() (int64, error) {
	return Write(t.Path, t.Records())
}

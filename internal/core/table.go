package core

import (
	"fmt"
	"strings"
	"time"
)

// NoColumn is returned by the decoder when a column name is absent.
const NoColumn = -1

// RawTable is an ordered sequence of rows as fetched from a tabular source.
// The header is the exact column-name sequence of the sheet's first row.
type RawTable struct {
	Name   string
	Header []string
	Rows   [][]any
}

// NewRawTable splits the leading header row off the fetched values.
func NewRawTable(name string, values [][]any) RawTable {
	t := RawTable{Name: name}
	if len(values) == 0 {
		return t
	}
	t.Header = make([]string, len(values[0]))
	for i, v := range values[0] {
		t.Header[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	t.Rows = values[1:]
	return t
}

// Empty reports whether the table has no data rows.
func (t RawTable) Empty() bool { return len(t.Rows) == 0 }

// RowDecoder resolves column indices once per table so row access does not
// re-scan the header. Exact and folded lookups are both supported; which one
// applies depends on the table (setup tables are exact, scheduled and
// liability lookups fold). Folding ignores case and interior spaces, so
// "NextDueDate" and "Next Due Date" resolve to the same column.
type RowDecoder struct {
	exact map[string]int
	fold  map[string]int
}

func NewRowDecoder(header []string) *RowDecoder {
	d := &RowDecoder{
		exact: make(map[string]int, len(header)),
		fold:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := d.exact[name]; !ok {
			d.exact[name] = i
		}
		key := foldKey(name)
		if _, ok := d.fold[key]; !ok {
			d.fold[key] = i
		}
	}
	return d
}

func foldKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

// Column returns the index of an exact column name, or NoColumn.
func (d *RowDecoder) Column(name string) int {
	if i, ok := d.exact[strings.TrimSpace(name)]; ok {
		return i
	}
	return NoColumn
}

// ColumnFold returns the index of a column name under case- and
// space-insensitive lookup, or NoColumn.
func (d *RowDecoder) ColumnFold(name string) int {
	if i, ok := d.fold[foldKey(name)]; ok {
		return i
	}
	return NoColumn
}

// String returns the trimmed string value of a cell, or "" when the column is
// absent or the row is short.
func (d *RowDecoder) String(row []any, col int) string {
	if col == NoColumn || col < 0 || col >= len(row) {
		return ""
	}
	if row[col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[col]))
}

// Value returns the raw cell, or nil when absent.
func (d *RowDecoder) Value(row []any, col int) any {
	if col == NoColumn || col < 0 || col >= len(row) {
		return nil
	}
	return row[col]
}

// Number returns the normalized numeric value of a cell.
func (d *RowDecoder) Number(row []any, col int) float64 {
	return NormalizeNumber(d.Value(row, col))
}

// Date returns the parsed date of a cell and whether it was usable.
func (d *RowDecoder) Date(row []any, col int) (time.Time, bool) {
	return ParseDate(d.Value(row, col))
}

var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01/02/2006 15:04:05",
}

// ParseDate interprets a cell as a calendar date. Cells may carry native time
// values or formatted strings; anything unparseable reports false rather than
// an error, matching the tolerant handling of malformed rows.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

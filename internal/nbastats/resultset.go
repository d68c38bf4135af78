package nbastats

import (
	"fmt"
	"strconv"
)

// Response is the envelope every stats endpoint returns: one or more
// named result sets, each a header list plus positional rows.
type Response struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet is a single tabular payload. Cell types are whatever the
// JSON decoder produced: float64 for numbers, string, bool, or nil.
type ResultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// Table returns the result set with the given name. Endpoints that
// return several sets keep the interesting one under a stable name;
// when the name is absent the first set is used instead, since most
// endpoints return exactly one.
func (resp *Response) Table(name string) (*Table, error) {
	for _, rs := range resp.ResultSets {
		if rs.Name == name {
			return newTable(rs), nil
		}
	}
	if len(resp.ResultSets) > 0 {
		return newTable(resp.ResultSets[0]), nil
	}
	return nil, fmt.Errorf("no result sets in %s response", resp.Resource)
}

// Table wraps a ResultSet with name-based column lookup, so callers
// never depend on the column order the API happens to use.
type Table struct {
	Name  string
	index map[string]int
	rows  [][]interface{}
}

func newTable(rs ResultSet) *Table {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return &Table{Name: rs.Name, index: idx, rows: rs.RowSet}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns the i-th row. Panics if i is out of range, like a slice.
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// FindFloat scans for the first row whose column equals want. Numeric
// identifiers (player IDs, team IDs) decode as float64, so an exact
// comparison is safe for integer-valued cells.
func (t *Table) FindFloat(col string, want float64) (Row, bool) {
	for i := range t.rows {
		r := t.Row(i)
		if v := r.MaybeFloat(col); v != nil && *v == want {
			return r, true
		}
	}
	return Row{}, false
}

// Row is a single result-set row with typed, name-based accessors.
type Row struct {
	table *Table
	cells []interface{}
}

func (r Row) cell(col string) (interface{}, bool) {
	i, ok := r.table.index[col]
	if !ok || i >= len(r.cells) {
		return nil, false
	}
	return r.cells[i], true
}

// MaybeFloat returns a pointer to the numeric value of col, or nil when
// the column is missing, the cell is null, or it holds a non-number.
// The decoder produces float64 for every JSON number; int cells from
// hand-built tables are accepted too.
func (r Row) MaybeFloat(col string) *float64 {
	c, ok := r.cell(col)
	if !ok {
		return nil
	}
	switch v := c.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

// Float returns the numeric value of col, 0 when absent.
func (r Row) Float(col string) float64 {
	if v := r.MaybeFloat(col); v != nil {
		return *v
	}
	return 0
}

// Int returns the value of col truncated to an integer, 0 when absent.
func (r Row) Int(col string) int {
	return int(r.Float(col))
}

// Str returns the string value of col. Numeric cells are formatted,
// since a few fields (jersey numbers, weights) flip between string and
// number across seasons. Absent or null cells yield "".
func (r Row) Str(col string) string {
	c, ok := r.cell(col)
	if !ok {
		return ""
	}
	switch v := c.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

package entities

// Table is the tabular view of a collection: a header row followed by data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has neither a header nor rows.
func (t Table) Empty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// Lines returns the header followed by every row, or nil for an empty table.
func (t Table) Lines() [][]string {
	if t.Empty() {
		return nil
	}
	lines := make([][]string, 0, len(t.Rows)+1)
	lines = append(lines, t.Header)
	lines = append(lines, t.Rows...)
	return lines
}

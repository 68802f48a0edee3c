package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	ports "dasbor/internal/tables"
)

func TestTableQueriesCoverKnownTables(t *testing.T) {
	names := []string{
		ports.Transactions,
		ports.WalletSetup,
		ports.CategorySetup,
		ports.GoalsSetup,
		ports.Scheduled,
	}
	for _, name := range names {
		tq, ok := tableQueries[name]
		if !ok {
			t.Errorf("no query mapped for table %q", name)
			continue
		}
		if len(tq.header) == 0 {
			t.Errorf("table %q has an empty header", name)
		}
		// Column order in the SELECT must mirror the sheet header, so the
		// counts have to line up.
		selectPart := strings.SplitN(tq.query, "FROM", 2)[0]
		cols := strings.Count(selectPart, ",") + 1
		if cols != len(tq.header) {
			t.Errorf("table %q selects %d columns for %d header cells", name, cols, len(tq.header))
		}
	}
}

func TestGetTableUnknownName(t *testing.T) {
	s := &Store{}
	_, err := s.GetTable(context.Background(), "Nonexistent")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("GetTable() error = %v, want ErrNotFound", err)
	}
}

func TestHeaderRow(t *testing.T) {
	row := headerRow([]string{"A", "B"})
	if len(row) != 2 || row[0] != "A" || row[1] != "B" {
		t.Errorf("headerRow() = %v", row)
	}
}

package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"dasbor/internal/core"
	ports "dasbor/internal/tables"
)

// Store is an in-memory table source used by tests and the local backend.
// Tables are stored as raw value grids, header row included, exactly as a
// spreadsheet fetch would return them.
type Store struct {
	mu     sync.Mutex
	tables map[string][][]any
}

var _ ports.Reader = (*Store)(nil)

func New() *Store {
	return &Store{tables: make(map[string][][]any)}
}

// NewFromFiles seeds a store from "<table name>.json" files under base, each
// holding a full value grid. Missing or malformed files are skipped so an
// empty data directory still yields a usable store.
func NewFromFiles(base string) *Store {
	s := New()
	for _, name := range []string{
		ports.Transactions,
		ports.WalletSetup,
		ports.CategorySetup,
		ports.GoalsSetup,
		ports.Scheduled,
	} {
		data, err := os.ReadFile(filepath.Join(base, name+".json"))
		if err != nil {
			continue
		}
		var values [][]any
		if err := json.Unmarshal(data, &values); err != nil {
			continue
		}
		s.SetTable(name, values)
	}
	return s
}

// SetTable replaces a table's full value grid (first row = header).
func (s *Store) SetTable(name string, values [][]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = values
}

// AppendRow adds one data row to an existing table.
func (s *Store) AppendRow(name string, row []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = append(s.tables[name], row)
}

func (s *Store) GetTable(_ context.Context, name string) (core.RawTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.tables[name]
	if !ok {
		return core.RawTable{}, fmt.Errorf("memory store %q: %w", name, ports.ErrNotFound)
	}
	// Copy so callers cannot mutate the store through the result.
	copied := make([][]any, len(values))
	for i, row := range values {
		copied[i] = append([]any(nil), row...)
	}
	return core.NewRawTable(name, copied), nil
}

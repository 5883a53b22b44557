package service

import (
	"context"
	"testing"

	"github.com/pliu/seniorsched/internal/store/sqlstore"
)

var ctx = context.Background()

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	st, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

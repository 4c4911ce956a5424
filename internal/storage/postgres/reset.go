package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ResetStore struct {
	db *sqlx.DB
}

func NewResetStore(db *sqlx.DB) *ResetStore {
	return &ResetStore{db: db}
}

// PurgeAll deletes every tracked community, sync status, content row and
// cached response, returning the removed row count per table. Call it inside
// a transaction.
func (s *ResetStore) PurgeAll(ctx context.Context) (map[string]int64, error) {
	exec := GetExecutor(ctx, s.db)

	tables := append(contentTables(), "sync_status", "cached_responses", "tracked_communities")
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		res, err := exec.ExecContext(ctx, "DELETE FROM "+table)
		if err != nil {
			return nil, fmt.Errorf("delete %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}

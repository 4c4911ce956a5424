package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"modsync/internal/domain"
)

type SyncStatusStore struct {
	db *sqlx.DB
}

func NewSyncStatusStore(db *sqlx.DB) *SyncStatusStore {
	return &SyncStatusStore{db: db}
}

func (s *SyncStatusStore) Get(ctx context.Context, community string, ct domain.ContentType) (*domain.SyncStatus, error) {
	var status domain.SyncStatus
	query := `
		SELECT community_name, content_type, cursor, last_sync_at, total_synced
		FROM sync_status
		WHERE community_name = $1 AND content_type = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &status, query, community, string(ct))
	if errors.Is(err, sql.ErrNoRows) {
		// Start of feed for communities that never synced
		return &domain.SyncStatus{
			CommunityName: community,
			ContentType:   ct,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Save overwrites the cursor and adds newItems to the running total.
func (s *SyncStatusStore) Save(ctx context.Context, community string, ct domain.ContentType, cursor *string, newItems int) error {
	query := `
		INSERT INTO sync_status (community_name, content_type, cursor, last_sync_at, total_synced)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (community_name, content_type) DO UPDATE SET
			cursor = EXCLUDED.cursor,
			last_sync_at = EXCLUDED.last_sync_at,
			total_synced = sync_status.total_synced + EXCLUDED.total_synced`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		community,
		string(ct),
		cursor,
		newItems,
	)
	return err
}

func (s *SyncStatusStore) ListForCommunity(ctx context.Context, community string) ([]domain.SyncStatus, error) {
	query := `
		SELECT community_name, content_type, cursor, last_sync_at, total_synced
		FROM sync_status
		WHERE community_name = $1
		ORDER BY content_type`

	statuses := []domain.SyncStatus{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &statuses, query, community)
	return statuses, err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"modsync/internal/domain"
)

type CommunityStore struct {
	db *sqlx.DB
}

func NewCommunityStore(db *sqlx.DB) *CommunityStore {
	return &CommunityStore{db: db}
}

func (s *CommunityStore) Create(ctx context.Context, name string) (*domain.TrackedCommunity, error) {
	query := `
		INSERT INTO tracked_communities (name)
		VALUES ($1)
		RETURNING id, name, is_active, created_at, updated_at`

	var c domain.TrackedCommunity
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &c, query, name)
	if isUniqueViolation(err) {
		return nil, domain.ErrAlreadyTracked
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CommunityStore) Get(ctx context.Context, name string) (*domain.TrackedCommunity, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tracked_communities
		WHERE name = $1`

	var c domain.TrackedCommunity
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &c, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCommunityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CommunityStore) List(ctx context.Context, activeOnly bool) ([]domain.TrackedCommunity, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tracked_communities
		WHERE ($1 = FALSE OR is_active)
		ORDER BY name`

	communities := []domain.TrackedCommunity{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &communities, query, activeOnly)
	return communities, err
}

func (s *CommunityStore) SetActive(ctx context.Context, name string, active bool) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE tracked_communities SET is_active = $2, updated_at = NOW() WHERE name = $1",
		name, active,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a community with its sync status and content rows.
// Call it inside a transaction.
func (s *CommunityStore) Delete(ctx context.Context, name string) error {
	exec := GetExecutor(ctx, s.db)

	for _, table := range contentTables() {
		if _, err := exec.ExecContext(ctx, "DELETE FROM "+table+" WHERE community_name = $1", name); err != nil {
			return err
		}
	}
	if _, err := exec.ExecContext(ctx, "DELETE FROM sync_status WHERE community_name = $1", name); err != nil {
		return err
	}

	res, err := exec.ExecContext(ctx, "DELETE FROM tracked_communities WHERE name = $1", name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCommunityNotFound
	}
	return nil
}

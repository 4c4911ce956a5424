package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"modsync/internal/domain"
)

// Rows per INSERT statement; 5 parameters each stays well under the
// protocol's 65535 bind parameter limit.
const insertChunk = 1000

var emptyPayload = json.RawMessage(`{}`)

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func tableFor(ct domain.ContentType) (string, error) {
	switch ct {
	case domain.ContentQueueItems:
		return "queue_items", nil
	case domain.ContentComments:
		return "comments", nil
	case domain.ContentPosts:
		return "posts", nil
	default:
		return "", fmt.Errorf("unknown content type %q", ct)
	}
}

func contentTables() []string {
	return []string{"queue_items", "comments", "posts"}
}

// InsertNew inserts items, skipping any (community_name, unique_name) already
// stored, and returns only the rows that were actually inserted.
func (s *ContentStore) InsertNew(ctx context.Context, ct domain.ContentType, items []domain.ContentItem) ([]domain.ContentItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	table, err := tableFor(ct)
	if err != nil {
		return nil, err
	}

	inserted := make([]domain.ContentItem, 0, len(items))
	for start := 0; start < len(items); start += insertChunk {
		end := min(start+insertChunk, len(items))
		rows, err := s.insertChunk(ctx, table, items[start:end])
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, rows...)
	}

	return inserted, nil
}

func (s *ContentStore) insertChunk(ctx context.Context, table string, items []domain.ContentItem) ([]domain.ContentItem, error) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (community_name, author, item_kind, unique_name, raw_payload) VALUES ")
	valueArgs := make([]interface{}, 0, len(items)*5)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 1; j <= 5; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*5 + j))
		}
		sb.WriteString(")")

		payload := item.RawPayload
		if len(payload) == 0 {
			payload = emptyPayload
		}
		valueArgs = append(valueArgs,
			item.CommunityName,
			item.Author,
			string(item.ItemKind),
			item.UniqueName,
			[]byte(payload),
		)
	}
	sb.WriteString(" ON CONFLICT (community_name, unique_name) DO NOTHING")
	sb.WriteString(" RETURNING id, community_name, author, item_kind, unique_name, raw_payload, inserted_at")

	var inserted []domain.ContentItem
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &inserted, sb.String(), valueArgs...); err != nil {
		return nil, err
	}
	return inserted, nil
}

// List returns stored items of a community, newest first.
func (s *ContentStore) List(ctx context.Context, ct domain.ContentType, community string, limit, offset int) (*domain.ItemsPage, error) {
	table, err := tableFor(ct)
	if err != nil {
		return nil, err
	}

	exec := GetExecutor(ctx, s.db)
	page := &domain.ItemsPage{Items: []domain.ContentItem{}, Limit: limit, Offset: offset}

	query := `
		SELECT id, community_name, author, item_kind, unique_name, raw_payload, inserted_at
		FROM ` + table + `
		WHERE community_name = $1
		ORDER BY inserted_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	if err := sqlx.SelectContext(ctx, exec, &page.Items, query, community, limit, offset); err != nil {
		return nil, err
	}

	countQuery := `SELECT COUNT(*) FROM ` + table + ` WHERE community_name = $1`
	if err := sqlx.GetContext(ctx, exec, &page.Total, countQuery, community); err != nil {
		return nil, err
	}

	return page, nil
}

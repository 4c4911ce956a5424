package domain

import (
	"encoding/json"
	"time"
)

// ContentType identifies one synchronized feed of a community.
type ContentType string

const (
	ContentQueueItems ContentType = "queueItems"
	ContentComments   ContentType = "comments"
	ContentPosts      ContentType = "posts"
)

// ContentTypes lists every content type kept in sync for a tracked community.
func ContentTypes() []ContentType {
	return []ContentType{ContentQueueItems, ContentComments, ContentPosts}
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentQueueItems, ContentComments, ContentPosts:
		return true
	}
	return false
}

// CacheKey is the response cache key shared by the read path and the poller.
func (t ContentType) CacheKey(community string) string {
	return string(t) + ":" + community
}

type ItemKind string

const (
	KindPost    ItemKind = "post"
	KindComment ItemKind = "comment"
)

// KindFromThing maps an upstream thing kind ("t1", "t3") to an item kind.
func KindFromThing(kind string) ItemKind {
	switch kind {
	case "t1":
		return KindComment
	case "t3":
		return KindPost
	default:
		return ItemKind(kind)
	}
}

type ContentItem struct {
	ID            int64           `db:"id" json:"id"`
	CommunityName string          `db:"community_name" json:"communityName"`
	Author        string          `db:"author" json:"author"`
	ItemKind      ItemKind        `db:"item_kind" json:"itemKind"`
	UniqueName    string          `db:"unique_name" json:"uniqueName"` // upstream fullname, e.g. "t3_abc123"
	RawPayload    json.RawMessage `db:"raw_payload" json:"rawPayload,omitempty"`
	InsertedAt    time.Time       `db:"inserted_at" json:"insertedAt"`
}

// ItemsPage is a window of stored items with the total stored for the feed.
type ItemsPage struct {
	Items  []ContentItem `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// Page is one transformed listing page.
type Page struct {
	Items []ContentItem
	After *string
}

func (p *Page) HasMore() bool {
	return p.After != nil && *p.After != ""
}

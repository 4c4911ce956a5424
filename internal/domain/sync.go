package domain

import "time"

// SyncStatus is the persisted pagination cursor of one community feed.
// A nil Cursor means the next crawl starts at the top of the feed.
type SyncStatus struct {
	CommunityName string      `db:"community_name" json:"communityName"`
	ContentType   ContentType `db:"content_type" json:"contentType"`
	Cursor        *string     `db:"cursor" json:"cursor"`
	LastSyncAt    time.Time   `db:"last_sync_at" json:"lastSyncAt"`
	TotalSynced   int64       `db:"total_synced" json:"totalSynced"`
}

type SyncMode string

const (
	ModeInitial SyncMode = "initial"
	ModeUpdate  SyncMode = "update"
)

// SyncStats holds statistics about a single page sync.
type SyncStats struct {
	CommunityName string
	ContentType   ContentType
	Mode          SyncMode
	Fetched       int
	New           int
	Duplicates    int
	NextCursor    *string
	Published     int
	Duration      time.Duration
}

// AllNew reports whether every fetched item was inserted.
func (s *SyncStats) AllNew() bool {
	return s.New == s.Fetched
}

// SyncJob is the queue payload of one crawl step.
type SyncJob struct {
	CommunityName string   `json:"communityName"`
	After         *string  `json:"after,omitempty"`
	Mode          SyncMode `json:"mode"`
}

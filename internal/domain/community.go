package domain

import (
	"errors"
	"time"
)

var (
	ErrAlreadyTracked    = errors.New("community is already tracked")
	ErrCommunityNotFound = errors.New("community not found")
)

type TrackedCommunity struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

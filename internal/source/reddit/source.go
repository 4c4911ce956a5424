package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"modsync/internal/domain"
)

const (
	SourceID      = "reddit"
	maxListingLen = 100
)

// ListingParams selects one listing page.
type ListingParams struct {
	After *string
	Limit int
}

// Me is the authenticated account.
type Me struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) ID() string {
	return SourceID
}

// ListingPath returns the endpoint that serves a content type for a community.
func ListingPath(community string, ct domain.ContentType) (string, error) {
	escaped := url.PathEscape(community)
	switch ct {
	case domain.ContentQueueItems:
		return "/r/" + escaped + "/about/modqueue", nil
	case domain.ContentComments:
		return "/r/" + escaped + "/comments", nil
	case domain.ContentPosts:
		return "/r/" + escaped + "/new", nil
	default:
		return "", fmt.Errorf("unknown content type %q", ct)
	}
}

// Listing fetches one raw listing page.
func (c *Client) Listing(ctx context.Context, community string, ct domain.ContentType, params ListingParams) (*domain.Listing, error) {
	path, err := ListingPath(community, ct)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 || limit > maxListingLen {
		limit = maxListingLen
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("raw_json", "1")
	if params.After != nil && *params.After != "" {
		query.Set("after", *params.After)
	}

	raw, err := c.Call(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var listing domain.Listing
	if err := decode(raw, &listing); err != nil {
		return nil, err
	}
	if listing.Kind != "Listing" {
		return nil, &DecodeError{Body: raw, Err: fmt.Errorf("unexpected kind %q", listing.Kind)}
	}

	return &listing, nil
}

// FetchPage fetches one page of a community feed starting at after and
// transforms it into content items.
func (c *Client) FetchPage(ctx context.Context, community string, ct domain.ContentType, after *string) (*domain.Page, error) {
	listing, err := c.Listing(ctx, community, ct, ListingParams{After: after, Limit: c.pageSize})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched page",
		"community", community,
		"content_type", ct,
		"items", len(listing.Data.Children),
		"after", deref(listing.Data.After),
	)

	return &domain.Page{
		Items: c.transform(community, listing.Data.Children),
		After: listing.Data.After,
	}, nil
}

func (c *Client) Me(ctx context.Context) (*Me, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/api/v1/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var me Me
	if err := decode(raw, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Approve approves a queued item by fullname.
func (c *Client) Approve(ctx context.Context, fullname string) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/approve", nil, url.Values{"id": {fullname}})
	return err
}

// Remove removes an item by fullname, optionally marking it as spam.
func (c *Client) Remove(ctx context.Context, fullname string, spam bool) error {
	form := url.Values{
		"id":   {fullname},
		"spam": {strconv.FormatBool(spam)},
	}
	_, err := c.Call(ctx, http.MethodPost, "/api/remove", nil, form)
	return err
}

func (c *Client) transform(community string, things []domain.Thing) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, len(things))

	for _, t := range things {
		if t.Data.Name == "" {
			c.logger.Warn("skipping thing without fullname",
				"community", community,
				"kind", t.Kind,
				"id", t.Data.ID,
			)
			continue
		}

		items = append(items, domain.ContentItem{
			CommunityName: community,
			Author:        t.Data.Author,
			ItemKind:      domain.KindFromThing(t.Kind),
			UniqueName:    t.Data.Name,
			RawPayload:    stripNullEscapes(t.Raw),
		})
	}

	return items
}

// stripNullEscapes replaces every \u0000 escape with \ufffd. Postgres JSONB
// cannot store the NUL character.
func stripNullEscapes(raw json.RawMessage) json.RawMessage {
	if !bytes.Contains(raw, []byte(`\u0000`)) {
		return raw
	}

	out := make(json.RawMessage, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		if bytes.HasPrefix(raw[i:], []byte(`\u0000`)) {
			out = append(out, `\ufffd`...)
			i += len(`\u0000`) - 1
			continue
		}
		out = append(out, raw[i], raw[i+1])
		i++
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

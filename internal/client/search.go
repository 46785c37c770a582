package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// Search runs a full-text search across events and orgs.
func (c *Client) Search(ctx context.Context, query string, opts model.ListOptions) (*model.SearchResults, error) {
	if query == "" {
		return nil, model.NewMissingArgError("query")
	}

	q := listQuery(opts)
	q.Set("q", query)

	var results model.SearchResults
	if err := c.getJSON(ctx, "/api/search", q, false, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// Suggest fetches typeahead suggestions for a partial query. Suggestions
// are advisory; callers that fire this on keystrokes should go through a
// Suggester so only the latest input's results are applied.
func (c *Client) Suggest(ctx context.Context, prefix string) ([]model.Suggestion, error) {
	if prefix == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", prefix)

	var suggestions []model.Suggestion
	if err := c.getJSON(ctx, "/api/search/suggest", q, false, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

package client

import (
	"net/url"
	"strconv"

	"github.com/sahyog-app/sahyog/internal/model"
)

// listQuery builds pagination parameters. Zero values are omitted rather
// than sent as empty strings.
func listQuery(opts model.ListOptions) url.Values {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	return q
}

// setOpt adds a filter parameter only when the value is non-empty.
func setOpt(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

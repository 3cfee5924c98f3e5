// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"net/url"
	"strconv"
)

// maxPageSize is the hard per_page limit enforced by the API.
const maxPageSize = 100

// ListOptions options for using pagination
type ListOptions struct {
	// Page number of results to return (1-based)
	Page int
	// PageSize is the number of items per page, capped at 100 by the server
	PageSize int
}

func (o ListOptions) getURLQuery() url.Values {
	query := make(url.Values)
	if o.Page > 0 {
		query.Add("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		query.Add("per_page", strconv.Itoa(o.PageSize))
	}
	return query
}

// setDefaults applies the API limits, so requests stay within what the
// server accepts.
func (o *ListOptions) setDefaults() {
	if o.Page < 0 {
		o.Page = 0
	}
	if o.PageSize < 0 {
		o.PageSize = 0
	} else if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
}

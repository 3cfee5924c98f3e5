// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptionsGetURLQuery(t *testing.T) {
	assert.Equal(t, "", ListOptions{}.getURLQuery().Encode())
	assert.Equal(t, "page=3&per_page=50", ListOptions{Page: 3, PageSize: 50}.getURLQuery().Encode())
	assert.Equal(t, "per_page=10", ListOptions{PageSize: 10}.getURLQuery().Encode())
}

func TestListOptionsSetDefaults(t *testing.T) {
	opts := ListOptions{Page: -1, PageSize: 500}
	opts.setDefaults()
	assert.Equal(t, 0, opts.Page)
	assert.Equal(t, maxPageSize, opts.PageSize)

	opts = ListOptions{Page: 2, PageSize: -3}
	opts.setDefaults()
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 0, opts.PageSize)
}

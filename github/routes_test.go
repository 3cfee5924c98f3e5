// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"strings"
	"testing"

	"code.gitea.io/github/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesIsReadOnly(t *testing.T) {
	test.AssertFreshSlice(t, Routes)
}

func TestRouteFor(t *testing.T) {
	route, ok := RouteFor("DeleteIssueReaction")
	require.True(t, ok)
	assert.Equal(t, "DELETE", route.Method)
	assert.Equal(t, "/repos/{owner}/{repo}/issues/{index}/reactions/{reaction}", route.Pattern)

	_, ok = RouteFor("NoSuchOperation")
	assert.False(t, ok)
}

// fillPattern substitutes the placeholder values the path-builder tests use,
// so the metadata table can be checked against the real builders.
func fillPattern(pattern string) string {
	r := strings.NewReplacer(
		"{owner}", "octokit",
		"{repo}", "octokit.net",
		"{id}", "1296269",
		"{index}", "1",
		"{comment}", "428",
		"{reaction}", "5",
	)
	return r.Replace(pattern)
}

func TestRouteTableMatchesPathBuilders(t *testing.T) {
	named := ownerRepo("octokit", "octokit.net")
	byID := repoByID(1296269)

	built := map[string]string{
		"ListIssueReactions":                 named.issueReactionsPath(1),
		"ListIssueReactionsByRepoID":         byID.issueReactionsPath(1),
		"CreateIssueReaction":                named.issueReactionsPath(1),
		"CreateIssueReactionByRepoID":        byID.issueReactionsPath(1),
		"DeleteIssueReaction":                named.issueReactionPath(1, 5),
		"DeleteIssueReactionByRepoID":        byID.issueReactionPath(1, 5),
		"ListIssueCommentReactions":          named.issueCommentReactionsPath(428),
		"ListIssueCommentReactionsByRepoID":  byID.issueCommentReactionsPath(428),
		"CreateIssueCommentReaction":         named.issueCommentReactionsPath(428),
		"CreateIssueCommentReactionByRepoID": byID.issueCommentReactionsPath(428),
		"DeleteIssueCommentReaction":         named.issueCommentReactionPath(428, 5),
		"DeleteIssueCommentReactionByRepoID": byID.issueCommentReactionPath(428, 5),
		"ServerVersion":                      "/meta",
	}

	routes := Routes()
	require.Len(t, routes, len(built))
	for _, route := range routes {
		path, ok := built[route.Operation]
		require.True(t, ok, "operation %s missing from builder map", route.Operation)
		assert.Equal(t, path, fillPattern(route.Pattern), "operation %s", route.Operation)
	}
}

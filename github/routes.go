// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import "net/http"

// Route describes the HTTP method and path template behind one client
// operation. The table exists for tooling and documentation; request paths
// are built in repo.go, never from these patterns.
type Route struct {
	Operation string
	Method    string
	Pattern   string
}

var routeTable = []Route{
	{"ListIssueReactions", http.MethodGet, "/repos/{owner}/{repo}/issues/{index}/reactions"},
	{"ListIssueReactionsByRepoID", http.MethodGet, "/repositories/{id}/issues/{index}/reactions"},
	{"CreateIssueReaction", http.MethodPost, "/repos/{owner}/{repo}/issues/{index}/reactions"},
	{"CreateIssueReactionByRepoID", http.MethodPost, "/repositories/{id}/issues/{index}/reactions"},
	{"DeleteIssueReaction", http.MethodDelete, "/repos/{owner}/{repo}/issues/{index}/reactions/{reaction}"},
	{"DeleteIssueReactionByRepoID", http.MethodDelete, "/repositories/{id}/issues/{index}/reactions/{reaction}"},
	{"ListIssueCommentReactions", http.MethodGet, "/repos/{owner}/{repo}/issues/comments/{comment}/reactions"},
	{"ListIssueCommentReactionsByRepoID", http.MethodGet, "/repositories/{id}/issues/comments/{comment}/reactions"},
	{"CreateIssueCommentReaction", http.MethodPost, "/repos/{owner}/{repo}/issues/comments/{comment}/reactions"},
	{"CreateIssueCommentReactionByRepoID", http.MethodPost, "/repositories/{id}/issues/comments/{comment}/reactions"},
	{"DeleteIssueCommentReaction", http.MethodDelete, "/repos/{owner}/{repo}/issues/comments/{comment}/reactions/{reaction}"},
	{"DeleteIssueCommentReactionByRepoID", http.MethodDelete, "/repositories/{id}/issues/comments/{comment}/reactions/{reaction}"},
	{"ServerVersion", http.MethodGet, "/meta"},
}

// Routes returns the route metadata for every operation of this client. The
// returned slice is a copy, callers may sort or filter it freely.
func Routes() []Route {
	routes := make([]Route, len(routeTable))
	copy(routes, routeTable)
	return routes
}

// RouteFor returns the route metadata for the named operation.
func RouteFor(operation string) (Route, bool) {
	for _, route := range routeTable {
		if route.Operation == operation {
			return route, true
		}
	}
	return Route{}, false
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"fmt"
	"net/url"
	"strings"
)

// repoRef addresses a repository either by owner and name or by its numeric
// id. The API exposes both forms for the same resources; every public pair
// of methods converges on one repoRef so the request logic exists once.
type repoRef struct {
	owner string
	name  string
	id    int64
	byID  bool
}

func ownerRepo(owner, name string) repoRef {
	return repoRef{owner: owner, name: name}
}

func repoByID(id int64) repoRef {
	return repoRef{id: id, byID: true}
}

// validate rejects empty or whitespace-only owner/name. The numeric form
// has no precondition.
func (r repoRef) validate() error {
	if r.byID {
		return nil
	}
	if strings.TrimSpace(r.owner) == "" {
		return newInvalidArgumentErrorf("owner is required")
	}
	if strings.TrimSpace(r.name) == "" {
		return newInvalidArgumentErrorf("repo name is required")
	}
	return nil
}

func (r repoRef) issuePath(index int64) string {
	if r.byID {
		return fmt.Sprintf("/repositories/%d/issues/%d", r.id, index)
	}
	return fmt.Sprintf("/repos/%s/%s/issues/%d", url.PathEscape(r.owner), url.PathEscape(r.name), index)
}

func (r repoRef) issueCommentPath(commentID int64) string {
	if r.byID {
		return fmt.Sprintf("/repositories/%d/issues/comments/%d", r.id, commentID)
	}
	return fmt.Sprintf("/repos/%s/%s/issues/comments/%d", url.PathEscape(r.owner), url.PathEscape(r.name), commentID)
}

func (r repoRef) issueReactionsPath(index int64) string {
	return r.issuePath(index) + "/reactions"
}

func (r repoRef) issueReactionPath(index, reactionID int64) string {
	return fmt.Sprintf("%s/reactions/%d", r.issuePath(index), reactionID)
}

func (r repoRef) issueCommentReactionsPath(commentID int64) string {
	return r.issueCommentPath(commentID) + "/reactions"
}

func (r repoRef) issueCommentReactionPath(commentID, reactionID int64) string {
	return fmt.Sprintf("%s/reactions/%d", r.issueCommentPath(commentID), reactionID)
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"bytes"
	"context"
	"net/url"
)

// ListIssueCommentReactions list reactions of an issue comment
func (c *Client) ListIssueCommentReactions(ctx context.Context, owner, repo string, commentID int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	return c.listIssueCommentReactions(ctx, ownerRepo(owner, repo), commentID, opts)
}

// ListIssueCommentReactionsByRepoID list reactions of an issue comment,
// addressing the repository by its numeric id
func (c *Client) ListIssueCommentReactionsByRepoID(ctx context.Context, repoID, commentID int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	return c.listIssueCommentReactions(ctx, repoByID(repoID), commentID, opts)
}

// CreateIssueCommentReaction add a reaction to an issue comment
func (c *Client) CreateIssueCommentReaction(ctx context.Context, owner, repo string, commentID int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
	return c.createIssueCommentReaction(ctx, ownerRepo(owner, repo), commentID, opt)
}

// CreateIssueCommentReactionByRepoID add a reaction to an issue comment,
// addressing the repository by its numeric id
func (c *Client) CreateIssueCommentReactionByRepoID(ctx context.Context, repoID, commentID int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
	return c.createIssueCommentReaction(ctx, repoByID(repoID), commentID, opt)
}

// DeleteIssueCommentReaction remove a reaction from an issue comment
func (c *Client) DeleteIssueCommentReaction(ctx context.Context, owner, repo string, commentID, reactionID int64) (*Response, error) {
	return c.deleteIssueCommentReaction(ctx, ownerRepo(owner, repo), commentID, reactionID)
}

// DeleteIssueCommentReactionByRepoID remove a reaction from an issue
// comment, addressing the repository by its numeric id
func (c *Client) DeleteIssueCommentReactionByRepoID(ctx context.Context, repoID, commentID, reactionID int64) (*Response, error) {
	return c.deleteIssueCommentReaction(ctx, repoByID(repoID), commentID, reactionID)
}

func (c *Client) listIssueCommentReactions(ctx context.Context, repo repoRef, commentID int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	if err := repo.validate(); err != nil {
		return nil, nil, err
	}
	if opts == nil {
		return nil, nil, newInvalidArgumentErrorf("list options are required")
	}
	opts.setDefaults()

	link, _ := url.Parse(repo.issueCommentReactionsPath(commentID))
	link.RawQuery = opts.getURLQuery().Encode()

	reactions := make([]*Reaction, 0, 10)
	resp, err := c.getParsedResponse(ctx, "GET", link.String(), nil, nil, &reactions)
	return reactions, resp, err
}

func (c *Client) createIssueCommentReaction(ctx context.Context, repo repoRef, commentID int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
	if err := repo.validate(); err != nil {
		return nil, nil, err
	}
	if err := opt.Validate(); err != nil {
		return nil, nil, err
	}
	body, err := json.Marshal(opt)
	if err != nil {
		return nil, nil, err
	}
	reaction := new(Reaction)
	resp, err := c.getParsedResponse(ctx, "POST", repo.issueCommentReactionsPath(commentID), jsonHeader, bytes.NewReader(body), reaction)
	return reaction, resp, err
}

func (c *Client) deleteIssueCommentReaction(ctx context.Context, repo repoRef, commentID, reactionID int64) (*Response, error) {
	if err := repo.validate(); err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", repo.issueCommentReactionPath(commentID, reactionID), nil, nil)
	return resp, err
}

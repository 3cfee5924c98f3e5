// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"bytes"
	"context"
	"net/url"
)

// ListIssueReactions list reactions of an issue
func (c *Client) ListIssueReactions(ctx context.Context, owner, repo string, index int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	return c.listIssueReactions(ctx, ownerRepo(owner, repo), index, opts)
}

// ListIssueReactionsByRepoID list reactions of an issue, addressing the
// repository by its numeric id
func (c *Client) ListIssueReactionsByRepoID(ctx context.Context, repoID, index int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	return c.listIssueReactions(ctx, repoByID(repoID), index, opts)
}

// CreateIssueReaction add a reaction to an issue and return the created
// reaction, including its server-assigned id
func (c *Client) CreateIssueReaction(ctx context.Context, owner, repo string, index int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
	return c.createIssueReaction(ctx, ownerRepo(owner, repo), index, opt)
}

// CreateIssueReactionByRepoID add a reaction to an issue, addressing the
// repository by its numeric id
func (c *Client) CreateIssueReactionByRepoID(ctx context.Context, repoID, index int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
	return c.createIssueReaction(ctx, repoByID(repoID), index, opt)
}

// DeleteIssueReaction remove a reaction from an issue
func (c *Client) DeleteIssueReaction(ctx context.Context, owner, repo string, index, reactionID int64) (*Response, error) {
	return c.deleteIssueReaction(ctx, ownerRepo(owner, repo), index, reactionID)
}

// DeleteIssueReactionByRepoID remove a reaction from an issue, addressing
// the repository by its numeric id
func (c *Client) DeleteIssueReactionByRepoID(ctx context.Context, repoID, index, reactionID int64) (*Response, error) {
	return c.deleteIssueReaction(ctx, repoByID(repoID), index, reactionID)
}

func (c *Client) listIssueReactions(ctx context.Context, repo repoRef, index int64, opts *ListOptions) ([]*Reaction, *Response, error) {
	if err := repo.validate(); err != nil {
		return nil, nil, err
	}
	if opts == nil {
		return nil, nil, newInvalidArgumentErrorf("list options are required")
	}
	opts.setDefaults()

	link, _ := url.Parse(repo.issueReactionsPath(index))
	link.RawQuery = opts.getURLQuery().Encode()

	reactions := make([]*Reaction, 0, 10)
	resp, err := c.getParsedResponse(ctx, "GET", link.String(), nil, nil, &reactions)
	return reactions, resp, err
}

func (c *Client) createIssueReaction(ctx context.Context, repo repoRef, index int64, opt *CreateReactionOption) (*Reaction, *Response, error) {
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
	resp, err := c.getParsedResponse(ctx, "POST", repo.issueReactionsPath(index), jsonHeader, bytes.NewReader(body), reaction)
	return reaction, resp, err
}

func (c *Client) deleteIssueReaction(ctx context.Context, repo repoRef, index, reactionID int64) (*Response, error) {
	if err := repo.validate(); err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", repo.issueReactionPath(index, reactionID), nil, nil)
	return resp, err
}

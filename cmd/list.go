// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"code.gitea.io/github/github"

	"github.com/urfave/cli/v2"
)

func cmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List reactions on an issue or an issue comment",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "issue",
				Usage: "Issue number",
			},
			&cli.Int64Flag{
				Name:  "comment",
				Usage: "Issue comment id; lists the comment's reactions instead of the issue's",
			},
			&cli.IntFlag{
				Name:  "page",
				Value: 1,
				Usage: "Page to start on",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Value: 30,
				Usage: "Results per page, capped at 100 by the server",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Follow pagination and fetch every page",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "With --all, stop after this many reactions (0 = unlimited)",
			},
		},
		Action: runList,
	}
}

func runList(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	tg, err := resolveTarget(c)
	if err != nil {
		return err
	}

	opts := &github.ListOptions{Page: c.Int("page"), PageSize: c.Int("page-size")}
	limit := c.Int("limit")

	reactions := make([]*github.Reaction, 0, opts.PageSize)
	for {
		page, resp, err := listPage(c, client, tg, opts)
		if err != nil {
			return err
		}
		reactions = append(reactions, page...)
		if limit > 0 && len(reactions) >= limit {
			reactions = reactions[:limit]
			break
		}
		if !c.Bool("all") || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return printJSON(c, reactions)
}

func listPage(c *cli.Context, client *github.Client, tg *target, opts *github.ListOptions) ([]*github.Reaction, *github.Response, error) {
	ctx := c.Context
	commentID := c.Int64("comment")
	switch {
	case tg.byID() && commentID != 0:
		return client.ListIssueCommentReactionsByRepoID(ctx, tg.id, commentID, opts)
	case tg.byID():
		return client.ListIssueReactionsByRepoID(ctx, tg.id, c.Int64("issue"), opts)
	case commentID != 0:
		return client.ListIssueCommentReactions(ctx, tg.owner, tg.name, commentID, opts)
	default:
		return client.ListIssueReactions(ctx, tg.owner, tg.name, c.Int64("issue"), opts)
	}
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"code.gitea.io/github/github"

	"github.com/urfave/cli/v2"
)

func cmdCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Add a reaction to an issue or an issue comment",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "issue",
				Usage: "Issue number",
			},
			&cli.Int64Flag{
				Name:  "comment",
				Usage: "Issue comment id; reacts to the comment instead of the issue",
			},
			&cli.StringFlag{
				Name:     "content",
				Required: true,
				Usage:    `Reaction content: "+1", "-1", "laugh", "confused", "heart", "hooray", "rocket" or "eyes"`,
			},
		},
		Action: runCreate,
	}
}

func runCreate(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	tg, err := resolveTarget(c)
	if err != nil {
		return err
	}

	ctx := c.Context
	opt := &github.CreateReactionOption{Content: c.String("content")}
	commentID := c.Int64("comment")

	var reaction *github.Reaction
	switch {
	case tg.byID() && commentID != 0:
		reaction, _, err = client.CreateIssueCommentReactionByRepoID(ctx, tg.id, commentID, opt)
	case tg.byID():
		reaction, _, err = client.CreateIssueReactionByRepoID(ctx, tg.id, c.Int64("issue"), opt)
	case commentID != 0:
		reaction, _, err = client.CreateIssueCommentReaction(ctx, tg.owner, tg.name, commentID, opt)
	default:
		reaction, _, err = client.CreateIssueReaction(ctx, tg.owner, tg.name, c.Int64("issue"), opt)
	}
	if err != nil {
		return err
	}
	return printJSON(c, reaction)
}

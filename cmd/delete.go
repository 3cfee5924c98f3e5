// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func cmdDelete() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Remove a reaction from an issue or an issue comment",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "issue",
				Usage: "Issue number",
			},
			&cli.Int64Flag{
				Name:  "comment",
				Usage: "Issue comment id; removes a reaction from the comment instead",
			},
			&cli.Int64Flag{
				Name:     "reaction-id",
				Required: true,
				Usage:    "Id of the reaction to remove",
			},
		},
		Action: runDelete,
	}
}

func runDelete(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	tg, err := resolveTarget(c)
	if err != nil {
		return err
	}

	ctx := c.Context
	reactionID := c.Int64("reaction-id")
	commentID := c.Int64("comment")

	switch {
	case tg.byID() && commentID != 0:
		_, err = client.DeleteIssueCommentReactionByRepoID(ctx, tg.id, commentID, reactionID)
	case tg.byID():
		_, err = client.DeleteIssueReactionByRepoID(ctx, tg.id, c.Int64("issue"), reactionID)
	case commentID != 0:
		_, err = client.DeleteIssueCommentReaction(ctx, tg.owner, tg.name, commentID, reactionID)
	default:
		_, err = client.DeleteIssueReaction(ctx, tg.owner, tg.name, c.Int64("issue"), reactionID)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "deleted reaction %d\n", reactionID)
	return err
}

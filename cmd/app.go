// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd provides the subcommands of the reactions CLI.
package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewApp creates the reactions CLI.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "reactions"
	app.Usage = "Manage emoji reactions on GitHub issues and issue comments"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to an ini config file with a [github] section (url, token)",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "API root, e.g. https://api.github.com or https://ghe.example.com/api/v3",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "Access token; requests are anonymous when empty",
		},
		&cli.StringFlag{
			Name:  "repo",
			Usage: "Repository as owner/name",
		},
		&cli.Int64Flag{
			Name:  "repo-id",
			Usage: "Numeric repository id, alternative to --repo",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Log every request line to stderr",
		},
	}
	app.Commands = []*cli.Command{
		cmdList(),
		cmdCreate(),
		cmdDelete(),
		cmdRoutes(),
	}
	return app
}

func printJSON(c *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}

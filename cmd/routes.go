// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"code.gitea.io/github/github"

	"github.com/urfave/cli/v2"
)

func cmdRoutes() *cli.Command {
	return &cli.Command{
		Name:   "routes",
		Usage:  "Print the HTTP method and path template behind every operation",
		Action: runRoutes,
	}
}

func runRoutes(c *cli.Context) error {
	for _, route := range github.Routes() {
		if _, err := fmt.Fprintf(c.App.Writer, "%-36s %-7s %s\n", route.Operation, route.Method, route.Pattern); err != nil {
			return err
		}
	}
	return nil
}

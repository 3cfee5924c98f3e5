// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"code.gitea.io/github/github"

	"github.com/urfave/cli/v2"
	"gopkg.in/ini.v1"
)

const defaultAPIRoot = "https://api.github.com"

// settings is the client configuration resolved from the optional ini config
// file and the command line. Flags win over the file.
type settings struct {
	URL   string
	Token string
}

func loadSettings(c *cli.Context) (*settings, error) {
	s := &settings{URL: defaultAPIRoot}
	if path := c.String("config"); path != "" {
		cfg, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
		sec := cfg.Section("github")
		if v := sec.Key("url").String(); v != "" {
			s.URL = v
		}
		if v := sec.Key("token").String(); v != "" {
			s.Token = v
		}
	}
	if v := c.String("url"); v != "" {
		s.URL = v
	}
	if v := c.String("token"); v != "" {
		s.Token = v
	}
	return s, nil
}

func newClient(c *cli.Context) (*github.Client, error) {
	s, err := loadSettings(c)
	if err != nil {
		return nil, err
	}
	var options []github.ClientOption
	if s.Token != "" {
		options = append(options, github.SetToken(s.Token))
	}
	if c.Bool("debug") {
		options = append(options, github.SetDebugMode())
	}
	return github.NewClient(s.URL, options...)
}

// target is the repository a command works on, in either addressing form.
type target struct {
	owner string
	name  string
	id    int64
}

func (tg *target) byID() bool {
	return tg.id != 0
}

func resolveTarget(c *cli.Context) (*target, error) {
	if id := c.Int64("repo-id"); id != 0 {
		if c.String("repo") != "" {
			return nil, fmt.Errorf("--repo and --repo-id are mutually exclusive")
		}
		return &target{id: id}, nil
	}
	repo := c.String("repo")
	if repo == "" {
		return nil, fmt.Errorf("provide --repo owner/name or --repo-id")
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("malformed --repo %q, expected owner/name", repo)
	}
	return &target{owner: owner, name: name}, nil
}

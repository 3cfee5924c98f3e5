// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"strings"
	"time"
)

// Reaction contents understood by the API.
const (
	ReactionPlusOne  = "+1"
	ReactionMinusOne = "-1"
	ReactionLaugh    = "laugh"
	ReactionConfused = "confused"
	ReactionHeart    = "heart"
	ReactionHooray   = "hooray"
	ReactionRocket   = "rocket"
	ReactionEyes     = "eyes"
)

// Reaction contain one reaction
type Reaction struct {
	// The id assigned by the server
	ID int64 `json:"id"`
	// The user who created the reaction
	User *User `json:"user"`
	// The reaction content (e.g. "+1", "heart")
	Content string `json:"content"`
	// The date and time when the reaction was created
	Created time.Time `json:"created_at"`
}

// CreateReactionOption contain the reaction content to create
type CreateReactionOption struct {
	// The reaction content (e.g. "+1", "heart")
	Content string `json:"content"`
}

// Validate the CreateReactionOption struct
func (opt *CreateReactionOption) Validate() error {
	if opt == nil {
		return newInvalidArgumentErrorf("reaction is required")
	}
	if strings.TrimSpace(opt.Content) == "" {
		return newInvalidArgumentErrorf("reaction content is required")
	}
	return nil
}

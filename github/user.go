// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

// User represents the account a reaction belongs to. Only the fields the
// reactions payload carries are mapped.
type User struct {
	// the user's id
	ID int64 `json:"id"`
	// the user's username
	UserName string `json:"login"`
	// URL to the user's avatar
	AvatarURL string `json:"avatar_url"`
	// URL to the user's profile page
	HTMLURL string `json:"html_url"`
	// the account type, "User" or "Organization"
	Type string `json:"type"`
}

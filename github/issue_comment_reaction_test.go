// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"code.gitea.io/github/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIssueCommentReactions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/repos/octokit/octokit.net/issues/comments/428/reactions", r.URL.Path)
		fmt.Fprint(w, `[{"id": 9, "content": "laugh", "user": {"id": 2, "login": "user2"}}]`)
	}))

	reactions, _, err := client.ListIssueCommentReactions(context.Background(), "octokit", "octokit.net", 428, &ListOptions{})
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, ReactionLaugh, reactions[0].Content)
}

func TestListIssueCommentReactionsByRepoID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repositories/1296269/issues/comments/428/reactions", r.URL.Path)
		fmt.Fprint(w, `[]`)
	}))

	reactions, _, err := client.ListIssueCommentReactionsByRepoID(context.Background(), 1296269, 428, &ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, reactions)
}

func TestCreateIssueCommentReaction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/octokit/octokit.net/issues/comments/428/reactions", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"content":"+1"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 10, "content": "+1"}`)
	}))

	reaction, _, err := client.CreateIssueCommentReaction(context.Background(), "octokit", "octokit.net", 428, &CreateReactionOption{Content: ReactionPlusOne})
	require.NoError(t, err)
	assert.EqualValues(t, 10, reaction.ID)
	assert.Equal(t, ReactionPlusOne, reaction.Content)
}

func TestDeleteIssueCommentReaction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/repositories/1296269/issues/comments/428/reactions/10", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	_, err := client.DeleteIssueCommentReactionByRepoID(context.Background(), 1296269, 428, 10)
	assert.NoError(t, err)
}

func TestIssueCommentReactionValidation(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	test.RejectsWhitespaceArgs(t, ErrInvalidArgument, func(arg string) error {
		_, _, err := client.ListIssueCommentReactions(context.Background(), arg, "repo", 428, &ListOptions{})
		return err
	})
	test.RejectsWhitespaceArgs(t, ErrInvalidArgument, func(arg string) error {
		_, err := client.DeleteIssueCommentReaction(context.Background(), "owner", arg, 428, 1)
		return err
	})

	_, _, err := client.ListIssueCommentReactions(context.Background(), "owner", "repo", 428, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, _, err = client.CreateIssueCommentReaction(context.Background(), "owner", "repo", 428, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Zero(t, hits.Load())
}

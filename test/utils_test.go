// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectsWhitespaceArgs(t *testing.T) {
	errEmpty := errors.New("empty value")
	RejectsWhitespaceArgs(t, errEmpty, func(arg string) error {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("bad argument: %w", errEmpty)
		}
		return nil
	})
}

func TestJSONTag(t *testing.T) {
	type payload struct {
		Content  string `json:"content"`
		Internal string
	}

	tag, ok := JSONTag(payload{}, "Content")
	assert.True(t, ok)
	assert.Equal(t, "content", tag)

	tag, ok = JSONTag(&payload{}, "Content")
	assert.True(t, ok)
	assert.Equal(t, "content", tag)

	_, ok = JSONTag(payload{}, "Internal")
	assert.False(t, ok)
	_, ok = JSONTag(payload{}, "Missing")
	assert.False(t, ok)
	_, ok = JSONTag(42, "Whatever")
	assert.False(t, ok)
}

func TestAssertFreshSlice(t *testing.T) {
	backing := []int{1, 2, 3}
	AssertFreshSlice(t, func() []int {
		out := make([]int, len(backing))
		copy(out, backing)
		return out
	})
	AssertFreshSlice(t, func() []int { return nil })
}

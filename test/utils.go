// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package test provides assertion helpers shared across the test suites of
// this module. The helpers are intentionally generic and know nothing about
// the API client itself.
package test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// WhitespaceArgs is the set of degenerate string arguments every
// string-addressed operation must reject.
var WhitespaceArgs = []string{"", " ", "  ", "\t", "\n", "\r", "\r\n", " \t "}

// RejectsWhitespaceArgs asserts that fn fails for every entry of
// WhitespaceArgs with an error unwrapping to target.
func RejectsWhitespaceArgs(t *testing.T, target error, fn func(arg string) error) {
	t.Helper()
	for _, arg := range WhitespaceArgs {
		err := fn(arg)
		if assert.Error(t, err, "argument %q must be rejected", arg) {
			assert.ErrorIs(t, err, target, "argument %q", arg)
		}
	}
}

// JSONTag looks up the json struct tag of the named field of v, following
// pointers. The second return reports whether the field exists and carries
// a json tag at all.
func JSONTag(v any, fieldName string) (string, bool) {
	typ := reflect.TypeOf(v)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return "", false
	}
	field, ok := typ.FieldByName(fieldName)
	if !ok {
		return "", false
	}
	return field.Tag.Lookup("json")
}

// AssertJSONTag asserts that the named field of v exists and carries the
// wanted json tag.
func AssertJSONTag(t *testing.T, v any, fieldName, want string) {
	t.Helper()
	tag, ok := JSONTag(v, fieldName)
	if assert.True(t, ok, "field %s has no json tag", fieldName) {
		assert.Equal(t, want, tag, "field %s", fieldName)
	}
}

// AssertFreshSlice asserts that get hands out an independent copy on every
// call, so the collection behind it is effectively read-only to callers.
func AssertFreshSlice[T any](t *testing.T, get func() []T) {
	t.Helper()
	first := get()
	second := get()
	assert.Equal(t, first, second)
	if len(first) == 0 {
		return
	}
	var zero T
	want := second[0]
	first[0] = zero
	third := get()
	assert.Equal(t, want, third[0], "mutating a returned slice leaked into later calls")
}

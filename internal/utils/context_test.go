// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if OwnerCtxKey.String() != "owner" {
		t.Errorf("expected 'owner', got '%s'", OwnerCtxKey.String())
	}
}

func TestGetOwnerFromContext_Success(t *testing.T) {
	ctx := WithOwner(context.Background(), "alice")

	owner, ok := GetOwnerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if owner != "alice" {
		t.Errorf("expected owner=alice, got %s", owner)
	}
}

func TestGetOwnerFromContext_Missing(t *testing.T) {
	owner, ok := GetOwnerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if owner != "" {
		t.Errorf("expected empty owner, got %s", owner)
	}
}

func TestGetOwnerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, int64(42))

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetOwnerFromContext_Empty(t *testing.T) {
	ctx := WithOwner(context.Background(), "")

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty owner, got true")
	}
}

func TestGetOwnerFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "bob")

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

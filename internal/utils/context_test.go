// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

func TestContextKeyString(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestPrincipalFromContext_Success(t *testing.T) {
	p := models.Principal{Token: "tok", User: models.User{UserID: 42}}
	ctx := WithPrincipal(context.Background(), p)

	got, ok := PrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.User.UserID != 42 || got.Token != "tok" {
		t.Errorf("unexpected principal %+v", got)
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not a principal")

	_, ok := PrincipalFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong value type")
	}
}

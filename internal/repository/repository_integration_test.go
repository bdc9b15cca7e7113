//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keymint/keymint/internal/model"
	"github.com/keymint/keymint/internal/testutil"
)

func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}

func TestIntegrationCreateAPIKey(t *testing.T) {
	ctx, repo := newTestEnv(t)

	id, err := repo.CreateAPIKey(ctx, "sk-sm-v1-00000000000000000000000000000001", time.Now().UTC())
	if err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a store-assigned id")
	}

	keys, err := repo.ListAPIKeys(ctx)
	if err != nil {
		t.Fatalf("ListAPIKeys failed: %v", err)
	}
	if len(keys) != 1 || keys[0].ID != id {
		t.Errorf("expected the created key in listing, got %+v", keys)
	}
}

func TestIntegrationCreateAPIKey_DuplicateKey(t *testing.T) {
	ctx, repo := newTestEnv(t)

	const key = "sk-sm-v1-00000000000000000000000000000002"
	if _, err := repo.CreateAPIKey(ctx, key, time.Now().UTC()); err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}

	if _, err := repo.CreateAPIKey(ctx, key, time.Now().UTC()); err == nil {
		t.Error("expected unique violation on duplicate key")
	}
}

func TestIntegrationCreateUserWithKey(t *testing.T) {
	ctx, repo := newTestEnv(t)

	const key = "sk-sm-v1-0000000000000000000000000000000A"
	user := &model.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     testutil.UniqueEmail("ada"),
	}

	if err := repo.CreateUserWithKey(ctx, user, key, time.Now().UTC()); err != nil {
		t.Fatalf("CreateUserWithKey failed: %v", err)
	}
	if user.ID == 0 || user.APIKeyID == 0 {
		t.Fatalf("expected populated ids, got user=%d apikey=%d", user.ID, user.APIKeyID)
	}

	// The user's key reference must resolve to the stored key string.
	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	keys, err := repo.ListAPIKeys(ctx)
	if err != nil {
		t.Fatalf("ListAPIKeys failed: %v", err)
	}

	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	var resolved string
	for _, k := range keys {
		if k.ID == users[0].APIKeyID {
			resolved = k.Key
		}
	}
	if resolved != key {
		t.Errorf("apikey_id should resolve to %q, got %q", key, resolved)
	}
}

func TestIntegrationCreateUserWithKey_RollbackOnFailure(t *testing.T) {
	ctx, repo := newTestEnv(t)

	const key = "sk-sm-v1-0000000000000000000000000000000B"
	first := &model.User{FirstName: "Ada", LastName: "Lovelace", Email: testutil.UniqueEmail("ada")}
	if err := repo.CreateUserWithKey(ctx, first, key, time.Now().UTC()); err != nil {
		t.Fatalf("CreateUserWithKey failed: %v", err)
	}

	// Reusing the key violates its unique constraint inside the transaction;
	// neither row of the second pair may survive.
	second := &model.User{FirstName: "Grace", LastName: "Hopper", Email: testutil.UniqueEmail("grace")}
	if err := repo.CreateUserWithKey(ctx, second, key, time.Now().UTC()); err == nil {
		t.Fatal("expected failure on duplicate key")
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	keys, err := repo.ListAPIKeys(ctx)
	if err != nil {
		t.Fatalf("ListAPIKeys failed: %v", err)
	}

	if len(users) != 1 || len(keys) != 1 {
		t.Errorf("failed registration must leave no rows: users=%d keys=%d", len(users), len(keys))
	}
}

func TestIntegrationGetUserAPIKeyID(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := &model.User{FirstName: "Ada", LastName: "Lovelace", Email: testutil.UniqueEmail("ada")}
	if err := repo.CreateUserWithKey(ctx, user, "sk-sm-v1-0000000000000000000000000000000C", time.Now().UTC()); err != nil {
		t.Fatalf("CreateUserWithKey failed: %v", err)
	}

	apiKeyID, err := repo.GetUserAPIKeyID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserAPIKeyID failed: %v", err)
	}
	if apiKeyID != user.APIKeyID {
		t.Errorf("apiKeyID = %d, want %d", apiKeyID, user.APIKeyID)
	}
}

func TestIntegrationGetUserAPIKeyID_NotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	if _, err := repo.GetUserAPIKeyID(ctx, 424242); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationDeleteUserWithKey(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := &model.User{FirstName: "Ada", LastName: "Lovelace", Email: testutil.UniqueEmail("ada")}
	if err := repo.CreateUserWithKey(ctx, user, "sk-sm-v1-0000000000000000000000000000000D", time.Now().UTC()); err != nil {
		t.Fatalf("CreateUserWithKey failed: %v", err)
	}

	if err := repo.DeleteUserWithKey(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUserWithKey failed: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	keys, err := repo.ListAPIKeys(ctx)
	if err != nil {
		t.Fatalf("ListAPIKeys failed: %v", err)
	}

	if len(users) != 0 || len(keys) != 0 {
		t.Errorf("deletion must remove both rows: users=%d keys=%d", len(users), len(keys))
	}

	// Second removal observes the row as gone.
	if err := repo.DeleteUserWithKey(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationDeleteAPIKey_Nonexistent(t *testing.T) {
	ctx, repo := newTestEnv(t)

	if err := repo.DeleteAPIKey(ctx, 999999); err != nil {
		t.Errorf("deleting a nonexistent key should not fail, got: %v", err)
	}
}

func TestIntegrationAdmin(t *testing.T) {
	ctx, repo := newTestEnv(t)

	admin := &model.Admin{Email: "a@x.com", PasswordHash: "digest-1"}
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if admin.ID == 0 {
		t.Error("expected a store-assigned admin id")
	}

	dup := &model.Admin{Email: "a@x.com", PasswordHash: "digest-2"}
	if err := repo.CreateAdmin(ctx, dup); !errors.Is(err, ErrAdminEmailExists) {
		t.Errorf("expected ErrAdminEmailExists, got: %v", err)
	}

	got, err := repo.GetAdminByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail failed: %v", err)
	}
	if got.PasswordHash != "digest-1" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "digest-1")
	}

	if _, err := repo.GetAdminByEmail(ctx, "nobody@x.com"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("expected ErrAdminNotFound, got: %v", err)
	}
}

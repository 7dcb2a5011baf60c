package sqlite

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/user"
)

func TestUserCreateAndGetByUsername(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := &user.User{Username: "admin", Password: "$2a$10$hash"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != u.ID || got.Password != u.Password {
		t.Fatalf("unexpected user: %+v", got)
	}

	_, err = repo.GetByUsername(ctx, "nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	if err := repo.Create(ctx, &user.User{Username: "admin", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(ctx, &user.User{Username: "admin", Password: "y"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestUserUpdateDelete(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := &user.User{Username: "admin", Password: "old"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatal(err)
	}

	u.Password = "new"
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(ctx, u.ID)
	if got.Password != "new" {
		t.Fatalf("password not updated: %+v", got)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, u.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

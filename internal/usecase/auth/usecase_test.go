package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	sqliterepo "feffi-backend/internal/adapter/repository/sqlite"
	domain "feffi-backend/internal/domain/user"
)

func newTestUsecase(t *testing.T) (*Usecase, domain.Repository) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	repo := sqliterepo.NewUserRepository(gdb)
	return NewUsecase(repo), repo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, repo := newTestUsecase(t)
	ctx := context.Background()

	dto, err := uc.Register(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if dto.ID == 0 || dto.Username != "admin" {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	// the stored password is a hash, never the clear text
	stored, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	got, err := uc.Login(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Username != "admin" {
		t.Fatalf("unexpected login dto: %+v", got)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, "admin", "a"); err != nil {
		t.Fatal(err)
	}
	_, err := uc.Register(ctx, "admin", "b")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLogin_Failures(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, "admin", "s3cret"); err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Login(ctx, "nobody", "s3cret"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Login(ctx, "admin", "wrong"); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Fatalf("wrong password: expected ErrInvalidPassword, got %v", err)
	}
}

func TestUpdateUser_BlankPasswordKeepsHash(t *testing.T) {
	uc, repo := newTestUsecase(t)
	ctx := context.Background()

	dto, err := uc.Register(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	before, _ := repo.GetByID(ctx, dto.ID)

	if err := uc.UpdateUser(ctx, dto.ID, "root", ""); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	after, _ := repo.GetByID(ctx, dto.ID)
	if after.Username != "root" {
		t.Fatalf("username not updated: %+v", after)
	}
	if after.Password != before.Password {
		t.Fatalf("blank password must keep the stored hash")
	}

	// the old credential still works under the new username
	if _, err := uc.Login(ctx, "root", "s3cret"); err != nil {
		t.Fatalf("Login after rename: %v", err)
	}
}

func TestUpdateUser_NewPasswordRehashes(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	dto, err := uc.Register(ctx, "admin", "old")
	if err != nil {
		t.Fatal(err)
	}
	if err := uc.UpdateUser(ctx, dto.ID, "admin", "new"); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	if _, err := uc.Login(ctx, "admin", "old"); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := uc.Login(ctx, "admin", "new"); err != nil {
		t.Fatalf("new password: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	uc, _ := newTestUsecase(t)

	err := uc.UpdateUser(context.Background(), 12345, "ghost", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadUsers_NeverExposesHash(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		if _, err := uc.Register(ctx, name, "pw"); err != nil {
			t.Fatal(err)
		}
	}

	users, err := uc.ReadUsers(ctx)
	if err != nil {
		t.Fatalf("ReadUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("unexpected users: %+v", users)
	}
	for _, u := range users {
		if u.Username == "" || u.ID == 0 {
			t.Fatalf("incomplete dto: %+v", u)
		}
	}
}

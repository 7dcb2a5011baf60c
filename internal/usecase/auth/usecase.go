package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "feffi-backend/internal/domain/user"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// UserDTO is what leaves the backend: never the stored hash.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

func toDTO(u *domain.User) *UserDTO { return &UserDTO{ID: u.ID, Username: u.Username} }

// Register stores a salted bcrypt hash of the password. Duplicate usernames
// are rejected by the unique index.
func (u *Usecase) Register(ctx context.Context, username, password string) (*UserDTO, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalid)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &domain.User{Username: username, Password: string(hash)}
	if err := u.repo.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, err
	}
	return toDTO(usr), nil
}

// Login distinguishes "user not found" from "invalid password", matching
// the original messages. bcrypt's compare is constant-effort.
func (u *Usecase) Login(ctx context.Context, username, password string) (*UserDTO, error) {
	usr, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	return toDTO(usr), nil
}

func (u *Usecase) ReadUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, nil
}

// UpdateUser replaces the username and, when a new password is supplied,
// the hash. A blank password keeps the stored one.
func (u *Usecase) UpdateUser(ctx context.Context, userID uint64, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalid)
	}
	cur, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	cur.Username = username
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		cur.Password = string(hash)
	}
	if err := u.repo.Update(ctx, cur); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (u *Usecase) DeleteUser(ctx context.Context, userID uint64) error {
	return u.repo.Delete(ctx, userID)
}

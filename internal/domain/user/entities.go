package user

import "errors"

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalid           = errors.New("invalid input")
)

// User is the only entity with a database-assigned numeric id. Password
// holds the bcrypt hash, never the plaintext.
type User struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;not null;uniqueIndex:ux_users_username" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string { return "users" }

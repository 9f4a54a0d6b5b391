package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

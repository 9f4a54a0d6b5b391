package user

type User struct {
	ID           int
	Username     string
	PasswordHash string
	Email        *string
	IsAdmin      bool
}

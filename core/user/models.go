package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// Common roles. Roles are not interpreted by the server: any non-empty string is accepted
// and only compared for equality at login.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to sign up a new User.
// Fields are stored verbatim: " s1" and "s1" are different IDs.
type NewUser struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"pass" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	return validate.Struct(nu)
}

// Credentials are matched exactly against a signed up User.
type Credentials struct {
	ID       string `json:"id"`
	Password string `json:"pass"`
	Role     string `json:"role"`
}

package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/kitivo/core"
)

// Roles
const (
	RoleStudent        = "student"
	RoleClassPresident = "president"
	RoleAdmin          = "admin"
)

// Account statuses
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusBanned    = "banned"
)

var AllRoles = []string{RoleStudent, RoleClassPresident, RoleAdmin}

type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	OtherName    string    `json:"other_name"`
	Surname      string    `json:"surname"`
	FullName     string    `json:"full_name"` // derived; see SetName
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	MatricNumber string    `json:"matric_number"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Picture      string    `json:"picture,omitempty"` // base64
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

// SetName updates the name parts and recomputes FullName.
// FullName must never be written directly.
func (u *User) SetName(first, other, surname string) {
	u.FirstName = core.CleanString(first)
	u.OtherName = core.CleanString(other)
	u.Surname = core.CleanString(surname)
	u.FullName = core.ComposeName(u.FirstName, u.OtherName, u.Surname)
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

func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsPresident() bool { return u.Role == RoleClassPresident }
func (u *User) IsActive() bool    { return u.Status == StatusActive }

// NewUser contains information needed to sign a new User up.
type NewUser struct {
	FirstName       string `json:"first_name" validate:"required"`
	OtherName       string `json:"other_name"`
	Surname         string `json:"surname" validate:"required"`
	Username        string `json:"username" validate:"required,min=3,alphanum_"`
	Email           string `json:"email" validate:"required,email"`
	MatricNumber    string `json:"matric_number" validate:"required,matricnum"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate() error {
	nu.FirstName = core.CleanString(nu.FirstName)
	nu.OtherName = core.CleanString(nu.OtherName)
	nu.Surname = core.CleanString(nu.Surname)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.MatricNumber = core.CleanString(nu.MatricNumber)
	return core.Validate.Struct(nu)
}

// UpdateProfile defines what information a User may change on their own account.
type UpdateProfile struct {
	FirstName string `json:"first_name"`
	OtherName string `json:"other_name"`
	Surname   string `json:"surname"`
	Picture   string `json:"picture"`
}

type Credentials struct {
	Identifier string `json:"identifier" validate:"required"` // username, email or matric number
	Password   string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Identifier = core.CleanString(c.Identifier, true /* lower */)
	return core.Validate.Struct(c)
}

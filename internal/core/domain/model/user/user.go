package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrIDAlreadyAssigned is returned when persistence tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("user id is already assigned")

	// ErrInvalidCredentials is returned by CheckPassword on a mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	minPasswordLength = 8

	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

// User is an account able to log in.
type User struct {
	id           int64
	username     string
	email        string
	fullName     string
	passwordHash string
	isStaff      bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser validates the account fields and hashes the password.
func NewUser(username, email, fullName, password string, createdAt time.Time) (*User, error) {
	u := &User{
		fullName:      strings.TrimSpace(fullName),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setEmail(email),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user from storage; the hash is trusted as is.
func RestoreUser(
	id int64, username, email, fullName, passwordHash string, isStaff bool, createdAt time.Time,
) (*User, error) {
	u := &User{
		fullName:      fullName,
		passwordHash:  passwordHash,
		isStaff:       isStaff,
		createdAt:     createdAt,
		isConstructed: true,
	}

	var idErr, hashErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password hash")
	}

	if err := errors.Join(idErr, hashErr, u.setUsername(username), u.setEmail(email)); err != nil {
		return nil, err
	}
	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by persistence. It can only be called once.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	u.id = id
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// PromoteToStaff grants back-office access.
func (u *User) PromoteToStaff() {
	u.isStaff = true
}

// CheckPassword compares password with the stored hash.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return errs.NewValueIsInvalidErrorWithCause("username is invalid", errors.New("contains whitespace"))
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", err)
	}
	u.email = addr.Address
	return nil
}

func (u *User) setPassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, maxPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	return nil
}

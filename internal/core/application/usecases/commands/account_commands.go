package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// SignUpCommand creates a customer account. Field rules are enforced by the
// user aggregate.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	fullName string
	password string

	guard guard.ConstructorGuard
}

func NewSignUpCommand(username, email, fullName, password string) SignUpCommand {
	return SignUpCommand{
		username: strings.TrimSpace(username),
		email:    strings.TrimSpace(email),
		fullName: strings.TrimSpace(fullName),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) Username() string {
	return c.username
}

func (c SignUpCommand) Email() string {
	return c.email
}

func (c SignUpCommand) FullName() string {
	return c.fullName
}

func (c SignUpCommand) Password() string {
	return c.password
}

// LoginCommand checks a username and password pair.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password string) (LoginCommand, error) {
	username = strings.TrimSpace(username)

	var errList []error
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string {
	return c.username
}

func (c LoginCommand) Password() string {
	return c.password
}

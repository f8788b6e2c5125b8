package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// ErrUsernameTaken is returned when signing up with a username already in use.
var ErrUsernameTaken = errs.NewValueIsInvalidError("username is already taken")

// SignUpCommandHandler creates customer accounts.
type SignUpCommandHandler struct {
	uowFactory AccountUoWFactory
	now        func() time.Time
}

func NewSignUpCommandHandler(uowFactory AccountUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the id of the new account.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.Username(), cmd.Email(), cmd.FullName(), cmd.Password(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.GetByUsername(ctx, u.Username())
	switch {
	case err == nil:
		return 0, ErrUsernameTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return u.ID(), nil
}

// LoginResult identifies the authenticated account.
type LoginResult struct {
	UserID   int64
	Username string
	IsStaff  bool
}

// LoginCommandHandler verifies credentials. Unknown usernames and wrong
// passwords both yield user.ErrInvalidCredentials.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewLoginCommandHandler(uowFactory AccountUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, user.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = u.CheckPassword(cmd.Password()); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{UserID: u.ID(), Username: u.Username(), IsStaff: u.IsStaff()}, nil
}

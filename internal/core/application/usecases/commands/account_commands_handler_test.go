package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var timeZero = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSignUpCommandHandler_Handle(t *testing.T) {
	t.Run("should create the account", func(t *testing.T) {
		users := new(MockUserRepository)
		uow, factory := accountUoW(users, new(MockSupplierRepository))
		users.On("GetByUsername", mock.Anything, "awa").Return(nil, errs.NewObjectNotFoundError("username", "awa")).Once()
		users.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*user.User).AssignID(4)
		}).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		id, err := commands.NewSignUpCommandHandler(factory).Handle(t.Context(),
			commands.NewSignUpCommand("awa", "awa@example.test", "Awa Diop", "correct horse"))

		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("should refuse a taken username", func(t *testing.T) {
		users := new(MockUserRepository)
		_, factory := accountUoW(users, new(MockSupplierRepository))
		existing, err := user.RestoreUser(1, "awa", "other@example.test", "", "hash", false, timeZero)
		require.NoError(t, err)
		users.On("GetByUsername", mock.Anything, "awa").Return(existing, nil).Once()

		_, err = commands.NewSignUpCommandHandler(factory).Handle(t.Context(),
			commands.NewSignUpCommand("awa", "awa@example.test", "", "correct horse"))

		require.ErrorIs(t, err, commands.ErrUsernameTaken)
	})

	t.Run("should validate before opening a transaction", func(t *testing.T) {
		factory := new(MockAccountUoWFactory)

		_, err := commands.NewSignUpCommandHandler(factory).Handle(t.Context(),
			commands.NewSignUpCommand("awa", "bad", "", "short"))

		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	registered, err := user.NewUser("awa", "awa@example.test", "", "correct horse", timeZero)
	require.NoError(t, err)
	stored, err := user.RestoreUser(4, "awa", "awa@example.test", "", registered.PasswordHash(), true, timeZero)
	require.NoError(t, err)

	t.Run("should accept the right password", func(t *testing.T) {
		users := new(MockUserRepository)
		_, factory := accountUoW(users, new(MockSupplierRepository))
		users.On("GetByUsername", mock.Anything, "awa").Return(stored, nil).Once()

		cmd, err := commands.NewLoginCommand("awa", "correct horse")
		require.NoError(t, err)

		result, err := commands.NewLoginCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.LoginResult{UserID: 4, Username: "awa", IsStaff: true}, result)
	})

	t.Run("should not tell unknown users from wrong passwords", func(t *testing.T) {
		users := new(MockUserRepository)
		_, factory := accountUoW(users, new(MockSupplierRepository))
		users.On("GetByUsername", mock.Anything, "awa").Return(stored, nil).Once()
		users.On("GetByUsername", mock.Anything, "ghost").Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once()

		wrong, err := commands.NewLoginCommand("awa", "wrong horse")
		require.NoError(t, err)
		_, err = commands.NewLoginCommandHandler(factory).Handle(t.Context(), wrong)
		require.ErrorIs(t, err, user.ErrInvalidCredentials)

		ghost, err := commands.NewLoginCommand("ghost", "whatever1")
		require.NoError(t, err)
		_, err = commands.NewLoginCommandHandler(factory).Handle(t.Context(), ghost)
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

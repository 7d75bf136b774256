package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/account"
)

func TestUnbanAccountsCommandHandler_Handle_ReinstatesExpiredSuspensions(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewUnbanAccountsCommand()

	banned := newTestAccount(t, "Max Hauler")
	banned.Suspend(time.Now().UTC().Add(-48 * time.Hour))

	accountRepo := new(MockAccountRepository)
	identity := new(MockIdentityService)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetAllSuspendedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*account.Account{banned}, nil).Once(),
		accountRepo.On("Update", ctx, banned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		identity.On("Activate", ctx, banned.ID()).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnbanAccountsCommandHandler(factory, identity,
		24*time.Hour, testLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, banned.IsSuspended())
	assert.True(t, banned.IsAvailable())
	identity.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestUnbanAccountsCommandHandler_Handle_NothingToDo(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewUnbanAccountsCommand()

	accountRepo := new(MockAccountRepository)
	identity := new(MockIdentityService)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetAllSuspendedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*account.Account{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnbanAccountsCommandHandler(factory, identity,
		24*time.Hour, testLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	identity.AssertNotCalled(t, "Activate", ctx, mock.Anything)
}

func TestUnbanAccountsCommandHandler_Handle_ReactivationFailureIsTolerated(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewUnbanAccountsCommand()

	banned := newTestAccount(t, "Max Hauler")
	banned.Suspend(time.Now().UTC().Add(-48 * time.Hour))

	accountRepo := new(MockAccountRepository)
	identity := new(MockIdentityService)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetAllSuspendedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*account.Account{banned}, nil).Once(),
		accountRepo.On("Update", ctx, banned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		identity.On("Activate", ctx, banned.ID()).
			Return(errors.New("identity service unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnbanAccountsCommandHandler(factory, identity,
		24*time.Hour, testLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, banned.IsSuspended())
}

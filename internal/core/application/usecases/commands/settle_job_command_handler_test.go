package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

func newConfirmedJob(t *testing.T, posterID, moverID kernel.UUID) *job.Job {
	t.Helper()
	j := newAcceptedJob(t, posterID, moverID)
	_, err := j.ConfirmByMover()
	require.NoError(t, err)
	_, err = j.ConfirmByPoster()
	require.NoError(t, err)
	return j
}

func TestSettleJobCommandHandler_Handle_CapturesOpenHold(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	require.NoError(t, mover.AttachPayeeRef("acct_456"))
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		accountRepo.On("Get", ctx, mover.ID()).Return(mover, nil).Once(),
		gateway.On("RetrieveHold", ctx, "hold_123").Return(ports.HoldStateOpen, nil).Once(),
		gateway.On("CaptureHold", ctx, "hold_123", int64(12500), int64(2500), "acct_456").
			Return(ports.Receipt{HoldRef: "hold_123", Amount: 12500, FeeAmount: 2500}, nil).Once(),
		jobRepo.On("Update", ctx, theJob).Return(nil).Once(),
		accountRepo.On("Get", ctx, poster.ID()).Return(poster, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, poster.Phone(), mock.AnythingOfType("string")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, theJob.IsCompleted())
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSettleJobCommandHandler_Handle_AlreadyCapturedHoldIsNotChargedTwice(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	require.NoError(t, mover.AttachPayeeRef("acct_456"))
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		accountRepo.On("Get", ctx, mover.ID()).Return(mover, nil).Once(),
		gateway.On("RetrieveHold", ctx, "hold_123").Return(ports.HoldStateCaptured, nil).Once(),
		jobRepo.On("Update", ctx, theJob).Return(nil).Once(),
		accountRepo.On("Get", ctx, poster.ID()).Return(poster, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, poster.Phone(), mock.AnythingOfType("string")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, theJob.IsCompleted())
	gateway.AssertNotCalled(t, "CaptureHold",
		ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleJobCommandHandler_Handle_AlreadySettledIsNoOp(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())
	require.NoError(t, theJob.MarkSettled())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertNotCalled(t, "RetrieveHold", ctx, mock.Anything)
}

func TestSettleJobCommandHandler_Handle_NotBothConfirmed(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	theJob := newAcceptedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, new(MockLedgerGateway), new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestSettleJobCommandHandler_Handle_MissingHold(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	theJob := newOpenJob(t, poster.ID())
	require.NoError(t, theJob.Assign(mover.ID(), theJob.CreatedAt()))
	_, err := theJob.ConfirmByMover()
	require.NoError(t, err)
	_, err = theJob.ConfirmByPoster()
	require.NoError(t, err)

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, new(MockLedgerGateway), new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSettlementFailed)
	assert.False(t, theJob.IsCompleted())
}

func TestSettleJobCommandHandler_Handle_VoidedHold(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	require.NoError(t, mover.AttachPayeeRef("acct_456"))
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		accountRepo.On("Get", ctx, mover.ID()).Return(mover, nil).Once(),
		gateway.On("RetrieveHold", ctx, "hold_123").Return(ports.HoldStateVoided, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSettlementFailed)
	assert.False(t, theJob.IsCompleted())
}

func TestSettleJobCommandHandler_Handle_CaptureFailure(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler")
	require.NoError(t, mover.AttachPayeeRef("acct_456"))
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		accountRepo.On("Get", ctx, mover.ID()).Return(mover, nil).Once(),
		gateway.On("RetrieveHold", ctx, "hold_123").Return(ports.HoldStateOpen, nil).Once(),
		gateway.On("CaptureHold", ctx, "hold_123", int64(12500), int64(2500), "acct_456").
			Return(ports.Receipt{}, errors.New("capture rejected")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSettlementFailed)
	assert.False(t, theJob.IsCompleted())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSettleJobCommandHandler_Handle_MoverWithoutPayoutProfile(t *testing.T) {
	ctx := context.Background()
	poster := newTestAccount(t, "Sam Porter")
	mover := newTestAccount(t, "Max Hauler") // no payee ref
	theJob := newConfirmedJob(t, poster.ID(), mover.ID())

	cmd, err := commands.NewSettleJobCommand(theJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	accountRepo := new(MockAccountRepository)
	gateway := new(MockLedgerGateway)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		accountRepo.On("Get", ctx, mover.ID()).Return(mover, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSettleHandlerForTest(t, factory, gateway, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSettlementFailed)
	gateway.AssertNotCalled(t, "RetrieveHold", ctx, mock.Anything)
}

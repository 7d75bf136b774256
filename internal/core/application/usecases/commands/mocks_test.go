package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/account"
	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"
	"haul/internal/core/ports"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllAwaitingSettlement(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAllSuspendedBefore(ctx context.Context, cutoff time.Time) ([]*account.Account, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

type MockStrikeRepository struct{ mock.Mock }

func (m *MockStrikeRepository) Add(ctx context.Context, s *strike.Strike) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStrikeRepository) CountAgainst(ctx context.Context, userID kernel.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockStrikeRepository) GetAllAgainst(ctx context.Context, userID kernel.UUID) ([]*strike.Strike, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*strike.Strike), args.Error(1)
}

type MockLedgerGateway struct{ mock.Mock }

func (m *MockLedgerGateway) OpenHold(ctx context.Context, payerRef string, amount int64, description string) (string, error) {
	args := m.Called(ctx, payerRef, amount, description)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerGateway) CaptureHold(ctx context.Context, holdRef string, amount int64, feeAmount int64, payeeRef string) (ports.Receipt, error) {
	args := m.Called(ctx, holdRef, amount, feeAmount, payeeRef)
	return args.Get(0).(ports.Receipt), args.Error(1)
}

func (m *MockLedgerGateway) RetrieveHold(ctx context.Context, holdRef string) (ports.HoldState, error) {
	args := m.Called(ctx, holdRef)
	return args.Get(0).(ports.HoldState), args.Error(1)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, phone string, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

type MockIdentityService struct{ mock.Mock }

func (m *MockIdentityService) Deactivate(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockIdentityService) Activate(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) StrikeRepository() ports.StrikeRepository {
	args := m.Called()
	return args.Get(0).(ports.StrikeRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockJobAccountUoWFactory struct{ mock.Mock }

func (m *MockJobAccountUoWFactory) Create() commands.JobAccountUoW {
	args := m.Called()
	return args.Get(0).(commands.JobAccountUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

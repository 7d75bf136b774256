package cmd

import (
	"fmt"
	"log/slog"

	"haul/internal/adapters/out/google"
	"haul/internal/adapters/out/identity"
	"haul/internal/adapters/out/postgres"
	"haul/internal/adapters/out/stripe"
	"haul/internal/adapters/out/twilio"
	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/services"
	"haul/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	gateway  ports.LedgerGateway
	geocoder ports.Geocoder
	notifier ports.Notifier
	identity ports.IdentityService

	calculator services.SettlementCalculator
	policy     services.StrikePolicy
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := stripe.NewGateway(configs.StripeSecretKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("ledger gateway: %w", err)
	}

	geocoder, err := google.NewGeocoder(configs.GeocoderAPIKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("geocoder: %w", err)
	}

	notifier, err := twilio.NewNotifier(configs.TwilioAccountSID, configs.TwilioAuthToken, configs.TwilioFromPhone)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("notifier: %w", err)
	}

	identityClient, err := identity.NewClient(configs.IdentityURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("identity service: %w", err)
	}

	calculator, err := services.NewSettlementCalculator(configs.PlatformFeePercent)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("settlement calculator: %w", err)
	}

	policy, err := services.NewStrikePolicy(configs.StrikeBanThreshold)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("strike policy: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		gateway:    gateway,
		geocoder:   geocoder,
		notifier:   notifier,
		identity:   identityClient,
		calculator: calculator,
		policy:     policy,
	}, nil
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachPaymentProfileCommandHandler() commands.AttachPaymentProfileCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachPaymentProfileCommandHandler(f)
}

func (c *CompositionRoot) CreatePostJobCommandHandler() commands.PostJobCommandHandler {
	return commands.NewPostJobCommandHandler(c.jobAccountUoWFactory(), c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobAccountUoWFactory(), c.gateway, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSettleJobCommandHandler() commands.SettleJobCommandHandler {
	return commands.NewSettleJobCommandHandler(c.jobAccountUoWFactory(), c.gateway, c.calculator, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmCompletionCommandHandler() commands.ConfirmCompletionCommandHandler {
	return commands.NewConfirmCompletionCommandHandler(
		c.jobAccountUoWFactory(),
		c.CreateSettleJobCommandHandler(),
		c.configs.MinConfirmAge,
	)
}

func (c *CompositionRoot) CreateSettlePendingJobsCommandHandler() commands.SettlePendingJobsCommandHandler {
	return commands.NewSettlePendingJobsCommandHandler(
		c.jobAccountUoWFactory(),
		c.CreateSettleJobCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateReportConflictCommandHandler() commands.ReportConflictCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportConflictCommandHandler(f, c.policy, c.identity, c.configs.MinConfirmAge, c.logger)
}

func (c *CompositionRoot) CreateUnbanAccountsCommandHandler() commands.UnbanAccountsCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnbanAccountsCommandHandler(f, c.identity, c.configs.BanDuration, c.logger)
}

func (c *CompositionRoot) CreateGetOpenJobsQueryHandler() queries.GetOpenJobsQueryHandler {
	return queries.NewGetOpenJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB, c.configs.MinConfirmAge)
}

func (c *CompositionRoot) jobAccountUoWFactory() commands.JobAccountUoWFactory {
	return FuncJobAccountUoWFactory(func() commands.JobAccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncJobAccountUoWFactory func() commands.JobAccountUoW

func (f FuncJobAccountUoWFactory) Create() commands.JobAccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

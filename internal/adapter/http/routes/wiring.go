package routes

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/document/excel"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/document/pdf"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/persistence/memory"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/persistence/repository"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/persistence/sqlstore"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/infrastructure/database"
	"github.com/marsnewbie/kiwipure-cleaning/internal/infrastructure/notify"
	"github.com/marsnewbie/kiwipure-cleaning/internal/infrastructure/payments"
	"github.com/marsnewbie/kiwipure-cleaning/internal/infrastructure/phone"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

// Repositories is the storage chosen by STORAGE_DRIVER.
type Repositories struct {
	Quotes   interfaces.IQuoteRepository
	Contacts interfaces.IContactRepository
	Deposits interfaces.IDepositRepository
	close    func() error
}

// App holds everything a server or CLI needs from one configuration.
type App struct {
	Registry *pricing.Registry
	Repos    Repositories
	Quotes   *usecase.QuoteUseCase
	Contacts *usecase.ContactUseCase
	Handlers Handlers
}

func (a *App) Close() error {
	if a.Repos.close == nil {
		return nil
	}
	return a.Repos.close()
}

// Build loads pricing, opens storage and wires the use cases and handlers.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	pricingCfg, err := config.LoadPricing(cfg.Pricing.File)
	if err != nil {
		return nil, err
	}
	registry, err := pricing.NewRegistry(pricingCfg, entities.PricingVariant(cfg.Pricing.Variant))
	if err != nil {
		return nil, err
	}

	repos, err := OpenRepositories(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	var notifier interfaces.INotifier = notify.NewLogNotifier(log)
	if cfg.SMTPEnabled() {
		notifier = notify.NewSMTPNotifier(cfg.Notify)
	}
	phones := phone.NewNormalizer(cfg.PhoneRegion)

	quoteUC := usecase.NewQuoteUseCase(repos.Quotes, registry, notifier, log,
		usecase.WithQuoteDocuments(pdf.NewGenerator(), excel.NewGenerator()),
		usecase.WithQuotePhoneNormalizer(phones),
	)
	contactUC := usecase.NewContactUseCase(repos.Contacts, notifier, phones, log)
	estimateUC := usecase.NewEstimateUseCase(registry)

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.MockMode, log)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured, deposits disabled")
	} else {
		gateway = mp
	}
	depositUC := usecase.NewDepositUseCase(repos.Deposits, repos.Quotes, gateway, usecase.DepositSettings{
		Percent:        cfg.Payments.DepositPercent,
		MockMode:       cfg.Payments.MockMode,
		TestPayerEmail: cfg.Payments.TestPayerEmail,
	}, log)

	return &App{
		Registry: registry,
		Repos:    repos,
		Quotes:   quoteUC,
		Contacts: contactUC,
		Handlers: Handlers{
			Estimate: handlers.NewEstimateHandler(estimateUC),
			Quote:    handlers.NewQuoteHandler(quoteUC),
			Contact:  handlers.NewContactHandler(contactUC),
			Deposit:  handlers.NewDepositHandler(depositUC, cfg.Payments.MockMode),
		},
	}, nil
}

func OpenRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return Repositories{
			Quotes:   memory.NewQuoteRepository(),
			Contacts: memory.NewContactRepository(),
			Deposits: memory.NewDepositRepository(),
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		return Repositories{
			Quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.Dynamo.QuotesTable),
			Contacts: repository.NewContactDynamoRepository(ddb, cfg.Dynamo.ContactsTable),
			Deposits: repository.NewDepositDynamoRepository(ddb, cfg.Dynamo.DepositsTable),
		}, nil

	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenSQL(cfg.Storage, log)
		if err != nil {
			return Repositories{}, fmt.Errorf("open %s: %w", cfg.Storage.Driver, err)
		}
		if err := sqlstore.Migrate(db); err != nil {
			return Repositories{}, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Quotes:   sqlstore.NewQuoteRepository(db),
			Contacts: sqlstore.NewContactRepository(db),
			Deposits: sqlstore.NewDepositRepository(db),
			close:    sqlDB.Close,
		}, nil
	}
	return Repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

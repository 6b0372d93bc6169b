package main

import (
	"context"
	"log/slog"
	"os"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/api"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/lifecycle"
	"crm/internal/domain/service"
	"crm/internal/domain/validation"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/sqldb"
	"crm/internal/infra/qrcode"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Seeder usecase.SeedUsecase
}

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			seedDemoData,
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqldb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqldb.NewCustomerRepository,
			sqldb.NewAddressRepository,
			sqldb.NewHealthRepository,
			sqldb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			validation.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewAddressService,
			impl.NewHealthService,
			impl.NewSeedService,
			impl.NewContactCardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewAddressHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoData loads the demo customers once the store is migrated. It is a no-op unless seed.enabled is set.
func seedDemoData(params seedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			inserted, err := params.Seeder.Seed(ctx)
			if err != nil {
				return err
			}
			params.Logger.Info("Seeded demo customers", slog.Int("inserted", inserted))

			return nil
		},
	})
}

// startServer launches every delivery once the store is migrated and seeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

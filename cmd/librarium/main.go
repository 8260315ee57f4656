package main

import (
	"context"
	"log/slog"
	"os"

	"librarium/config"
	"librarium/internal/delivery"
	"librarium/internal/delivery/http"
	"librarium/internal/delivery/http/middleware"
	"librarium/internal/delivery/http/router/handler"
	"librarium/internal/domain/service"
	"librarium/internal/infra/auth"
	logs "librarium/internal/infra/log"
	"librarium/internal/infra/persistence/postgres"
	"librarium/internal/infra/receipt"
	"librarium/internal/usecase"
	"librarium/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warmIndexes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewItemRepository,
			postgres.NewUserRepository,
			postgres.NewRentalRepository,
			postgres.NewAuthorRepository,
			postgres.NewClassificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newReceiptService,
		),
	)
}

// newReceiptService creates a receipt renderer with dependency injection
func newReceiptService(cfg *config.Config) service.ReceiptRenderer {
	if cfg.Receipt == nil {
		// Use default values if not configured
		return receipt.NewReceiptService("Library", 256, "M")
	}

	return receipt.NewReceiptService(cfg.Receipt.LibraryName, cfg.Receipt.QRSize, cfg.Receipt.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewMemberService,
			impl.NewRentalService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewItemHandler,
			handler.NewUserHandler,
			handler.NewRentalHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmIndexes rebuilds the in-memory availability and uniqueness indexes from
// the store before the server starts accepting traffic.
func warmIndexes(ctx context.Context, catalog usecase.CatalogUsecase, members usecase.MemberUsecase, logger *slog.Logger) error {
	if err := catalog.Reset(ctx); err != nil {
		return err
	}
	if err := members.Reset(ctx); err != nil {
		return err
	}

	logger.Info("In-memory indexes warmed")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

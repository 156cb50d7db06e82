package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/middleware"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/router/handler"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/service"
	logs "github.com/azez-alhoot/fannifix-hub/internal/infra/log"
	"github.com/azez-alhoot/fannifix-hub/internal/infra/persistence/jsonstore"
	"github.com/azez-alhoot/fannifix-hub/internal/infra/qrcode"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		jsonstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonstore.NewCountryRepository,
			jsonstore.NewServiceRepository,
			jsonstore.NewAreaRepository,
			jsonstore.NewTechnicianRepository,
			jsonstore.NewListingRepository,
			jsonstore.NewSeoRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newContactQRService,
		),
	)
}

// newContactQRService creates the WhatsApp QR service with configured size
// and error correction level.
func newContactQRService(cfg *config.Config) service.ContactQRService {
	if cfg.QRCode == nil {
		return qrcode.NewContactQRService(256, "M")
	}

	return qrcode.NewContactQRService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSearchService,
			impl.NewListingService,
			impl.NewSeoService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewTechnicianHandler,
			handler.NewListingHandler,
			handler.NewSeoHandler,
			handler.NewSitemapHandler,
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

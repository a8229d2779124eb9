//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/delivery/http"

	orderHandler "github.com/savioruz/kopi/internal/domains/orders/handler"
	orderService "github.com/savioruz/kopi/internal/domains/orders/service"

	paymentHandler "github.com/savioruz/kopi/internal/domains/payments/handler"
	paymentService "github.com/savioruz/kopi/internal/domains/payments/service"
)

var orderDomain = wire.NewSet(
	provideOrderQuerier,
	orderService.New,
	orderHandler.New,
)

var paymentDomain = wire.NewSet(
	providePaymentQuerier,
	provideGateway,
	provideFiuuClient,
	provideDeduper,
	paymentService.New,
	paymentHandler.New,
)

var domains = wire.NewSet(
	orderDomain,
	paymentDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

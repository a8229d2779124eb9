package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/delivery/http"
	orderRepository "github.com/savioruz/kopi/internal/domains/orders/repository"
	paymentRepository "github.com/savioruz/kopi/internal/domains/payments/repository"
	paymentService "github.com/savioruz/kopi/internal/domains/payments/service"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/fiuu"
	"github.com/savioruz/kopi/pkg/httpserver"
	"github.com/savioruz/kopi/pkg/logger"
	"github.com/savioruz/kopi/pkg/postgres"
	"github.com/savioruz/kopi/pkg/redis"
)

const fiuuRetryWait = 500 * time.Millisecond

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Gateway    *fiuu.Gateway
	Payments   paymentService.PaymentService
}

func provideOrderQuerier() orderRepository.Querier {
	return orderRepository.New()
}

func providePaymentQuerier() paymentRepository.Querier {
	return paymentRepository.New()
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func providePostgres(cfg *config.Config) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode)

	return postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideDeduper(r *redis.Redis, cfg *config.Config) redis.Deduper {
	return redis.NewDeduper(r.Client, constant.CacheParentKey, cfg.Fiuu.DedupTTL)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideGateway(cfg *config.Config) *fiuu.Gateway {
	return fiuu.New(fiuu.Config{
		MerchantID:  cfg.Fiuu.MerchantID,
		VerifyKey:   cfg.Fiuu.VerifyKey,
		SecretKey:   cfg.Fiuu.SecretKey,
		SandboxMode: cfg.Fiuu.SandboxMode,
		Channel:     cfg.Fiuu.Channel,
		DemoPrefix:  cfg.Fiuu.DemoPrefix,
	})
}

func provideFiuuClient(g *fiuu.Gateway, cfg *config.Config) fiuu.Client {
	return fiuu.NewClient(g,
		fiuu.WithTimeout(cfg.Fiuu.HTTPTimeout),
		fiuu.WithRetry(cfg.Fiuu.RetryCount, fiuuRetryWait),
	)
}

func provideRouter(cfg *config.Config, l logger.Interface, h http.Handlers) *fiber.App {
	app := fiber.New(httpserver.New(httpserver.ProxyHeader(fiber.HeaderXForwardedFor)).FiberConfig())

	http.NewRouter(app, cfg, l, h)

	return app
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App      App
		CORS     CORS
		Cache    Cache
		HTTP     HTTP
		Log      Log
		Pg       Pg
		Redis    Redis
		Swagger  Swagger
		Metrics  Metrics
		Schedule Schedule
		Site     Site
		Admin    Admin
		Fiuu     Fiuu
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kuala_Lumpur"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration int `env:"CACHE_DURATIONS" envDefault:"60"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT,required"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Pg struct {
		PoolMax  int    `env:"PG_POOL_MAX,required"`
		Host     string `env:"PG_HOST,required"`
		Port     int    `env:"PG_PORT,required"`
		User     string `env:"PG_USER"`
		Password string `env:"PG_PASSWORD"`
		Dbname   string `env:"PG_DATABASE,required"`
		SSLMode  string `env:"PG_SSLMODE,required"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Metrics struct {
		Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
		Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
	}

	Schedule struct {
		PaymentRequery string `env:"SCHEDULE_PAYMENT_REQUERY" envDefault:"0 */5 * * * *"`
	}

	// Site is the public storefront. Gateway return/notify/callback URLs are derived from it.
	Site struct {
		AppURL string `env:"APP_URL,required,notEmpty"`
	}

	Admin struct {
		Token string `env:"ADMIN_API_TOKEN"`
	}

	Fiuu struct {
		MerchantID   string        `env:"FIUU_MERCHANT_ID"`
		VerifyKey    string        `env:"FIUU_VERIFY_KEY"`
		SecretKey    string        `env:"FIUU_SECRET_KEY"`
		SandboxMode  bool          `env:"FIUU_SANDBOX_MODE" envDefault:"false"`
		Channel      string        `env:"FIUU_CHANNEL" envDefault:"indexAN.php"`
		DemoPrefix   string        `env:"FIUU_DEMO_PREFIX" envDefault:"DEMO"`
		DedupTTL     time.Duration `env:"FIUU_DEDUP_TTL" envDefault:"24h"`
		RequeryAfter time.Duration `env:"FIUU_REQUERY_AFTER" envDefault:"15m"`
		RequeryBatch int           `env:"FIUU_REQUERY_BATCH" envDefault:"20"`
		HTTPTimeout  time.Duration `env:"FIUU_HTTP_TIMEOUT" envDefault:"15s"`
		RetryCount   int           `env:"FIUU_HTTP_RETRY_COUNT" envDefault:"2"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port), security settings
// - default: Values common across all environments (timezone, prices, timeouts)
// - optional: Backing services (REDIS_ADDR, DB_DSN); an empty value disables them
// -----------------------------------------------------------------------------

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultSender = "noreply@haciendarincongrande.com"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Mail      MailConfig
	Pricing   PricingConfig
	Redis     RedisConfig
	DB        DBConfig
	RateLimit RateLimitConfig
	Business  BusinessConfig
}

type AppConfig struct {
	Env string `envconfig:"APP_ENV" default:"development"`
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	// receipts arrive inline as data URLs, so requests can be slow to read
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	MaxBodyBytes    int64         `envconfig:"SERVER_MAX_BODY_BYTES" default:"15728640"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Caracas"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

type MailConfig struct {
	Host               string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port               int           `envconfig:"SMTP_PORT" default:"587"`
	Username           string        `envconfig:"SMTP_USER"`
	Password           string        `envconfig:"SMTP_PASS"`
	From               string        `envconfig:"SMTP_FROM"`
	FromName           string        `envconfig:"SMTP_FROM_NAME" default:"Hacienda Rincón Grande"`
	BusinessEmail      string        `envconfig:"BUSINESS_EMAIL" default:"reservas@haciendarincongrande.com"`
	Timeout            time.Duration `envconfig:"MAIL_TIMEOUT" default:"15s"`
	InsecureSkipVerify bool          `envconfig:"SMTP_INSECURE_SKIP_VERIFY" default:"false"`
}

// Sender is the envelope address: SMTP_FROM, then SMTP_USER, then the house default.
func (c MailConfig) Sender() string {
	switch {
	case c.From != "":
		return c.From
	case c.Username != "":
		return c.Username
	default:
		return defaultSender
	}
}

func (c MailConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type PricingConfig struct {
	EntryPriceUSD   float64       `envconfig:"ENTRY_PRICE_USD" default:"5"`
	TaxRate         float64       `envconfig:"TAX_RATE" default:"0.16"`
	FallbackRate    float64       `envconfig:"BCV_FALLBACK_RATE" default:"122.17"`
	RefreshInterval time.Duration `envconfig:"BCV_REFRESH_INTERVAL" default:"30m"`
	Jitter          float64       `envconfig:"BCV_JITTER" default:"0"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"rincon"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type DBConfig struct {
	DSN             string        `envconfig:"DB_DSN"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

func (c DBConfig) Enabled() bool {
	return c.DSN != ""
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
}

type BusinessConfig struct {
	WhatsAppNumber string `envconfig:"BUSINESS_WHATSAPP" default:"584122328332"`
	ContactEmail   string `envconfig:"BUSINESS_CONTACT_EMAIL" default:"info@haciendarincongrande.com"`
	ContactPhone   string `envconfig:"BUSINESS_CONTACT_PHONE" default:"+58 243 123 4567"`
	TimeZone       string `envconfig:"BUSINESS_TIMEZONE" default:"America/Caracas"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Env: EnvDevelopment,
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Caracas",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		Mail: MailConfig{
			Host:          "localhost",
			Port:          2525,
			BusinessEmail: "reservas@haciendarincongrande.com",
			FromName:      "Hacienda Rincón Grande",
			Timeout:       2 * time.Second,
		},
		Pricing: PricingConfig{
			EntryPriceUSD:   5,
			TaxRate:         0.16,
			FallbackRate:    122.17,
			RefreshInterval: 30 * time.Minute,
		},
		Redis: RedisConfig{
			KeyPrefix: "rincon-test",
		},
		RateLimit: RateLimitConfig{
			Enabled:        false,
			Capacity:       10,
			RefillInterval: 6 * time.Second,
		},
		Business: BusinessConfig{
			WhatsAppNumber: "584122328332",
			ContactEmail:   "info@haciendarincongrande.com",
			ContactPhone:   "+58 243 123 4567",
			TimeZone:       "America/Caracas",
		},
	}
}

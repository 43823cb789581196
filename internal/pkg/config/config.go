package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, provider
//   credentials, role ids), security settings
// - default: Values common across all environments (intervals, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Discord   DiscordConfig
	Bridge    BridgeConfig
	PayPal    PayPalConfig
	Stripe    StripeConfig
	Mail      MailConfig
	Promotion PromotionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// DiscordConfig describes the managed role surface. ResourceRoles maps a
// marketplace resource id onto the Discord role granted for owning it; roles
// outside PremiumRoleID and this mapping are never touched by reconciliation.
type DiscordConfig struct {
	PremiumRoleID int64           `envconfig:"DISCORD_PREMIUM_ROLE_ID" required:"true"`
	ResourceRoles map[int64]int64 `envconfig:"DISCORD_RESOURCE_ROLES"`
}

// BridgeConfig points at the companion bot process that fronts the Discord
// gateway. Role mutations and user notifications go through its REST surface.
type BridgeConfig struct {
	BaseURL string        `envconfig:"BRIDGE_BASE_URL"`
	Token   string        `envconfig:"BRIDGE_TOKEN"`
	Timeout time.Duration `envconfig:"BRIDGE_TIMEOUT" default:"10s"`
}

type PayPalConfig struct {
	ClientID  string    `envconfig:"PAYPAL_CLIENT_ID"`
	Secret    string    `envconfig:"PAYPAL_SECRET"`
	BaseURL   string    `envconfig:"PAYPAL_BASE_URL" default:"https://api-m.paypal.com"`
	BeginDate time.Time `envconfig:"PAYPAL_BEGIN_DATE" default:"2020-01-01T00:00:00Z"`
}

type StripeConfig struct {
	Secret      string `envconfig:"STRIPE_SECRET"`
	BaseURL     string `envconfig:"STRIPE_BASE_URL" default:"https://api.stripe.com"`
	CustomField string `envconfig:"STRIPE_CUSTOM_FIELD" default:"spigotname"`
	// payment link url -> resource id
	PaymentLinks map[string]int64 `envconfig:"STRIPE_PAYMENT_LINKS"`
}

type MailConfig struct {
	SenderAddress string `envconfig:"MAIL_SENDER_ADDRESS" default:"Spigot Forums <forums@spigotmc.org>"`
	ScanDepth     int    `envconfig:"MAIL_SCAN_DEPTH" default:"2"`
}

type PromotionConfig struct {
	CodeTTL        time.Duration `envconfig:"PROMOTION_CODE_TTL" default:"15m"`
	IngestDebounce time.Duration `envconfig:"INGEST_DEBOUNCE" default:"30s"`
	SweepInterval  time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		Discord: DiscordConfig{
			PremiumRoleID: 900,
			ResourceRoles: map[int64]int64{12345: 901, 23456: 902},
		},
		Promotion: PromotionConfig{
			CodeTTL:        15 * time.Minute,
			IngestDebounce: 30 * time.Second,
			SweepInterval:  5 * time.Minute,
		},
	}
}

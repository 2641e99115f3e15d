package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. STOREFRONT_HTTP_PORT.
const EnvPrefix = "STOREFRONT"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Tracking TrackingConfig `mapstructure:"tracking"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Tax      TaxConfig      `mapstructure:"tax"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Reviews  ReviewsConfig  `mapstructure:"reviews"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Log      LogConfig      `mapstructure:"log"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SslMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type RedisConfig struct {
	Addrs     []string `mapstructure:"addrs"`
	Password  string   `mapstructure:"password"`
	DB        int      `mapstructure:"db"`
	KeyPrefix string   `mapstructure:"key_prefix"`
}

type SessionConfig struct {
	CookieName    string        `mapstructure:"cookie_name"`
	Age           time.Duration `mapstructure:"age"`
	SecureCookies bool          `mapstructure:"secure_cookies"`
}

type TrackingConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	CookieName        string   `mapstructure:"cookie_name"`
	CookieSecret      string   `mapstructure:"cookie_secret"`
	TrackPageViews    bool     `mapstructure:"track_page_views"`
	TrackReferer      bool     `mapstructure:"track_referer"`
	TrackQueryString  bool     `mapstructure:"track_query_string"`
	TrackAjaxRequests bool     `mapstructure:"track_ajax_requests"`
	TrackAnonymous    bool     `mapstructure:"track_anonymous"`
	TrackSuperusers   bool     `mapstructure:"track_superusers"`
	IgnoreStatusCodes []int    `mapstructure:"ignore_status_codes"`
	IgnoreURLs        []string `mapstructure:"ignore_urls"`
	IgnoreUserAgents  []string `mapstructure:"ignore_user_agents"`
	BotHostnames      []string `mapstructure:"bot_hostnames"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	Issuer     string        `mapstructure:"issuer"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

type TaxConfig struct {
	// Rate is a fraction: 0.2 charges 20% on every price.
	Rate string `mapstructure:"rate"`
}

// PaymentMethodConfig describes one way to pay. Kind is "no_fee", "fixed"
// or "percentage".
type PaymentMethodConfig struct {
	Code        string `mapstructure:"code"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Kind        string `mapstructure:"kind"`
	Fee         string `mapstructure:"fee"`
	Tax         string `mapstructure:"tax"`
	Percentage  string `mapstructure:"percentage"`
}

type PaymentConfig struct {
	Methods []PaymentMethodConfig `mapstructure:"methods"`
}

type ReviewsConfig struct {
	AllowAnonymous bool `mapstructure:"allow_anonymous"`
	Moderate       bool `mapstructure:"moderate"`
}

type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

type JobsConfig struct {
	Enabled             bool          `mapstructure:"enabled"`
	ProductScores       string        `mapstructure:"product_scores"`
	ProductScoreTimeout time.Duration `mapstructure:"product_score_timeout"`
	VisitorCleanup      string        `mapstructure:"visitor_cleanup"`
	VisitorRetention    time.Duration `mapstructure:"visitor_retention"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.currency", "GBP")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.rate_burst", 0)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "storefront")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "storefront")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.addrs", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "session:")

	v.SetDefault("session.cookie_name", "sessionid")
	v.SetDefault("session.age", 14*24*time.Hour)
	v.SetDefault("session.secure_cookies", false)

	v.SetDefault("tracking.enabled", true)
	v.SetDefault("tracking.cookie_name", "tracker")
	v.SetDefault("tracking.cookie_secret", "")
	v.SetDefault("tracking.track_page_views", true)
	v.SetDefault("tracking.track_referer", true)
	v.SetDefault("tracking.track_query_string", true)
	v.SetDefault("tracking.track_ajax_requests", false)
	v.SetDefault("tracking.track_anonymous", true)
	v.SetDefault("tracking.track_superusers", true)
	v.SetDefault("tracking.ignore_status_codes", []int{})
	v.SetDefault("tracking.ignore_urls", []string{"health", "metrics", "swagger/", "openapi.json"})
	v.SetDefault("tracking.ignore_user_agents", []string{})
	v.SetDefault("tracking.bot_hostnames", []string{"googlebot.com", "search.msn.com", "crawl.yahoo.net"})

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "storefront")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("tax.rate", "0")

	v.SetDefault("payment.methods", []map[string]any{})

	v.SetDefault("reviews.allow_anonymous", true)
	v.SetDefault("reviews.moderate", false)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic_prefix", "storefront.")

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.product_scores", "@hourly")
	v.SetDefault("jobs.product_score_timeout", 5*time.Minute)
	v.SetDefault("jobs.visitor_cleanup", "@daily")
	v.SetDefault("jobs.visitor_retention", 30*24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stderr")
}

// LoadConfig reads .env into the environment, then layers the YAML file at
// path (config.yaml in the working directory when empty) and STOREFRONT_*
// variables over the defaults.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error
	if len(c.App.Currency) != 3 {
		problems = append(problems, fmt.Errorf("app.currency must be a three letter code, got %q", c.App.Currency))
	}
	if c.HTTP.Port == "" {
		problems = append(problems, errors.New("http.port is required"))
	}
	if len(c.Auth.JWTSecret) < 32 {
		problems = append(problems, errors.New("auth.jwt_secret must be at least 32 bytes"))
	}
	if c.Tracking.Enabled && len(c.Tracking.CookieSecret) < 32 {
		problems = append(problems, errors.New("tracking.cookie_secret must be at least 32 bytes when tracking is enabled"))
	}
	if _, err := decimal.NewFromString(c.Tax.Rate); err != nil {
		problems = append(problems, fmt.Errorf("tax.rate: %w", err))
	}
	if len(c.Redis.Addrs) == 0 {
		problems = append(problems, errors.New("redis.addrs needs at least one address"))
	}
	for i, m := range c.Payment.Methods {
		if m.Code == "" || m.Name == "" {
			problems = append(problems, fmt.Errorf("payment.methods[%d] needs a code and a name", i))
		}
	}
	return errors.Join(problems...)
}

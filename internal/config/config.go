package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DriverMongo selects the MongoDB document store.
	DriverMongo = "mongo"
	// DriverMySQL selects the gorm-backed MySQL store.
	DriverMySQL = "mysql"
)

// MinJWTExpiry is the shortest token lifetime the server accepts.
const MinJWTExpiry = time.Minute

// Config holds application level configuration loaded from .env and environment variables.
type Config struct {
	ServiceName string
	ServerPort  string
	LogLevel    string

	DBDriver      string
	MongoURI      string
	MongoDatabase string
	MySQLDSN      string
	ResetDB       bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string
	JWTExpiry time.Duration

	GithubAPIURL   string
	GithubClientID string
	GithubSecret   string
	GithubToken    string

	KafkaBrokers     []string
	KafkaTopicPrefix string

	StaticDir   string
	SwaggerHost string
}

// Load builds Config from an optional .env file and the environment, with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	setDefaults(v)

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		ServerPort:  v.GetString("SERVER_PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		MySQLDSN:      v.GetString("MYSQL_DSN"),
		ResetDB:       v.GetBool("RESET_DB"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisDB:   v.GetInt("REDIS_DB"),
		RedisPass: v.GetString("REDIS_PASSWORD"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTExpiry: getSeconds(v, "JWT_EXPIRY"),

		GithubAPIURL:   v.GetString("GITHUB_API_URL"),
		GithubClientID: v.GetString("GITHUB_CLIENT_ID"),
		GithubSecret:   v.GetString("GITHUB_SECRET"),
		GithubToken:    v.GetString("GITHUB_TOKEN"),

		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopicPrefix: v.GetString("KAFKA_TOPIC_PREFIX"),

		StaticDir:   v.GetString("STATIC_DIR"),
		SwaggerHost: v.GetString("SWAGGER_HOST"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "devconnector")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "devconnector")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/devconnector?charset=utf8mb4&parseTime=True&loc=UTC")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRY", "360000s")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com")
	v.SetDefault("KAFKA_TOPIC_PREFIX", "devconnector")
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo driver")
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTExpiry < MinJWTExpiry {
		return fmt.Errorf("JWT_EXPIRY must be at least %s, got %s", MinJWTExpiry, c.JWTExpiry)
	}
	return nil
}

// EventsEnabled reports whether a Kafka broker list was configured.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// getSeconds reads a duration. Bare numbers are seconds, like the token
// expiresIn setting; anything else goes through time.ParseDuration.
func getSeconds(v *viper.Viper, key string) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(n) * time.Second
	}
	return v.GetDuration(key)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

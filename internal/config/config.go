package config

import (
	"errors"
	"fmt"
	"time"

	"bookmystay-backend/internal/apperrors"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendText    = "text"
	BackendMongoDB = "mongodb"
)

type Config struct {
	Port                int           `env:"PORT" envDefault:"5001" validate:"min=1,max=65535"`
	StorageBackend      string        `env:"STORAGE_BACKEND" envDefault:"text" validate:"oneof=text mongodb"`
	FeedbackFile        string        `env:"FEEDBACK_FILE" envDefault:"feedbacks.txt" validate:"required_if=StorageBackend text"`
	MongoURI            string        `env:"MONGODB_URI" validate:"required_if=StorageBackend mongodb"`
	DBName              string        `env:"DB_NAME" envDefault:"bookmystay" validate:"required"`
	DBConnectionTimeout time.Duration `env:"DB_CONNECTION_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info" validate:"loglevel"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	NotifyFrom   string `env:"FEEDBACK_NOTIFY_FROM"`
	NotifyTo     string `env:"FEEDBACK_NOTIFY_TO" validate:"omitempty,email"`
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) EmailNotificationsEnabled() bool {
	return c.ResendAPIKey != ""
}

type InitOption func(*initOptions)

type initOptions struct {
	skipDotEnv bool
}

// WithSkipDotEnv keeps a local .env file from leaking into the result.
func WithSkipDotEnv(skip bool) InitOption {
	return func(options *initOptions) {
		options.skipDotEnv = skip
	}
}

// New reads .env (when present) and the process environment. Any failure is a
// startup error: the process cannot run without a valid configuration.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if !options.skipDotEnv {
		// Load .env (ignore error in production — env vars set directly)
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperrors.Startup(err, "invalid environment")
	}

	if err := validate(cfg); err != nil {
		return nil, apperrors.Startup(err, "invalid configuration")
	}

	return cfg, nil
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[fieldLevel.Field().String()]
}

func validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	if err := validate.Struct(cfg); err != nil {
		return err
	}

	if cfg.ResendAPIKey != "" && (cfg.NotifyFrom == "" || cfg.NotifyTo == "") {
		return errors.New("RESEND_API_KEY needs FEEDBACK_NOTIFY_FROM and FEEDBACK_NOTIFY_TO")
	}

	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HistoryFile string `yaml:"history-file" env:"OTHELLO_HISTORY_FILE" env-default:".othello_history"`
	Redis       Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"OTHELLO_REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"OTHELLO_REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port       string        `yaml:"port" env:"OTHELLO_REDIS_PORT" env-default:"6379" validate:"omitempty,numeric"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"OTHELLO_REDIS_SESSION_TTL" env-default:"24h" validate:"gte=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path, applies environment overrides and checks the values.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

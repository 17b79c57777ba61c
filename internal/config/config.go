package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvTest  = "test"
	EnvProd  = "prod"
)

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-default:"prod"`
	PostgreSQL   PostgreSQL   `yaml:"postgresql"`
	HTTPServer   HTTPServer   `yaml:"http_server"`
	Presentation Presentation `yaml:"presentation"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-required:"true"`
	Username string `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"GET,OPTIONS"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
}

// Presentation configures how branch cards are derived. Everything here is
// explicit so output does not depend on the host locale.
type Presentation struct {
	ClockLayout       string   `yaml:"clock_layout" env-default:"3:04 PM"`
	HoursSeparator    string   `yaml:"hours_separator" env-default:" - "`
	CuisineSeparator  string   `yaml:"cuisine_separator" env-default:", "`
	OpenStatus        string   `yaml:"open_status" env-default:"open"`
	PlaceholderHost   string   `yaml:"placeholder_host" env-default:"placehold.co"`
	PlaceholderWidth  int      `yaml:"placeholder_width" env-default:"600"`
	PlaceholderHeight int      `yaml:"placeholder_height" env-default:"400"`
	PlaceholderText   string   `yaml:"placeholder_text" env-default:"white"`
	Palette           []string `yaml:"palette" env-default:"f97316,ef4444,ec4899,8b5cf6,6366f1,3b82f6"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("failed to load .env file: " + err.Error())
	}

	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config reading error: %w", err)
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	JoinLink JoinLinkConfig `yaml:"join_link"`
	Agora    AgoraConfig    `yaml:"agora"`
	Google   GoogleConfig   `yaml:"google"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:""`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN" env-default:""`
}

// JoinLinkConfig describes how join links handed to meeting participants
// are built. The host/port pair is the externally reachable address, not
// necessarily the listen address.
type JoinLinkConfig struct {
	Scheme string `yaml:"scheme" env:"JOIN_LINK_SCHEME" env-default:"http"`
	Host   string `yaml:"host" env:"JOIN_LINK_HOST" env-default:""`
	Port   int    `yaml:"port" env:"JOIN_LINK_PORT" env-default:"8080"`
}

func (c JoinLinkConfig) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Scheme, c.Host, c.Port)
}

type AgoraConfig struct {
	AppID          string `yaml:"app_id" env:"AGORA_APP_ID" env-default:""`
	AppCertificate string `yaml:"app_certificate" env:"AGORA_APP_CERTIFICATE" env-default:""`
}

type GoogleConfig struct {
	ServiceAccountFile string `yaml:"service_account_file" env:"GOOGLE_SERVICE_ACCOUNT_FILE" env-default:""`
	ClientID           string `yaml:"client_id" env:"GOOGLE_CLIENT_ID" env-default:""`
	ClientSecret       string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET" env-default:""`
	RefreshToken       string `yaml:"refresh_token" env:"GOOGLE_REFRESH_TOKEN" env-default:""`
	RedirectURI        string `yaml:"redirect_uri" env:"GOOGLE_REDIRECT_URI" env-default:""`
	CalendarID         string `yaml:"calendar_id" env:"GOOGLE_CALENDAR_ID" env-default:"primary"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:""`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:""`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.JoinLink.Host == "" {
		c.JoinLink.Host = "127.0.0.1"
	}
	if c.JoinLink.Port == 0 {
		c.JoinLink.Port = 8080
	}
}

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	Addr     string
	DBUrl    string
	Debug    bool
	TokenTTL time.Duration

	// secrets and external service coordinates, environment only
	TokenSecret   string
	AdminPassword string

	StorageURL    string
	StorageKey    string
	StorageBucket string

	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPassword string
	AdminEmail    string
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "leadgen.sqlite", "path to SQLite3 DB file (default leadgen.sqlite)")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 120, "admin token TTL in seconds (default 120)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	cfg.StorageURL = os.Getenv("SUPABASE_URL")
	cfg.StorageKey = os.Getenv("SUPABASE_KEY")
	cfg.StorageBucket = os.Getenv("STORAGE_BUCKET")
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "model-photos"
	}

	cfg.SMTPHost = os.Getenv("EMAIL_HOST")
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	cfg.SMTPPort = 587
	if p := os.Getenv("EMAIL_PORT"); p != "" {
		cfg.SMTPPort, err = strconv.Atoi(p)
		if err != nil {
			return cfg, errors.New("invalid EMAIL_PORT: " + p)
		}
	}
	cfg.EmailUser = os.Getenv("EMAIL_USER")
	cfg.EmailPassword = os.Getenv("EMAIL_PASSWORD")
	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")

	if cfg.TokenSecret == "" {
		err = errors.New("missing environment variable TOKEN_SECRET")
	}

	return
}

func (cfg Config) StorageEnabled() bool {
	return cfg.StorageURL != "" && cfg.StorageKey != ""
}

func (cfg Config) EmailEnabled() bool {
	return cfg.EmailUser != "" && cfg.EmailPassword != "" && cfg.AdminEmail != ""
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

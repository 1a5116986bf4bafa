// Package config loads the service configuration
package config

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes env overrides: CL_JWT__SECRET maps to jwt.secret
const EnvPrefix = "CL_"

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// Load reads the config file once, then env overrides
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// .env first so it feeds the env provider
		if envErr := godotenv.Load(); envErr != nil {
			log.Printf("warning: .env not loaded: %v", envErr)
		}

		k = koanf.New(".")
		Conf, err = parse(k, configPath)
	})

	return err
}

// MustLoad loads the config or exits
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
}

// Reload re-reads the config file and env
func Reload(configPath string) error {
	if k == nil {
		return fmt.Errorf("config not initialised")
	}

	k = koanf.New(".")
	conf, err := parse(k, configPath)
	if err != nil {
		return err
	}
	Conf = conf
	return nil
}

func parse(k *koanf.Koanf, configPath string) (*AppConfig, error) {
	// file first
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// env overrides the file
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		log.Printf("load env: %v", err)
	}

	conf := Default()
	defaults := *conf
	// list fields are merged element-wise by the decoder, so start them empty
	conf.CORS.AllowedOrigins = nil
	conf.Auth.StudentDomains = nil
	conf.Auth.StaffDomains = nil
	conf.Kafka.Brokers = nil
	if err := k.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(conf, &defaults)

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// envKey CL_RATE_LIMIT__AUTH_REQUESTS -> rate_limit.auth_requests
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// normalize splits comma separated lists coming from env vars and restores
// list defaults that nothing overrode
func normalize(conf, defaults *AppConfig) {
	conf.CORS.AllowedOrigins = splitList(conf.CORS.AllowedOrigins, defaults.CORS.AllowedOrigins)
	conf.Auth.StudentDomains = splitList(conf.Auth.StudentDomains, defaults.Auth.StudentDomains)
	conf.Auth.StaffDomains = splitList(conf.Auth.StaffDomains, defaults.Auth.StaffDomains)
	conf.Kafka.Brokers = splitList(conf.Kafka.Brokers, defaults.Kafka.Brokers)
}

func splitList(in, fallback []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToLower(part))
			}
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Validate checks the settings the server cannot start without
func (c *AppConfig) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.JWT.ExpireMinutes <= 0 {
		return fmt.Errorf("jwt.expire_minutes must be positive")
	}
	if c.Auth.BcryptCost < 12 {
		return fmt.Errorf("auth.bcrypt_cost must be at least 12")
	}
	if len(c.Auth.StudentDomains) == 0 || len(c.Auth.StaffDomains) == 0 {
		return fmt.Errorf("auth.student_domains and auth.staff_domains are required")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	switch c.Upload.Backend {
	case "disk", "s3":
	default:
		return fmt.Errorf("unsupported upload.backend %q", c.Upload.Backend)
	}
	return nil
}

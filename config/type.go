package config

import (
	"time"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/email"
)

// AppConfig is the application configuration
type AppConfig struct {
	Server    ServerConfig    `koanf:"server"`
	GRPC      GRPCConfig      `koanf:"grpc"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Log       LogConfig       `koanf:"log"`
	JWT       JWTConfig       `koanf:"jwt"`
	CORS      CORSConfig      `koanf:"cors"`
	Auth      AuthConfig      `koanf:"auth"`
	Upload    UploadConfig    `koanf:"upload"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Kafka     KafkaConfig     `koanf:"kafka"`
	Smtp      SmtpConfig      `koanf:"smtp"`
	Assistant AssistantConfig `koanf:"assistant"`
}

type GRPCConfig struct {
	Port int `koanf:"port"` // 0 disables the health server
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release, test
	Production   bool          `koanf:"production"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // postgres, sqlite
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	Path         string `koanf:"path"` // sqlite file
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // seconds
}

type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, console
}

type JWTConfig struct {
	Secret        string `koanf:"secret"`
	ExpireMinutes int    `koanf:"expire_minutes"`
	CookieName    string `koanf:"cookie_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type AuthConfig struct {
	StudentDomains []string `koanf:"student_domains"`
	StaffDomains   []string `koanf:"staff_domains"`
	BcryptCost     int      `koanf:"bcrypt_cost"`
}

type UploadConfig struct {
	Backend    string   `koanf:"backend"` // disk, s3
	Dir        string   `koanf:"dir"`
	PublicPath string   `koanf:"public_path"`
	MaxSize    int64    `koanf:"max_size"` // bytes
	S3         S3Config `koanf:"s3"`
}

type S3Config struct {
	Endpoint        string `koanf:"endpoint"`
	Region          string `koanf:"region"`
	Bucket          string `koanf:"bucket"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	PublicURL       string `koanf:"public_url"`
}

type RateLimitConfig struct {
	Backend      string        `koanf:"backend"` // memory, redis
	Requests     int           `koanf:"requests"`
	AuthRequests int           `koanf:"auth_requests"`
	Window       time.Duration `koanf:"window"`
}

type KafkaConfig struct {
	Enabled bool     `koanf:"enabled"`
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
}

type SmtpConfig struct {
	email.Config `koanf:",squash"`
	Enabled      bool   `koanf:"enabled"`
	From         string `koanf:"from"`
}

type AssistantConfig struct {
	APIKey     string        `koanf:"api_key"`
	BaseURL    string        `koanf:"base_url"`
	Model      string        `koanf:"model"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxHistory int           `koanf:"max_history"`
}

// Default returns the built-in defaults; the config file and env vars are layered on top
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			Mode:         "debug",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			Database: "campuslearn",
			Path:     "campuslearn.db",
			LogLevel: "warn",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		JWT: JWTConfig{
			ExpireMinutes: 60,
			CookieName:    "jwt",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Auth: AuthConfig{
			StudentDomains: []string{"student.belgiumcampus.ac.za"},
			StaffDomains:   []string{"belgiumcampus.ac.za"},
			BcryptCost:     12,
		},
		Upload: UploadConfig{
			Backend:    "disk",
			Dir:        "uploads",
			PublicPath: "/uploads",
			MaxSize:    5 << 20,
			S3: S3Config{
				Region: "us-east-1",
				Bucket: "campuslearn",
			},
		},
		RateLimit: RateLimitConfig{
			Backend:      "memory",
			Requests:     300,
			AuthRequests: 20,
			Window:       15 * time.Minute,
		},
		Kafka: KafkaConfig{
			Topic: "campuslearn.notifications",
		},
		Smtp: SmtpConfig{
			From: "CampusLearn <noreply@belgiumcampus.ac.za>",
		},
		Assistant: AssistantConfig{
			Model:      "gpt-4o-mini",
			Timeout:    15 * time.Second,
			MaxHistory: 20,
		},
	}
}

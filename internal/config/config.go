package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
	MinIO     MinIOConfig
	Company   CompanyConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

type JWTConfig struct {
	Secret string
	Expire time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled     bool
	UseRedis    bool
	Window      time.Duration
	MaxRequests int
}

// RPS converts the window quota into a steady token-bucket rate.
func (r RateLimitConfig) RPS() float64 {
	if r.Window <= 0 {
		return float64(r.MaxRequests)
	}
	return float64(r.MaxRequests) / r.Window.Seconds()
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
	Driver      string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type CompanyConfig struct {
	DefaultName string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "seosites")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("JWT_EXPIRE", "7d")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_WINDOW_MS", 900000)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("MAX_FILE_SIZE", 5242880)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("MINIO_BUCKET", "seosites")
	v.SetDefault("COMPANY_DEFAULT_NAME", "seosites")
	v.SetDefault("LOG_LEVEL", "info")

	expire, err := ParseExpire(v.GetString("JWT_EXPIRE"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("APP_ENV"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Expire: expire,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("FRONTEND_URL")),
		},
		RateLimit: RateLimitConfig{
			Enabled:     v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:    v.GetBool("RATE_LIMIT_USE_REDIS"),
			Window:      time.Duration(v.GetInt64("RATE_LIMIT_WINDOW_MS")) * time.Millisecond,
			MaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		},
		Upload: UploadConfig{
			Dir:         v.GetString("UPLOAD_DIR"),
			MaxFileSize: v.GetInt64("MAX_FILE_SIZE"),
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
		},
		Company: CompanyConfig{
			DefaultName: v.GetString("COMPANY_DEFAULT_NAME"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if cfg.Upload.MaxFileSize <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Upload.Driver != "local" && cfg.Upload.Driver != "minio" {
		return nil, fmt.Errorf("STORAGE_DRIVER must be local or minio, got %q", cfg.Upload.Driver)
	}
	if cfg.RateLimit.Window < time.Second {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_MS must be at least 1000, got %d", cfg.RateLimit.Window.Milliseconds())
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive, got %d", cfg.RateLimit.MaxRequests)
	}
	if cfg.JWT.Secret == "" && cfg.Server.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

// ParseExpire accepts "7d"-style day counts as well as Go durations ("12h", "30m").
// A bare number is read as seconds.
func ParseExpire(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 7 * 24 * time.Hour, nil
	}
	if strings.HasSuffix(s, "d") {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}

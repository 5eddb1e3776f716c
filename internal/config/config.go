package config

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	envServerAddress   = "SERVER_ADDRESS"
	envBaseURL         = "BASE_URL"
	envDatabaseDSN     = "DATABASE_DSN"
	envRedisAddr       = "REDIS_ADDR"
	envJWTSecretKey    = "JWT_SECRET_KEY"
	envJWTAccessExpire = "JWT_ACCESS_EXPIRE"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultBaseURL         = "http://localhost:8080"
	defaultJWTAccessExpire = 24 * time.Hour * 7
)

type Config struct {
	ServerAddress   string
	BaseURL         string
	DatabaseDSN     string // пусто = inmemory хранилище
	RedisAddr       string // пусто = in-process кэш резолва
	JWTSecretKey    string // Минимум 32 байта (base64) для HS256
	JWTAccessExpire time.Duration
}

func NewConfig() *Config {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		BaseURL:         defaultBaseURL,
		JWTAccessExpire: defaultJWTAccessExpire,
	}

	flag.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL for issued short links")
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Postgres DSN, empty for in-memory storage")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the resolve cache, empty for in-process cache")
	flag.DurationVar(&cfg.JWTAccessExpire, "jwt-access-expire", cfg.JWTAccessExpire, "JWT access token expiration")
	flag.Parse()

	cfg.applyEnv(envServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(envBaseURL, &cfg.BaseURL)
	cfg.applyEnv(envDatabaseDSN, &cfg.DatabaseDSN)
	cfg.applyEnv(envRedisAddr, &cfg.RedisAddr)
	cfg.applyEnv(envJWTSecretKey, &cfg.JWTSecretKey)
	cfg.applyEnvDuration(envJWTAccessExpire, &cfg.JWTAccessExpire)

	cfg.validateJWTSecret()
	cfg.normalizeServerAddress()
	cfg.normalizeBaseURL()

	return cfg
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) validateJWTSecret() {
	if c.JWTSecretKey == "" {
		// Случайный ключ для разработки: все куки умрут вместе с процессом
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("failed to generate JWT secret key")
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		fmt.Println("WARNING: Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	if _, err := base64.StdEncoding.DecodeString(c.JWTSecretKey); err != nil || len(c.JWTSecretKey) < 32 {
		panic("JWT secret key must be at least 32 bytes long (base64 encoded)")
	}
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func (c *Config) normalizeBaseURL() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

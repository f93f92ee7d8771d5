package services

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = "8000"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 30 * time.Second
)

// Config - 서버 실행 설정
type Config struct {
	Host            string
	Port            string
	LogLevel        string
	Mode            string
	ShutdownTimeout time.Duration
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadConfig - 환경 변수에서 설정 로드
// Values from envFiles are applied first; variables already present in the
// environment win. Missing files are ignored.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("env 파일 읽기 실패 (%s): %w", f, err)
		}
	}

	config := &Config{
		Host:            getenv("HOST", DefaultHost),
		Port:            getenv("PORT", DefaultPort),
		LogLevel:        getenv("LOG_LEVEL", DefaultLogLevel),
		Mode:            getenv(gin.EnvGinMode, gin.ReleaseMode),
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		config.ShutdownTimeout = d
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be an integer in 1..65535", c.Port)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid %s %q", gin.EnvGinMode, c.Mode)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s: must be positive", c.ShutdownTimeout)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

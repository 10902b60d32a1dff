package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the recognized variables. JWT_SECRET, JWT_EXPIRATION_TIME
// and SALT keep the names used by earlier deployments; the CREDKEEPER_
// variants win when both are set.
type envConfig struct {
	EndpointAddrGRPC  string        `env:"CREDKEEPER_GRPC_ADDR"`
	MetricsAddr       string        `env:"CREDKEEPER_METRICS_ADDR"`
	StorageType       string        `env:"CREDKEEPER_STORAGE"`
	DatabaseDSN       string        `env:"CREDKEEPER_DATABASE_DSN"`
	SecretKey         string        `env:"CREDKEEPER_SECRET_KEY"`
	LegacySecret      string        `env:"JWT_SECRET"`
	TokenValidity     time.Duration `env:"CREDKEEPER_TOKEN_TTL"`
	LegacyExpiration  string        `env:"JWT_EXPIRATION_TIME"`
	TokenIssuer       string        `env:"CREDKEEPER_TOKEN_ISSUER"`
	HashAlgorithm     string        `env:"CREDKEEPER_HASH_ALGORITHM"`
	BcryptCost        int           `env:"CREDKEEPER_BCRYPT_COST"`
	LegacySalt        int           `env:"SALT"`
	Argon2Iterations  uint32        `env:"CREDKEEPER_ARGON2_ITERATIONS"`
	Argon2MemoryKiB   uint32        `env:"CREDKEEPER_ARGON2_MEMORY_KIB"`
	BiometricIndexKey string        `env:"CREDKEEPER_BIOMETRIC_INDEX_KEY"`
	RedisAddr         string        `env:"CREDKEEPER_REDIS_ADDR"`
	RotationLockTTL   time.Duration `env:"CREDKEEPER_ROTATION_LOCK_TTL"`
	LogLevel          string        `env:"CREDKEEPER_LOG_LEVEL"`
	LogFormat         string        `env:"CREDKEEPER_LOG_FORMAT"`
}

// parseEnv overlays values from environment variables that are set.
func parseEnv(config *Config) error {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.MetricsAddr, e.MetricsAddr)
	setString(&config.StorageType, e.StorageType)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.LegacySecret)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.TokenIssuer, e.TokenIssuer)
	setString(&config.HashAlgorithm, e.HashAlgorithm)
	setString(&config.BiometricIndexKey, e.BiometricIndexKey)
	setString(&config.RedisAddr, e.RedisAddr)
	setString(&config.LogLevel, e.LogLevel)
	setString(&config.LogFormat, e.LogFormat)

	if e.LegacyExpiration != "" {
		d, err := parseExpiration(e.LegacyExpiration)
		if err != nil {
			return fmt.Errorf("parse env: JWT_EXPIRATION_TIME: %w", err)
		}
		config.TokenValidityDuration = d
	}
	if e.TokenValidity != 0 {
		config.TokenValidityDuration = e.TokenValidity
	}
	if e.RotationLockTTL != 0 {
		config.RotationLockTTL = e.RotationLockTTL
	}
	if e.LegacySalt != 0 {
		config.BcryptCost = e.LegacySalt
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
	if e.Argon2Iterations != 0 {
		config.Argon2Iterations = e.Argon2Iterations
	}
	if e.Argon2MemoryKiB != 0 {
		config.Argon2MemoryKiB = e.Argon2MemoryKiB
	}

	return nil
}

// parseExpiration accepts plain seconds ("3600"), a day count ("7d") or any
// Go duration ("90m").
func parseExpiration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

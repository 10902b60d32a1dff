package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
	"github.com/dmitrijs2005/credkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1h" and integer nanoseconds.
//
// Fields absent from the file keep their current values.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	MetricsAddr           string         `json:"metrics_addr"`
	StorageType           string         `json:"storage_type"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	TokenIssuer           string         `json:"token_issuer"`
	HashAlgorithm         string         `json:"hash_algorithm"`
	BcryptCost            int            `json:"bcrypt_cost"`
	Argon2Iterations      uint32         `json:"argon2_iterations"`
	Argon2MemoryKiB       uint32         `json:"argon2_memory_kib"`
	BiometricIndexKey     string         `json:"biometric_index_key"`
	RedisAddr             string         `json:"redis_addr"`
	RotationLockTTL       timex.Duration `json:"rotation_lock_ttl"`
	LogLevel              string         `json:"log_level"`
	LogFormat             string         `json:"log_format"`
}

// parseJson overlays values from the file named by -c/-config, if any.
func parseJson(config *Config, args []string) error {

	jsonConfigFile := flagx.ConfigPath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.StorageType, c.StorageType)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TokenIssuer, c.TokenIssuer)
	setString(&config.HashAlgorithm, c.HashAlgorithm)
	setString(&config.BiometricIndexKey, c.BiometricIndexKey)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.RotationLockTTL.Duration != 0 {
		config.RotationLockTTL = c.RotationLockTTL.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.Argon2Iterations != 0 {
		config.Argon2Iterations = c.Argon2Iterations
	}
	if c.Argon2MemoryKiB != 0 {
		config.Argon2MemoryKiB = c.Argon2MemoryKiB
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
)

var config *Config

// GetConfig returns the configuration loaded by the last successful Load.
func GetConfig() *Config {
	return config
}

// Load reads the configuration from the environment. When ENV_FILE_PATH is
// set the file is loaded first; variables already present in the environment
// take precedence. All problems are reported together.
func Load() (*Config, error) {
	if envFilePath := os.Getenv("ENV_FILE_PATH"); envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFilePath, err)
		}
	}

	cfg := &Config{}
	r := &configReader{}

	cfg.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", false)

	// Logging configuration
	cfg.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	cfg.TasksService = TasksServiceConfig{
		BaseURL:        r.readOptionalString("TASKLIST_API_BASE_URL", "http://localhost:3000"),
		TimeoutSeconds: int(r.readOptionalInt64("HTTP_TIMEOUT_SECONDS", 30)),
		RetryAttempts:  int(r.readOptionalInt64("HTTP_RETRY_ATTEMPTS", 0)),
		RetryWaitMinMs: int(r.readOptionalInt64("HTTP_RETRY_WAIT_MIN_MS", 1000)),
		RetryWaitMaxMs: int(r.readOptionalInt64("HTTP_RETRY_WAIT_MAX_MS", 10000)),
	}

	cfg.CredentialStore = CredentialStoreConfig{
		Backend:     r.readOptionalString("CREDENTIAL_STORE_BACKEND", BackendFile),
		FilePath:    r.readOptionalString("CREDENTIAL_STORE_FILE", defaultCredentialFile()),
		SealKeyFile: r.readOptionalString("CREDENTIAL_STORE_SEAL_KEY_FILE", ""),
	}

	cfg.Redis = RedisConfig{
		Addr:      r.readOptionalString("REDIS_ADDR", "localhost:6379"),
		Password:  r.readOptionalString("REDIS_PASSWORD", ""),
		DB:        int(r.readOptionalInt64("REDIS_DB", 0)),
		KeyPrefix: r.readOptionalString("REDIS_KEY_PREFIX", "tasklist:"),
	}

	// database configs are only required for the postgres medium
	if cfg.CredentialStore.Backend == BackendPostgres {
		cfg.POSTGRESQL = POSTGRESQL{
			Host:     r.readRequiredString("DB_HOST"),
			Port:     int(r.readOptionalInt64("DB_PORT", 5432)),
			User:     r.readRequiredString("DB_USER"),
			Password: r.readRequiredString("DB_PASSWORD"),
			DBName:   r.readRequiredString("DB_NAME"),
		}
		cfg.POSTGRESQL.DbConfigs = DbConfigs{
			// gorm configs
			SkipDefaultTransaction:    r.readOptionalBool("GORM_SKIP_DEFAULT_TRANSACTION", true),
			SlowThresholdMilliseconds: r.readOptionalInt64("GORM_SLOW_THRESHOLD_MILLISECONDS", 200),

			// sql.DB configs
			MaxIdleCount:       r.readNullableInt64("DB_MAX_IDLE_COUNT"),
			MaxOpenCount:       r.readNullableInt64("DB_MAX_OPEN_COUNT"),
			MaxIdleTimeSeconds: r.readNullableInt64("DB_MAX_IDLE_TIME_SECONDS"),
			MaxLifetimeSeconds: r.readNullableInt64("DB_MAX_LIFETIME_SECONDS"),
		}
	}
	cfg.DbOperationTimeoutSeconds = int(r.readOptionalInt64("DB_OPERATION_TIMEOUT_SECONDS", 10))

	validateTasksServiceConfigs(cfg, r)
	validateCredentialStoreConfigs(cfg, r)

	if err := r.err(); err != nil {
		return nil, err
	}
	config = cfg
	slog.Debug("configReader: configs loaded", "backend", cfg.CredentialStore.Backend)
	return cfg, nil
}

func defaultCredentialFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tasklist", "credentials.yaml")
}

func validateTasksServiceConfigs(cfg *Config, r *configReader) {
	if cfg.TasksService.BaseURL == "" {
		r.errors = append(r.errors, fmt.Errorf("TASKLIST_API_BASE_URL must be non-empty"))
	}
	if cfg.TasksService.TimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.TasksService.TimeoutSeconds))
	}
	if cfg.TasksService.RetryAttempts < 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_ATTEMPTS must not be negative, got %d", cfg.TasksService.RetryAttempts))
	}
	if cfg.TasksService.RetryWaitMinMs > cfg.TasksService.RetryWaitMaxMs {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_WAIT_MIN_MS (%d) must be <= HTTP_RETRY_WAIT_MAX_MS (%d)",
			cfg.TasksService.RetryWaitMinMs, cfg.TasksService.RetryWaitMaxMs))
	}
}

func validateCredentialStoreConfigs(cfg *Config, r *configReader) {
	backends := []string{BackendFile, BackendMemory, BackendRedis, BackendPostgres}
	if !slices.Contains(backends, cfg.CredentialStore.Backend) {
		r.errors = append(r.errors, fmt.Errorf("CREDENTIAL_STORE_BACKEND must be one of %v, got %q", backends, cfg.CredentialStore.Backend))
	}
	if cfg.CredentialStore.Backend == BackendFile && cfg.CredentialStore.FilePath == "" {
		r.errors = append(r.errors, fmt.Errorf("CREDENTIAL_STORE_FILE must be non-empty"))
	}
	if cfg.CredentialStore.Backend == BackendRedis && cfg.Redis.Addr == "" {
		r.errors = append(r.errors, fmt.Errorf("REDIS_ADDR must be non-empty"))
	}
	if cfg.DbOperationTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("DB_OPERATION_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.DbOperationTimeoutSeconds))
	}
}

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

// Config holds all configuration for the application
type Config struct {
	LogLevel            string
	AutoMaxProcsEnabled bool

	// Task service API configuration
	TasksService TasksServiceConfig

	// Credential store configuration
	CredentialStore CredentialStoreConfig

	// Redis medium configuration, used when CredentialStore.Backend is redis
	Redis RedisConfig

	// PostgreSQL medium configuration, used when CredentialStore.Backend is postgres
	POSTGRESQL POSTGRESQL
	// Database operation timeout configuration
	DbOperationTimeoutSeconds int
}

type TasksServiceConfig struct {
	BaseURL        string
	TimeoutSeconds int
	// RetryAttempts is the number of retries after the first attempt. 0 disables retries.
	RetryAttempts  int
	RetryWaitMinMs int
	RetryWaitMaxMs int
}

// Credential store backends
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type CredentialStoreConfig struct {
	Backend  string
	FilePath string
	// SealKeyFile is an age identity file. When set the file medium is encrypted at rest.
	SealKeyFile string
}

type RedisConfig struct {
	Addr      string
	Password  string `json:"-"`
	DB        int
	KeyPrefix string
}

type POSTGRESQL struct {
	Host     string
	Port     int
	User     string
	DBName   string
	Password string `json:"-"`
	DbConfigs
}

type DbConfigs struct {
	// gorm configs
	SlowThresholdMilliseconds int64
	SkipDefaultTransaction    bool

	// go sql configs
	MaxIdleCount       *int64 // zero means defaultMaxIdleConns (2); negative means 0
	MaxOpenCount       *int64 // <= 0 means unlimited
	MaxLifetimeSeconds *int64 // maximum amount of time a connection may be reused
	MaxIdleTimeSeconds *int64
}

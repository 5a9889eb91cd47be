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

package wiring

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/config"
	"github.com/wso2/tasklist-client/credentials"
	"github.com/wso2/tasklist-client/db"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/services"
	"github.com/wso2/tasklist-client/storage"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	Logger *slog.Logger
	Config config.Config

	// Credential store
	CredentialStore *credentials.Store

	// Services
	AuthService services.AuthService
	TaskService services.TaskService
}

// TestClients contains all mock clients needed for testing
type TestClients struct {
	TasksSvcClient taskssvc.TasksSvcClient
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideKeyValueStore opens the medium selected by CREDENTIAL_STORE_BACKEND.
// The returned cleanup releases connections held by the medium.
func ProvideKeyValueStore(cfg config.Config) (storage.KeyValueStore, func(), error) {
	noop := func() {}
	switch cfg.CredentialStore.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}
		return storage.NewRedisStore(client, cfg.Redis.KeyPrefix), cleanup, nil

	case config.BackendPostgres:
		gormDB, err := db.Open(cfg.POSTGRESQL)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(gormDB); err != nil {
				slog.Warn("failed to close database", "error", err)
			}
		}
		timeout := time.Duration(cfg.DbOperationTimeoutSeconds) * time.Second
		return storage.NewDBStore(gormDB, timeout), cleanup, nil

	case config.BackendFile, "":
		var opts []storage.FileStoreOption
		if cfg.CredentialStore.SealKeyFile != "" {
			identity, err := storage.LoadOrCreateAgeIdentity(cfg.CredentialStore.SealKeyFile)
			if err != nil {
				return nil, nil, err
			}
			sealer, err := storage.NewAgeSealer(identity)
			if err != nil {
				return nil, nil, err
			}
			opts = append(opts, storage.WithSealer(sealer))
		}
		store, err := storage.NewFileStore(cfg.CredentialStore.FilePath, opts...)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	}
	return nil, nil, fmt.Errorf("unsupported credential store backend %q", cfg.CredentialStore.Backend)
}

// ProvideCredentialStore creates the credential store on medium
func ProvideCredentialStore(medium storage.KeyValueStore) *credentials.Store {
	return credentials.NewStore(medium)
}

// ProvideTasksSvcClient creates the task service client
func ProvideTasksSvcClient(cfg config.Config, store *credentials.Store, navigator navigation.Navigator) (taskssvc.TasksSvcClient, error) {
	timeout := time.Duration(cfg.TasksService.TimeoutSeconds) * time.Second
	return taskssvc.NewTasksSvcClient(&taskssvc.Config{
		BaseURL:     cfg.TasksService.BaseURL,
		Credentials: store,
		Navigator:   navigator,
		Timeout:     timeout,
		HTTPClient:  &http.Client{Timeout: timeout},
		RetryConfig: requests.RequestRetryConfig{
			RetryAttemptsMax: cfg.TasksService.RetryAttempts,
			RetryWaitMin:     time.Duration(cfg.TasksService.RetryWaitMinMs) * time.Millisecond,
			RetryWaitMax:     time.Duration(cfg.TasksService.RetryWaitMaxMs) * time.Millisecond,
		},
	})
}

// ProvideTestTasksSvcClient extracts the TasksSvcClient from TestClients
func ProvideTestTasksSvcClient(testClients TestClients) taskssvc.TasksSvcClient {
	return testClients.TasksSvcClient
}

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

// Package taskssvc provides the task service API client.
//
//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/taskssvc_client_fake.go . TasksSvcClient:TasksSvcClientMock
package taskssvc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/navigation"
)

// Config contains configuration for the task service client
type Config struct {
	BaseURL     string
	Credentials CredentialSource
	// Navigator receives the redirect to the login surface when the server
	// rejects the credential. Optional.
	Navigator   navigation.Navigator
	RetryConfig requests.RequestRetryConfig
	Timeout     time.Duration
	// HTTPClient overrides the transport. Optional.
	HTTPClient requests.HttpClient
}

// TasksSvcClient defines the task service operations
type TasksSvcClient interface {
	// Auth Operations
	Register(ctx context.Context, creds Credentials) (*models.User, error)
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	GetMe(ctx context.Context) (*models.User, error)

	// Task Operations
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error)
}

type tasksSvcClient struct {
	baseURL    string
	httpClient requests.HttpClient
}

// NewTasksSvcClient builds a client whose every call passes through the
// request pipeline: correlation tagging, credential attachment, then the
// (optionally retrying) transport, then unauthorized handling.
func NewTasksSvcClient(cfg *Config) (TasksSvcClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credential source is required")
	}

	transport := cfg.HTTPClient
	if transport == nil {
		transport = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.RetryConfig.Enabled() {
		transport = requests.NewRetryableHTTPClient(transport, cfg.RetryConfig)
	}

	pipeline := requests.NewPipeline(transport).
		UseRequestStage(TagRequest(), AttachCredential(cfg.Credentials)).
		UseResponseStage(HandleUnauthorized(cfg.Credentials, cfg.Navigator))

	return &tasksSvcClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: pipeline,
	}, nil
}

func (c *tasksSvcClient) newRequest(name, method, path string) *requests.HttpRequest {
	req := &requests.HttpRequest{
		Name:   name,
		URL:    c.baseURL + path,
		Method: method,
	}
	req.SetHeader("Accept", "application/json")
	return req
}

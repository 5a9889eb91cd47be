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

package requests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/wso2/tasklist-client/middleware/logger"
)

// errRetry is a sentinel error used internally to signal retry attempts.
var errRetry = errors.New("retry")

// RetryableHTTPClient wraps an HttpClient with retry logic. It sits below the
// request pipeline so that pipeline stages observe only the final outcome.
type RetryableHTTPClient struct {
	client HttpClient
	config RequestRetryConfig
	// backoff computes the wait before the next attempt. It honors
	// Retry-After on 429 and 503 responses.
	backoff retryablehttp.Backoff
}

var _ HttpClient = (*RetryableHTTPClient)(nil)

// NewRetryableHTTPClient creates a new RetryableHTTPClient.
// Config is optional; with no config every call is attempted exactly once.
func NewRetryableHTTPClient(client HttpClient, config ...RequestRetryConfig) *RetryableHTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	var cfg RequestRetryConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	return &RetryableHTTPClient{
		client:  client,
		config:  cfg,
		backoff: retryablehttp.DefaultBackoff,
	}
}

// Do executes the HTTP request with retry logic.
func (c *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	cfg := c.config.withDefaults(req.Method)
	log := logger.GetLogger(ctx).With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	// Capture body bytes for replay on retries
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if closeErr := req.Body.Close(); closeErr != nil {
			log.Warn("failed to close request body", slog.String("error", closeErr.Error()))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	maxAttempts := cfg.RetryAttemptsMax + 1
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		isLastAttempt := attempt == maxAttempts

		if bodyBytes != nil {
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		resp, retryHint, err := c.doAttempt(ctx, req, cfg, attempt, isLastAttempt, log)
		if !errors.Is(err, errRetry) {
			return resp, err
		}

		wait := c.backoff(cfg.RetryWaitMin, cfg.RetryWaitMax, attempt-1, retryHint)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during retry wait: %w", ctx.Err())
		}
	}
	return nil, fmt.Errorf("unreachable: retry loop exited without returning a response or error")
}

// doAttempt performs one attempt. When it returns errRetry, the returned
// response (possibly nil) only carries headers for the backoff calculation;
// its body has already been drained.
func (c *RetryableHTTPClient) doAttempt(ctx context.Context, req *http.Request, cfg RequestRetryConfig, attempt int, isLastAttempt bool, log *slog.Logger) (*http.Response, *http.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, cfg.AttemptTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Do(req.Clone(attemptCtx))
	elapsed := time.Since(start)

	attrs := []any{
		slog.Int("attempt", attempt),
		slog.Int("maxAttempts", cfg.RetryAttemptsMax+1),
		slog.Duration("duration", elapsed),
	}

	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, fmt.Errorf("context cancelled or timed out: %w", ctx.Err())
		}
		attrs = append(attrs, slog.String("error", err.Error()))
		if isLastAttempt {
			log.Warn("HTTP request failed after all attempts", attrs...)
			return nil, nil, fmt.Errorf("request failed after %d attempts: %w", attempt, err)
		}
		log.Debug("HTTP request failed, retrying", attrs...)
		return nil, nil, errRetry
	}

	if !isLastAttempt && cfg.RetryOnStatus(resp.StatusCode) {
		log.Debug("HTTP request returned retryable status, retrying", append(attrs, slog.Int("status", resp.StatusCode))...)
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			log.Warn("failed to drain response body", slog.String("error", err.Error()))
		}
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
		return nil, resp, errRetry
	}
	if cfg.RetryAttemptsMax > 0 && cfg.RetryOnStatus(resp.StatusCode) {
		log.Warn("HTTP request returned retryable status after all attempts", append(attrs, slog.Int("status", resp.StatusCode))...)
	}

	// Read body before attemptCtx is canceled to prevent "context canceled" errors
	bodyBytes, err := io.ReadAll(resp.Body)
	if closeErr := resp.Body.Close(); closeErr != nil {
		log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	return resp, nil, nil
}

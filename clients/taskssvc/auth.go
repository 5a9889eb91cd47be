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

package taskssvc

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/middleware/logger"
	"github.com/wso2/tasklist-client/navigation"
)

const (
	LoginPath    = "/api/auth/login"
	RegisterPath = "/api/auth/register"
	MePath       = "/api/auth/me"
	TasksPath    = "/api/tasks"

	RequestIDHeader = "X-Request-ID"
)

// PublicEndpoints are reachable without a credential. A request whose path
// contains one of them never carries an Authorization header.
var PublicEndpoints = []string{LoginPath, RegisterPath}

// IsPublicEndpoint reports whether path targets a public endpoint.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.Contains(path, endpoint) {
			return true
		}
	}
	return false
}

// CredentialSource is the part of the credential store the pipeline needs.
// Read must only yield unexpired tokens.
type CredentialSource interface {
	Read(ctx context.Context) (string, bool)
	Clear(ctx context.Context)
}

// AttachCredential returns a request stage that adds the bearer token to
// requests for protected endpoints. Without a usable token the request is
// sent unauthenticated and the server decides.
func AttachCredential(source CredentialSource) requests.RequestStage {
	return func(req *http.Request) error {
		if IsPublicEndpoint(req.URL.Path) {
			return nil
		}
		token, ok := source.Read(req.Context())
		if !ok {
			logger.GetLogger(req.Context()).Debug("No credential available, sending unauthenticated request",
				slog.String("path", req.URL.Path))
			return nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// HandleUnauthorized returns a response stage that invalidates the session
// when the server rejects the credential. The user is sent to the login
// surface unless already on an authentication surface. The response itself
// is passed on unchanged.
func HandleUnauthorized(source CredentialSource, nav navigation.Navigator) requests.ResponseStage {
	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		if err != nil || resp == nil || resp.StatusCode != http.StatusUnauthorized {
			return resp, err
		}
		ctx := req.Context()
		source.Clear(ctx)
		if nav != nil && navigation.RedirectToLogin(nav) {
			logger.GetLogger(ctx).Info("Session rejected by server, redirecting to login",
				slog.String("path", req.URL.Path))
		}
		return resp, err
	}
}

// TagRequest returns a request stage that stamps each request with a
// correlation id.
func TagRequest() requests.RequestStage {
	return func(req *http.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		logger.GetLogger(req.Context()).Debug("Sending request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("requestId", req.Header.Get(RequestIDHeader)))
		return nil
	}
}

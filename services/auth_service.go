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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/credentials"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/utils"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// CredentialStore is the credential store as seen by the services.
type CredentialStore interface {
	Save(ctx context.Context, token string)
	Read(ctx context.Context) (string, bool)
	Current(ctx context.Context) (*credentials.Credential, bool)
	Clear(ctx context.Context)
	IsValid(ctx context.Context) bool
}

// SessionStatus describes the locally stored session.
type SessionStatus struct {
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expiresAt,omitzero"`
}

// AuthService defines the authentication flows of the client
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, confirmPassword string) (*models.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*models.User, error)
	Session(ctx context.Context) SessionStatus

	// RequireSession guards protected operations.
	RequireSession(ctx context.Context) error
	// RequireGuest guards the login and register operations.
	RequireGuest(ctx context.Context) error
}

type authService struct {
	logger         *slog.Logger
	tasksSvcClient taskssvc.TasksSvcClient
	store          CredentialStore
	navigator      navigation.Navigator
}

// NewAuthService creates a new auth service
func NewAuthService(
	logger *slog.Logger,
	tasksSvcClient taskssvc.TasksSvcClient,
	store CredentialStore,
	navigator navigation.Navigator,
) AuthService {
	return &authService{
		logger:         logger,
		tasksSvcClient: tasksSvcClient,
		store:          store,
		navigator:      navigator,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, utils.NewUserError("Email and password are required", utils.ErrInvalidInput)
	}

	s.logger.Info("Logging in", "email", email)
	result, err := s.tasksSvcClient.Login(ctx, taskssvc.Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		if errors.Is(err, utils.ErrNoTokenReceived) {
			return nil, utils.NewUserError("No token received", err)
		}
		return nil, utils.NewUserError(requests.ErrorMessage(err, "Login failed"), err)
	}

	s.store.Save(ctx, result.Token)
	s.navigator.NavigateTo(navigation.DashboardPath)
	s.logger.Info("Logged in", "email", email)
	return result.User, nil
}

func (s *authService) Register(ctx context.Context, email, password, confirmPassword string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateRegistration(email, password, confirmPassword); err != nil {
		return nil, err
	}

	s.logger.Info("Registering account", "email", email)
	user, err := s.tasksSvcClient.Register(ctx, taskssvc.Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, utils.NewUserError(requests.ErrorMessage(err, "Registration failed"), err)
	}

	s.navigator.NavigateTo(navigation.LoginPath)
	return user, nil
}

func validateRegistration(email, password, confirmPassword string) error {
	switch {
	case email == "":
		return utils.NewUserError("Email is required", utils.ErrInvalidInput)
	case password != confirmPassword:
		return utils.NewUserError("Passwords do not match", utils.ErrInvalidInput)
	case len(password) < MinPasswordLength:
		return utils.NewUserError(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength), utils.ErrInvalidInput)
	}
	return nil
}

func (s *authService) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.navigator.NavigateTo(navigation.LoginPath)
	s.logger.Info("Logged out")
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	if err := s.RequireSession(ctx); err != nil {
		return nil, err
	}
	user, err := s.tasksSvcClient.GetMe(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrUnauthorized) {
			return nil, utils.NewUserError(SessionExpiredMessage, err)
		}
		return nil, utils.NewUserError(requests.ErrorMessage(err, "Failed to load user"), err)
	}
	return user, nil
}

func (s *authService) Session(ctx context.Context) SessionStatus {
	cred, ok := s.store.Current(ctx)
	if !ok {
		return SessionStatus{}
	}
	status := SessionStatus{Authenticated: true, ExpiresAt: cred.ExpiresAt}
	if status.ExpiresAt.Year() > 9999 {
		// beyond what RFC 3339 can carry, reported as no expiry
		status.ExpiresAt = time.Time{}
	}
	return status
}

func (s *authService) RequireSession(ctx context.Context) error {
	if s.store.IsValid(ctx) {
		return nil
	}
	navigation.RedirectToLogin(s.navigator)
	return utils.NewUserError("Please login first", utils.ErrNotAuthenticated)
}

func (s *authService) RequireGuest(ctx context.Context) error {
	if !s.store.IsValid(ctx) {
		return nil
	}
	s.navigator.NavigateTo(navigation.DashboardPath)
	return utils.NewUserError("Already logged in", utils.ErrAlreadyLoggedIn)
}

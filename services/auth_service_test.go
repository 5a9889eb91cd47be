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
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/tasklist-client/clients/clientmocks"
	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/credentials"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/storage"
	"github.com/wso2/tasklist-client/utils"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func validToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type authFixture struct {
	client  *clientmocks.TasksSvcClientMock
	store   *credentials.Store
	tracker *navigation.Tracker
	service AuthService
}

func newAuthFixture(startPath string) *authFixture {
	client := &clientmocks.TasksSvcClientMock{}
	store := credentials.NewStore(storage.NewMemoryStore())
	tracker := navigation.NewTracker(startPath)
	return &authFixture{
		client:  client,
		store:   store,
		tracker: tracker,
		service: NewAuthService(discardLogger, client, store, tracker),
	}
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("Saves the token and opens the dashboard", func(t *testing.T) {
		f := newAuthFixture(navigation.LoginPath)
		token := validToken(t)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return &taskssvc.LoginResult{Token: token, User: &models.User{Email: creds.Email}}, nil
		}

		user, err := f.service.Login(t.Context(), "  ada@example.test ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.test", user.Email)
		require.Len(t, f.client.LoginCalls(), 1)
		assert.Equal(t, "ada@example.test", f.client.LoginCalls()[0].Creds.Email)

		stored, ok := f.store.Read(t.Context())
		require.True(t, ok)
		assert.Equal(t, token, stored)
		assert.Equal(t, navigation.DashboardPath, f.tracker.CurrentPath())
	})

	t.Run("Missing token is reported", func(t *testing.T) {
		f := newAuthFixture(navigation.LoginPath)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return nil, utils.ErrNoTokenReceived
		}

		_, err := f.service.Login(t.Context(), "ada@example.test", "secret1")
		require.ErrorIs(t, err, utils.ErrNoTokenReceived)
		assert.Equal(t, "No token received", utils.UserMessage(err))
		assert.False(t, f.store.IsValid(t.Context()))
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})

	t.Run("Server message is surfaced", func(t *testing.T) {
		f := newAuthFixture(navigation.LoginPath)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return nil, &requests.HttpError{StatusCode: 401, Body: `{"success":false,"message":"Invalid credentials"}`}
		}

		_, err := f.service.Login(t.Context(), "ada@example.test", "wrong")
		require.ErrorIs(t, err, utils.ErrUnauthorized)
		assert.Equal(t, "Invalid credentials", utils.UserMessage(err))
	})

	t.Run("Empty credentials never reach the server", func(t *testing.T) {
		f := newAuthFixture(navigation.LoginPath)
		_, err := f.service.Login(t.Context(), " ", "")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, f.client.LoginCalls())
	})
}

func TestAuthServiceRegister(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		confirm  string
		message  string
	}{
		{"Missing email", "", "secret1", "secret1", "Email is required"},
		{"Short password", "ada@example.test", "12345", "12345", "Password must be at least 6 characters"},
		{"Mismatched confirmation", "ada@example.test", "secret1", "secret2", "Passwords do not match"},
		{"Short and mismatched reports the mismatch", "ada@example.test", "123", "456", "Passwords do not match"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(navigation.RegisterPath)
			_, err := f.service.Register(t.Context(), tc.email, tc.password, tc.confirm)
			require.ErrorIs(t, err, utils.ErrInvalidInput)
			assert.Equal(t, tc.message, utils.UserMessage(err))
			assert.Empty(t, f.client.RegisterCalls())
		})
	}

	t.Run("Successful registration does not sign in", func(t *testing.T) {
		f := newAuthFixture(navigation.RegisterPath)
		f.client.RegisterFunc = func(ctx context.Context, creds taskssvc.Credentials) (*models.User, error) {
			return &models.User{ID: "1", Email: creds.Email}, nil
		}

		user, err := f.service.Register(t.Context(), "ada@example.test", "secret1", "secret1")
		require.NoError(t, err)
		assert.Equal(t, models.ID("1"), user.ID)
		assert.False(t, f.store.IsValid(t.Context()))
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})

	t.Run("Field errors are surfaced", func(t *testing.T) {
		f := newAuthFixture(navigation.RegisterPath)
		f.client.RegisterFunc = func(ctx context.Context, creds taskssvc.Credentials) (*models.User, error) {
			return nil, &requests.HttpError{StatusCode: 400, Body: `{"errors":[{"message":"Email already in use"}]}`}
		}

		_, err := f.service.Register(t.Context(), "ada@example.test", "secret1", "secret1")
		require.ErrorIs(t, err, utils.ErrBadRequest)
		assert.Equal(t, "Email already in use", utils.UserMessage(err))
	})
}

func TestAuthServiceSession(t *testing.T) {
	t.Run("Logout clears without contacting the server", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		f.store.Save(t.Context(), validToken(t))

		f.service.Logout(t.Context())
		assert.False(t, f.store.IsValid(t.Context()))
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})

	t.Run("Session reports expiry", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		assert.False(t, f.service.Session(t.Context()).Authenticated)

		f.store.Save(t.Context(), validToken(t))
		status := f.service.Session(t.Context())
		assert.True(t, status.Authenticated)
		assert.True(t, status.ExpiresAt.After(time.Now()))
	})

	t.Run("Session with an unrepresentable expiry reports none", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		f.store.Save(t.Context(), "header.eyJleHAiOjFlMTl9.sig")

		status := f.service.Session(t.Context())
		assert.True(t, status.Authenticated)
		assert.True(t, status.ExpiresAt.IsZero())
	})

	t.Run("Protected operations require a session", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		_, err := f.service.CurrentUser(t.Context())
		assert.ErrorIs(t, err, utils.ErrNotAuthenticated)
		assert.Empty(t, f.client.GetMeCalls())
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})

	t.Run("Guest operations refuse a valid session", func(t *testing.T) {
		f := newAuthFixture(navigation.LoginPath)
		f.store.Save(t.Context(), validToken(t))
		err := f.service.RequireGuest(t.Context())
		assert.ErrorIs(t, err, utils.ErrAlreadyLoggedIn)
		assert.Equal(t, navigation.DashboardPath, f.tracker.CurrentPath())
	})

	t.Run("Current user rejected by server reads as expired", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		f.store.Save(t.Context(), validToken(t))
		f.client.GetMeFunc = func(ctx context.Context) (*models.User, error) {
			return nil, &requests.HttpError{StatusCode: 401}
		}

		_, err := f.service.CurrentUser(t.Context())
		require.Error(t, err)
		assert.Equal(t, SessionExpiredMessage, utils.UserMessage(err))
	})

	t.Run("Current user transport failure keeps its cause", func(t *testing.T) {
		f := newAuthFixture(navigation.DashboardPath)
		f.store.Save(t.Context(), validToken(t))
		dialErr := errors.New("dial tcp: connection refused")
		f.client.GetMeFunc = func(ctx context.Context) (*models.User, error) { return nil, dialErr }

		_, err := f.service.CurrentUser(t.Context())
		assert.ErrorIs(t, err, dialErr)
		assert.Equal(t, "Failed to load user", utils.UserMessage(err))
	})
}

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

package credentials

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wso2/tasklist-client/middleware/logger"
	"github.com/wso2/tasklist-client/storage"
)

// TokenKey is the medium key under which the raw token is stored.
const TokenKey = "auth_token"

// Store persists one bearer credential in a key-value medium. Saving a token
// supersedes the previous one.
//
// Store never returns errors: medium failures are logged, unreadable or
// expired tokens are removed and reported as absent.
type Store struct {
	medium storage.KeyValueStore
	key    string
	now    func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithKey overrides the medium key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// NewStore creates a Store on medium.
func NewStore(medium storage.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		medium: medium,
		key:    TokenKey,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores token as is. The issuer is trusted, so no validation happens.
func (s *Store) Save(ctx context.Context, token string) {
	log := logger.GetLogger(ctx)
	if err := s.medium.Set(ctx, s.key, token); err != nil {
		log.Error("credentials: failed to save token", slog.String("error", err.Error()))
		return
	}
	log.Debug("credentials: token saved")
}

// Read returns the stored token if it is present and not expired.
func (s *Store) Read(ctx context.Context) (string, bool) {
	cred, ok := s.Current(ctx)
	if !ok {
		return "", false
	}
	return cred.Raw, true
}

// Current is Read with the parsed expiry. A token that cannot be parsed, has
// no exp claim, or has expired is cleared from the medium.
func (s *Store) Current(ctx context.Context) (*Credential, bool) {
	log := logger.GetLogger(ctx)

	raw, err := s.medium.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		log.Error("credentials: failed to read token", slog.String("error", err.Error()))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	cred, err := ParseCredential(raw)
	if err != nil {
		log.Debug("credentials: stored token is unreadable, clearing", slog.String("error", err.Error()))
		s.Clear(ctx)
		return nil, false
	}
	if cred.State(s.now()) != StateValid {
		log.Info("credentials: stored token expired, clearing",
			slog.String("expires_at", cred.ExpiresAt.Format(time.RFC3339)))
		s.Clear(ctx)
		return nil, false
	}
	return &cred, true
}

// Clear removes the stored token. It is idempotent.
func (s *Store) Clear(ctx context.Context) {
	if err := s.medium.Delete(ctx, s.key); err != nil {
		logger.GetLogger(ctx).Error("credentials: failed to clear token", slog.String("error", err.Error()))
	}
}

// IsValid reports whether a non-expired credential is stored. It is the only
// authentication predicate of the client and never contacts the server.
func (s *Store) IsValid(ctx context.Context) bool {
	_, ok := s.Read(ctx)
	return ok
}

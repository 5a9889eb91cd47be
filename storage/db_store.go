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

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wso2/tasklist-client/models"
)

const (
	dbBackend             = "postgres"
	defaultDBOpTimeout    = 10 * time.Second
	credentialKeyColumn   = "credential_key"
	credentialValueColumn = "credential_value"
)

// DBStore keeps values in the client_credentials table.
type DBStore struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ KeyValueStore = (*DBStore)(nil)

// NewDBStore creates a store on db. Each operation is bounded by timeout; a
// non-positive timeout selects the default of ten seconds.
func NewDBStore(db *gorm.DB, timeout time.Duration) *DBStore {
	if timeout <= 0 {
		timeout = defaultDBOpTimeout
	}
	return &DBStore{db: db, timeout: timeout}
}

func (s *DBStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var row models.StoredCredential
	err := s.db.WithContext(ctx).Where(credentialKeyColumn+" = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", storeError(dbBackend, "get", key, describeDBError(err))
	}
	return row.Value, nil
}

func (s *DBStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := models.StoredCredential{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: credentialKeyColumn}},
		DoUpdates: clause.AssignmentColumns([]string{credentialValueColumn, "updated_at"}),
	}).Create(&row).Error
	return storeError(dbBackend, "set", key, describeDBError(err))
}

func (s *DBStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.WithContext(ctx).Where(credentialKeyColumn+" = ?", key).Delete(&models.StoredCredential{}).Error
	return storeError(dbBackend, "delete", key, describeDBError(err))
}

// describeDBError adds the postgres SQLSTATE to server side errors.
func describeDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("postgres error %s: %w", pgErr.Code, err)
	}
	return err
}

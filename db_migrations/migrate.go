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

package dbmigrations

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// migrationsTable records the applied migration ids.
const migrationsTable = "tasklist_client_migrations"

type migration struct {
	ID       int
	Migrate  func(db *gorm.DB) error
	Rollback func(db *gorm.DB) error
}

// migrations must stay ordered by ID. Applied migrations are never edited;
// schema changes get a new entry.
var migrations = []migration{
	migration001,
}

func gormigrateMigrations() []*gormigrate.Migration {
	out := make([]*gormigrate.Migration, 0, len(migrations))
	for _, m := range migrations {
		out = append(out, &gormigrate.Migration{
			ID:       fmt.Sprintf("%03d", m.ID),
			Migrate:  m.Migrate,
			Rollback: m.Rollback,
		})
	}
	return out
}

// Migrate applies every pending migration to db.
func Migrate(db *gorm.DB) error {
	opts := *gormigrate.DefaultOptions
	opts.TableName = migrationsTable
	m := gormigrate.New(db, &opts, gormigrateMigrations())
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("dbmigrations: %w", err)
	}
	slog.Info("dbmigrations: schema up to date", "latest", strconv.Itoa(migrations[len(migrations)-1].ID))
	return nil
}

func runSQL(db *gorm.DB, statements ...string) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

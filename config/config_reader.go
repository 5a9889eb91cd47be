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

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// configReader reads typed values from the environment and collects every
// problem so they can be reported at once.
type configReader struct {
	errors []error
}

func (r *configReader) readRequiredString(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s is required", key))
	}
	return value
}

func (r *configReader) readOptionalString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func (r *configReader) readOptionalInt64(key string, defaultValue int64) int64 {
	value := r.readNullableInt64(key)
	if value == nil {
		return defaultValue
	}
	return *value
}

func (r *configReader) readNullableInt64(key string) *int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be an integer, got %q", key, raw))
		return nil
	}
	return &value
}

func (r *configReader) readOptionalBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be a boolean, got %q", key, raw))
		return defaultValue
	}
	return value
}

func (r *configReader) err() error {
	if len(r.errors) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(r.errors...))
}

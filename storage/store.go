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

// Package storage provides the key-value media that persist client state
// across process restarts.
//
// Every implementation is safe for concurrent use. Delete of a missing key is
// not an error.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is a persistent string key-value medium.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StoreError describes a failed operation against a medium.
type StoreError struct {
	Backend   string
	Operation string
	Key       string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store: %s %q: %v", e.Backend, e.Operation, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeError(backend, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Backend: backend, Operation: op, Key: key, Err: err}
}

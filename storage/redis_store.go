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

	"github.com/redis/go-redis/v9"
)

const redisBackend = "redis"

// RedisStore keeps values in redis under a common key prefix, so several
// client processes on a host can share one session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ KeyValueStore = (*RedisStore)(nil)

// NewRedisStore creates a store using client. Keys are namespaced by prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", storeError(redisBackend, "get", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return storeError(redisBackend, "set", key, s.client.Set(ctx, s.prefix+key, value, 0).Err())
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return storeError(redisBackend, "delete", key, s.client.Del(ctx, s.prefix+key).Err())
}

/*
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package redisutils

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v9"
)

const (
	minBackoffTime = 20 * time.Millisecond
	maxBackoffTime = 30 * time.Second
	maxLockRetry   = 10
)

type Store struct {
	ctx    context.Context
	rdb    *redis.Client
	locker *redislock.Client
}

func (s *Store) Init(url, password string, useTLS bool) {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	s.ctx = context.Background()
	s.rdb = redis.NewClient(&options)
	s.locker = redislock.New(s.rdb)
}

func (s *Store) GetKey(key string) (string, error) {
	return s.rdb.Get(s.ctx, key).Result()
}

func (s *Store) SetKey(key string, value any, expiration time.Duration) error {
	return s.rdb.Set(s.ctx, key, value, expiration).Err()
}

func (s *Store) DeleteKey(key string) error {
	return s.rdb.Del(s.ctx, key).Err()
}

func (s *Store) ListKeys(pattern string) ([]string, error) {
	return s.rdb.Keys(s.ctx, pattern).Result()
}

func (s *Store) Lock(key string, duration time.Duration) (*redislock.Lock, error) {
	return s.locker.Obtain(s.ctx, key, duration, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.ExponentialBackoff(minBackoffTime, maxBackoffTime), maxLockRetry),
	})
}

func (s *Store) Unlock(lock *redislock.Lock) error {
	if lock != nil {
		return lock.Release(s.ctx)
	}

	return nil
}

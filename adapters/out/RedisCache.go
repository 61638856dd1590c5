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

package out

import (
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"linksentry/pkg/redisutils"
)

type RedisCache struct {
	locks map[string]*redislock.Lock
	store redisutils.Store
}

func NewCache(url, password string, useTLS bool) *RedisCache {
	store := redisutils.Store{}
	store.Init(url, password, useTLS)

	return &RedisCache{
		store: store,
		locks: make(map[string]*redislock.Lock),
	}
}

func (r *RedisCache) Get(key string) (string, error) {
	return r.store.GetKey(key)
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	return r.store.SetKey(key, value, expiration)
}

func (r *RedisCache) Delete(key string) error {
	return r.store.DeleteKey(key)
}

func (r *RedisCache) List(pattern string) ([]string, error) {
	return r.store.ListKeys(pattern)
}

func (r *RedisCache) Lock(key string, duration time.Duration) error {
	lock, err := r.store.Lock(key, duration)
	if err == nil {
		r.locks[key] = lock
	}

	return err
}

func (r *RedisCache) Unlock(key string) error {
	if lock, ok := r.locks[key]; ok {
		delete(r.locks, key)
		return r.store.Unlock(lock)
	}

	return fmt.Errorf("lock not found. key %s", key)
}

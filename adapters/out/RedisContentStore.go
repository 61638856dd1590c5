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
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v9"
	"linksentry/domain/entities"
	"linksentry/domain/ports/out"
	"linksentry/logging"
)

const (
	tipsKeyPrefix = "content:tips:"
	quizKeyPrefix = "content:quiz:"
)

// RedisContentStore serves the curated safety content (tips and quiz
// documents) that editors load into Redis as JSON.
type RedisContentStore struct {
	cache  out.Cache
	logger logging.Logger
}

func NewRedisContentStore(cache out.Cache, logger logging.Logger) *RedisContentStore {
	return &RedisContentStore{cache: cache, logger: logger}
}

func (r *RedisContentStore) GetTips(ctx context.Context, topic string) (entities.TipsDocument, error) {
	var document entities.TipsDocument
	err := r.getDocument(tipsKeyPrefix+topic, &document)

	return document, err
}

func (r *RedisContentStore) GetQuiz(ctx context.Context, topic string) (entities.QuizDocument, error) {
	var document entities.QuizDocument
	err := r.getDocument(quizKeyPrefix+topic, &document)

	return document, err
}

func (r *RedisContentStore) getDocument(key string, document any) error {
	raw, err := r.cache.Get(key)
	if errors.Is(err, redis.Nil) {
		return out.ErrContentNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to fetch content document. key: %s, err: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), document); err != nil {
		r.logger.Errorw("content document is not valid json", "key", key, "error", err)
		return fmt.Errorf("failed to decode content document. key: %s, err: %w", key, err)
	}

	return nil
}

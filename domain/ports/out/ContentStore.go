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
	"errors"
	"linksentry/domain/entities"
)

// ErrContentNotFound reports a missing document; callers fall back to a
// canned apology instead of failing the conversation.
var ErrContentNotFound = errors.New("content document not found")

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_content_store.go -package=mocks -source=ContentStore.go
type ContentStore interface {
	GetTips(ctx context.Context, topic string) (entities.TipsDocument, error)
	GetQuiz(ctx context.Context, topic string) (entities.QuizDocument, error)
}

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

package safety

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"linksentry/domain/entities"
	"linksentry/domain/ports/out"
	"linksentry/logging"
)

const (
	quizSessionKeyPrefix = "quiz-session:"
	defaultSessionTTL    = 30 * time.Minute
	answerLockTTL        = 5 * time.Second
)

var (
	// ErrNoActiveQuiz reports an answer without a running session, either
	// because the quiz was never started or the session expired.
	ErrNoActiveQuiz = errors.New("no active quiz session")

	// ErrSessionMismatch reports an answer carrying a stale session or
	// question id, usually a double tap on an old chat message.
	ErrSessionMismatch = errors.New("quiz session mismatch")
)

// QuizService runs the interactive safety quizzes. Session state lives in
// the cache keyed by chat id, so each chat has at most one quiz in flight
// and abandoned sessions expire on their own.
type QuizService struct {
	content    out.ContentStore
	cache      out.Cache
	sessionTTL time.Duration
	logger     logging.Logger
}

func NewQuizService(content out.ContentStore, cache out.Cache, logger logging.Logger) *QuizService {
	return &QuizService{
		content:    content,
		cache:      cache,
		sessionTTL: defaultSessionTTL,
		logger:     logger,
	}
}

// Start begins a quiz on the given topic, replacing any quiz the chat
// already had in flight, and returns the first question.
func (q *QuizService) Start(ctx context.Context, chatID, topic string) (entities.QuizStep, error) {
	document, err := q.content.GetQuiz(ctx, topic)
	if err != nil {
		return entities.QuizStep{}, err
	}
	if len(document.Questions) == 0 {
		return entities.QuizStep{}, fmt.Errorf("quiz %s has no questions. %w", topic, out.ErrContentNotFound)
	}

	session := entities.QuizSession{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Topic:     topic,
		StartedAt: time.Now().UTC(),
	}
	if err := q.saveSession(session); err != nil {
		return entities.QuizStep{}, err
	}

	q.logger.Infow("quiz started", "chatId", chatID, "topic", topic, "questions", len(document.Questions))

	question := document.Questions[0]
	return entities.QuizStep{
		SessionID:      session.ID,
		Topic:          topic,
		Question:       &question,
		QuestionNumber: 1,
		TotalQuestions: len(document.Questions),
	}, nil
}

// Answer grades one option against the current question, advances the
// session, and returns either the next question or the final summary.
func (q *QuizService) Answer(ctx context.Context, chatID, sessionID, questionID, option string) (entities.QuizStep, error) {
	// Serializes the read-modify-write below; a double-tapped answer loses
	// the lock and is rejected instead of regrading the same question.
	lockKey := answerLockKey(chatID)
	if err := q.cache.Lock(lockKey, answerLockTTL); err != nil {
		return entities.QuizStep{}, fmt.Errorf("another answer for this chat is in flight. %w", ErrSessionMismatch)
	}
	defer func() {
		if err := q.cache.Unlock(lockKey); err != nil {
			q.logger.Warnw("failed to release quiz answer lock", "chatId", chatID, "error", err)
		}
	}()

	session, err := q.loadSession(chatID)
	if err != nil {
		return entities.QuizStep{}, err
	}
	if session.ID != sessionID {
		return entities.QuizStep{}, fmt.Errorf("session %s is not active for this chat. %w", sessionID, ErrSessionMismatch)
	}

	document, err := q.content.GetQuiz(ctx, session.Topic)
	if err != nil {
		return entities.QuizStep{}, err
	}
	if session.QuestionIndex >= len(document.Questions) {
		// The content document shrank under a running session.
		_ = q.cache.Delete(sessionKey(chatID))
		return entities.QuizStep{}, fmt.Errorf("question index %d out of range. %w", session.QuestionIndex, ErrSessionMismatch)
	}

	question := document.Questions[session.QuestionIndex]
	if question.ID != questionID {
		return entities.QuizStep{}, fmt.Errorf("expected answer for question %s. %w", question.ID, ErrSessionMismatch)
	}

	correct := strings.EqualFold(option, question.CorrectOption)
	if correct {
		session.CorrectCount++
	}
	session.QuestionIndex++

	step := entities.QuizStep{
		SessionID:      session.ID,
		Topic:          session.Topic,
		Feedback:       gradeFeedback(question, correct),
		TotalQuestions: len(document.Questions),
	}

	if session.QuestionIndex >= len(document.Questions) {
		if err := q.cache.Delete(sessionKey(chatID)); err != nil {
			q.logger.Errorw("failed to delete quiz session", "chatId", chatID, "error", err)
		}

		step.Finished = true
		step.Summary = fmt.Sprintf("🎉 Quiz Complete! 🎉\nYou answered %d out of %d questions correctly in %s!",
			session.CorrectCount, len(document.Questions), document.Title)

		q.logger.Infow("quiz finished", "chatId", chatID, "topic", session.Topic,
			"correct", session.CorrectCount, "total", len(document.Questions))

		return step, nil
	}

	if err := q.saveSession(session); err != nil {
		return entities.QuizStep{}, err
	}

	next := document.Questions[session.QuestionIndex]
	step.Question = &next
	step.QuestionNumber = session.QuestionIndex + 1

	return step, nil
}

func gradeFeedback(question entities.QuizQuestion, correct bool) string {
	if correct {
		return "✅ Correct!"
	}

	feedback := fmt.Sprintf("❌ Not quite. The correct answer was %s.", question.CorrectOption)
	if question.Explanation != "" {
		feedback = fmt.Sprintf("%s %s", feedback, question.Explanation)
	}

	return feedback
}

func (q *QuizService) saveSession(session entities.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode quiz session. %w", err)
	}

	if err := q.cache.Set(sessionKey(session.ChatID), string(data), q.sessionTTL); err != nil {
		return fmt.Errorf("failed to store quiz session. %w", err)
	}

	return nil
}

func (q *QuizService) loadSession(chatID string) (entities.QuizSession, error) {
	raw, err := q.cache.Get(sessionKey(chatID))
	if err != nil || raw == "" {
		return entities.QuizSession{}, ErrNoActiveQuiz
	}

	var session entities.QuizSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return entities.QuizSession{}, fmt.Errorf("failed to decode quiz session. %w", ErrNoActiveQuiz)
	}

	return session, nil
}

func sessionKey(chatID string) string {
	return quizSessionKeyPrefix + chatID
}

// answerLockKey must differ from sessionKey: the lock is its own redis key
// and would otherwise clobber the session document.
func answerLockKey(chatID string) string {
	return quizSessionKeyPrefix + chatID + ":lock"
}

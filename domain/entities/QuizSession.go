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

package entities

import "time"

// QuizSession tracks one user's progress through a quiz. Sessions live in
// the cache under the chat id, so a user has at most one active quiz.
type QuizSession struct {
	ID            string    `json:"id"`
	ChatID        string    `json:"chat_id"`
	Topic         string    `json:"topic"`
	QuestionIndex int       `json:"question_index"`
	CorrectCount  int       `json:"correct_count"`
	StartedAt     time.Time `json:"started_at"`
}

// QuizStep is what the quiz service hands back after starting a quiz or
// grading an answer: optional feedback on the previous answer plus either
// the next question or the final summary.
type QuizStep struct {
	SessionID      string
	Topic          string
	Feedback       string
	Question       *QuizQuestion
	QuestionNumber int
	TotalQuestions int
	Finished       bool
	Summary        string
}

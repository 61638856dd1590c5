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

type QuizStartRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	Topic  string `json:"topic" validate:"required"`
}

type QuizAnswerRequest struct {
	ChatID     string `json:"chat_id" validate:"required"`
	SessionID  string `json:"session_id" validate:"required,uuid4"`
	QuestionID string `json:"question_id" validate:"required"`
	Option     string `json:"option" validate:"required"`
}

// QuizQuestionPayload carries a question to the client without the correct
// option or its explanation.
type QuizQuestionPayload struct {
	QuestionID string            `json:"question_id"`
	Text       string            `json:"question_text"`
	Options    map[string]string `json:"options"`
}

type QuizStepResponse struct {
	SessionID      string               `json:"session_id,omitempty"`
	Topic          string               `json:"topic,omitempty"`
	Feedback       string               `json:"feedback,omitempty"`
	Question       *QuizQuestionPayload `json:"question,omitempty"`
	QuestionNumber int                  `json:"question_number,omitempty"`
	TotalQuestions int                  `json:"total_questions,omitempty"`
	Finished       bool                 `json:"finished,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	Error          string               `json:"error,omitempty"`
}

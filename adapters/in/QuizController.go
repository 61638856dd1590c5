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

package in

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	adapterentities "linksentry/adapters/entities"
	"linksentry/domain/entities"
	portsout "linksentry/domain/ports/out"
	"linksentry/domain/services/safety"
	"linksentry/logging"
)

type QuizController struct {
	validate    *validator.Validate
	quizService safety.QuizRunner
	logger      logging.Logger
}

func NewQuizController(quizService safety.QuizRunner, logger logging.Logger) QuizController {
	return QuizController{quizService: quizService, logger: logger, validate: validator.New()}
}

func (q *QuizController) StartQuiz(c *fiber.Ctx) error {
	response := adapterentities.QuizStepResponse{}
	request := &adapterentities.QuizStartRequest{}

	if err := c.BodyParser(request); err != nil {
		q.logger.Errorw("Could not parse quiz start request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := q.validate.Struct(request); err != nil {
		q.logger.Errorw("Invalid quiz start request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	step, err := q.quizService.Start(c.Context(), request.ChatID, request.Topic)
	if err != nil {
		if errors.Is(err, portsout.ErrContentNotFound) {
			response.Error = "no quiz available for this topic"
			return c.Status(fiber.StatusNotFound).JSON(response)
		}

		q.logger.Errorw("Failed to start quiz", "chatId", request.ChatID, "topic", request.Topic, "error", err)
		response.Error = "could not start quiz"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	return c.Status(fiber.StatusOK).JSON(quizStepResponse(step))
}

func (q *QuizController) AnswerQuiz(c *fiber.Ctx) error {
	response := adapterentities.QuizStepResponse{}
	request := &adapterentities.QuizAnswerRequest{}

	if err := c.BodyParser(request); err != nil {
		q.logger.Errorw("Could not parse quiz answer request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := q.validate.Struct(request); err != nil {
		q.logger.Errorw("Invalid quiz answer request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	step, err := q.quizService.Answer(c.Context(), request.ChatID, request.SessionID, request.QuestionID, request.Option)
	if err != nil {
		switch {
		case errors.Is(err, safety.ErrNoActiveQuiz):
			response.Error = "no quiz in progress for this chat"
			return c.Status(fiber.StatusNotFound).JSON(response)

		case errors.Is(err, safety.ErrSessionMismatch):
			response.Error = "answer does not match the current question"
			return c.Status(fiber.StatusConflict).JSON(response)

		case errors.Is(err, portsout.ErrContentNotFound):
			response.Error = "quiz content is no longer available"
			return c.Status(fiber.StatusNotFound).JSON(response)

		default:
			q.logger.Errorw("Failed to grade quiz answer", "chatId", request.ChatID, "error", err)
			response.Error = "could not grade answer"

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}
	}

	return c.Status(fiber.StatusOK).JSON(quizStepResponse(step))
}

func quizStepResponse(step entities.QuizStep) adapterentities.QuizStepResponse {
	response := adapterentities.QuizStepResponse{
		SessionID:      step.SessionID,
		Topic:          step.Topic,
		Feedback:       step.Feedback,
		QuestionNumber: step.QuestionNumber,
		TotalQuestions: step.TotalQuestions,
		Finished:       step.Finished,
		Summary:        step.Summary,
	}

	if step.Question != nil {
		response.Question = &adapterentities.QuizQuestionPayload{
			QuestionID: step.Question.ID,
			Text:       step.Question.Text,
			Options:    step.Question.Options,
		}
	}

	return response
}

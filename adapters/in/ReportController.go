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
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	adapterentities "linksentry/adapters/entities"
	"linksentry/domain/services/safety"
	"linksentry/logging"
)

type ReportController struct {
	validate      *validator.Validate
	reportService safety.Reporter
	logger        logging.Logger
}

func NewReportController(reportService safety.Reporter, logger logging.Logger) ReportController {
	return ReportController{reportService: reportService, logger: logger, validate: validator.New()}
}

func (r *ReportController) SubmitReport(c *fiber.Ctx) error {
	response := adapterentities.ReportResponse{}
	request := &adapterentities.ReportRequest{}

	if err := c.BodyParser(request); err != nil {
		r.logger.Errorw("Could not parse report request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := r.validate.Struct(request); err != nil {
		r.logger.Errorw("Invalid report request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	report, err := r.reportService.Submit(c.Context(), request.Platform, request.ProfileRef, request.Reason, request.ReporterID)
	if err != nil {
		r.logger.Errorw("Failed to submit fake profile report", "platform", request.Platform, "error", err)
		response.Error = "could not submit report"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	response.ID = report.ID

	return c.Status(fiber.StatusCreated).JSON(response)
}

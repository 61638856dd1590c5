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
	"linksentry/domain/services/scan"
	"linksentry/logging"
)

type ScanController struct {
	validate    *validator.Validate
	scanService scan.URLScanner
	logger      logging.Logger
}

func NewScanController(scanService scan.URLScanner, logger logging.Logger) ScanController {
	return ScanController{scanService: scanService, logger: logger, validate: validator.New()}
}

// ScanURL runs the full verdict pipeline for one URL. The response is always
// a rendered report; provider failures surface inside the text, not as HTTP
// errors.
func (s *ScanController) ScanURL(c *fiber.Ctx) error {
	response := adapterentities.ScanResponse{}
	request := &adapterentities.ScanRequest{}

	if err := c.BodyParser(request); err != nil {
		s.logger.Errorw("Could not parse scan request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := s.validate.Struct(request); err != nil {
		s.logger.Errorw("Invalid scan request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	response.Report = s.scanService.Scan(c.Context(), request.URL)

	return c.Status(fiber.StatusOK).JSON(response)
}

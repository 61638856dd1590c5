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
	"github.com/gofiber/fiber/v2"
	adapterentities "linksentry/adapters/entities"
	"linksentry/domain/services/safety"
	"linksentry/logging"
)

type SafetyController struct {
	tipsService safety.Advisor
	logger      logging.Logger
}

func NewSafetyController(tipsService safety.Advisor, logger logging.Logger) SafetyController {
	return SafetyController{tipsService: tipsService, logger: logger}
}

// GetTips serves the canned safety content. Unknown topics and missing
// documents come back as regular text, so this endpoint never fails.
func (s *SafetyController) GetTips(c *fiber.Ctx) error {
	topic := c.Params("topic")
	variant := c.Query("variant")

	response := adapterentities.TipsResponse{
		Topic:   topic,
		Variant: variant,
		Text:    s.tipsService.Tips(c.Context(), topic, variant),
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

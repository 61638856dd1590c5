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

package common

import (
	"github.com/gofiber/fiber/v2"
	sentryhttp "linksentry/http"
	"linksentry/logging"
)

const testMaxRequestSize = 1024 * 1024

func CreateFiberAppForTest(handlers []sentryhttp.Handler) *fiber.App {
	fiberConfig := sentryhttp.FiberConfig{
		MaxRequestSize: testMaxRequestSize,
		Profiler:       false,
		RequestLogger: func(c *fiber.Ctx) error {
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: handlers,
	}
	app, err := sentryhttp.CreateFiberApp(fiberConfig, logging.NewDiscardLog())

	if err != nil {
		panic(err)
	}

	return app
}

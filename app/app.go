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

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	adaptersin "linksentry/adapters/in"
	adaptersout "linksentry/adapters/out"
	"linksentry/common"
	"linksentry/config"
	portsout "linksentry/domain/ports/out"
	"linksentry/domain/services/safety"
	"linksentry/domain/services/scan"
	sentryhttp "linksentry/http"
	"linksentry/logging"
	"linksentry/metrics"
	"linksentry/pkg/awsutils"
)

const rateLimiterKey = "virustotal"

func Start(ctx context.Context) error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Enable Datadog tracer
	tracer.Start()
	defer tracer.Stop()

	logger, err := logging.NewZapLogger(appConfig.Scanner.DebugLog)
	if err != nil {
		return err
	}

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope()
		defer metricsClose.Close()
	} else {
		metricsScope, metricsHandler, _ = metrics.NewNoopScope()
	}

	cache := adaptersout.NewCache(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS)
	contentStore := adaptersout.NewRedisContentStore(cache, logger)

	rateLimiter := common.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, common.RateLimitConfig{
		Hour:   appConfig.Scanner.Virustotal.MaxRPH,
		Minute: appConfig.Scanner.Virustotal.MaxRPM,
		Key:    rateLimiterKey,
	})

	threatListScan := adaptersout.NewSafeBrowsingScanner(appConfig.Scanner.SafeBrowsing.APIkey, logger)
	reputationScan := adaptersout.NewVirusTotalScanner(adaptersout.VirusTotalConfig{
		APIKey:        appConfig.Scanner.Virustotal.APIkey,
		PollAttempts:  appConfig.Scanner.Virustotal.PollAttempts,
		PollBaseDelay: time.Duration(appConfig.Scanner.Virustotal.PollBaseDelaySeconds) * time.Second,
		PollDelayStep: time.Duration(appConfig.Scanner.Virustotal.PollDelayStepSeconds) * time.Second,
	}, rateLimiter, common.RealSleeper{}, logger)

	var notifier portsout.Notifier
	if appConfig.Notification.Slack.Webhook != "" {
		notifier = adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID)
	} else {
		logger.Infow("No Slack webhook configured, detections will only be logged")
	}

	archive, err := buildReportArchive(ctx, appConfig.Archive)
	if err != nil {
		return err
	}

	verdictTTL := time.Duration(appConfig.Scanner.CacheTTLHours) * time.Hour
	scanService := scan.NewService(threatListScan, reputationScan, cache, notifier, metricsScope, verdictTTL, logger)
	tipsService := safety.NewTipsService(contentStore, logger)
	quizService := safety.NewQuizService(contentStore, cache, logger)
	reportService := safety.NewReportService(archive, notifier, logger)

	// Controllers
	scanController := adaptersin.NewScanController(scanService, logger)
	safetyController := adaptersin.NewSafetyController(tipsService, logger)
	quizController := adaptersin.NewQuizController(quizService, logger)
	reportController := adaptersin.NewReportController(reportService, logger)

	fiberConfig := sentryhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "ip", c.IP(), "method", c.Method(),
					"url", c.BaseURL(), "path", c.Path(), "response_status", c.Response().StatusCode())
			}
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			if _, err := cache.List("XXXXX"); err != nil {
				logger.Errorw("Failed to connect to the cache.", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Redis not connectable. %s", err))
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: []sentryhttp.Handler{
			{HTTPMethod: "POST", Path: "/scans", HandlerFunc: scanController.ScanURL},
			{HTTPMethod: "GET", Path: "/tips/:topic", HandlerFunc: safetyController.GetTips},
			{HTTPMethod: "POST", Path: "/quizzes", HandlerFunc: quizController.StartQuiz},
			{HTTPMethod: "POST", Path: "/quizzes/answers", HandlerFunc: quizController.AnswerQuiz},
			{HTTPMethod: "POST", Path: "/reports", HandlerFunc: reportController.SubmitReport},
		},
	}

	app, err := sentryhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}

func buildReportArchive(ctx context.Context, cfg config.Archive) (portsout.ReportArchive, error) {
	if cfg.Backend == "s3" {
		s3 := &awsutils.S3{}
		if err := s3.Init(ctx, cfg.Region, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey); err != nil {
			return nil, fmt.Errorf("failed to initialize the report archive. %w", err)
		}

		return adaptersout.NewS3ReportArchive(s3, cfg.Bucket), nil
	}

	return adaptersout.NewLocalReportArchive(afero.NewOsFs(), cfg.Directory), nil
}

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

package scan

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/uber-go/tally/v4"
	"linksentry/domain/entities"
	"linksentry/domain/ports/out"
	"linksentry/logging"
)

const (
	verdictKeyPrefix = "verdict:"
	defaultCacheTTL  = 24 * time.Hour
)

// Service sequences the two providers under a fixed priority policy: the
// fast threat-list check first, the slow reputation analysis only when the
// first one comes back clean. A confirmed threat or a hard failure from the
// primary is returned as-is and never masked by the secondary.
type Service struct {
	threatList out.ThreatListScan
	reputation out.ReputationScan
	cache      out.Cache
	notifier   out.Notifier
	metrics    tally.Scope
	cacheTTL   time.Duration
	logger     logging.Logger
}

func NewService(threatList out.ThreatListScan, reputation out.ReputationScan, cache out.Cache,
	notifier out.Notifier, metrics tally.Scope, cacheTTL time.Duration, logger logging.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &Service{
		threatList: threatList,
		reputation: reputation,
		cache:      cache,
		notifier:   notifier,
		metrics:    metrics,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Scan is the single entry point the chat layer calls. It always returns a
// non-empty report text and never an error; provider failures arrive here
// already converted to ProviderError verdicts.
func (s *Service) Scan(ctx context.Context, rawURL string) string {
	cacheKey := verdictKeyPrefix + base64.RawURLEncoding.EncodeToString([]byte(rawURL))
	if cached, err := s.cache.Get(cacheKey); err == nil && cached != "" {
		s.metrics.Counter("scan_cache_hits").Inc(1)
		s.logger.Debugw("verdict served from cache", "url", rawURL)

		return cached
	}

	s.metrics.Counter("scan_requests").Inc(1)

	text, cacheable := s.compose(ctx, rawURL)
	if text == "" {
		// Should be unreachable, every branch renders something.
		text = "❌ The scan could not be completed. Please try again later."
		cacheable = false
	}

	if cacheable {
		if err := s.cache.Set(cacheKey, text, s.cacheTTL); err != nil {
			s.logger.Errorw("failed to cache verdict", "url", rawURL, "error", err)
		}
	}

	return text
}

func (s *Service) compose(ctx context.Context, rawURL string) (text string, cacheable bool) {
	primary := s.threatList.CheckURL(ctx, rawURL)
	s.countVerdict(primary)

	switch primary.Level {
	case entities.VerdictMalicious:
		s.notifyDetection(rawURL, primary)
		return RenderReport(primary), true

	case entities.VerdictProviderError:
		s.logger.Warnw("primary provider failed", "url", rawURL, "error", primary.Err, "detail", primary.Detail)
		return RenderReport(primary), false

	case entities.VerdictSafe:
		secondary := s.reputation.AnalyzeURL(ctx, rawURL)
		s.countVerdict(secondary)

		if secondary.Level == entities.VerdictMalicious {
			// Second opinion wins on danger.
			s.notifyDetection(rawURL, secondary)
			return RenderReport(secondary), true
		}

		return ComposeReports(primary, secondary), secondary.Level == entities.VerdictSafe

	default:
		// Defensive branch: the primary taxonomy has no other levels today.
		s.logger.Errorw("unexpected primary verdict level", "url", rawURL, "level", primary.Level)
		secondary := s.reputation.AnalyzeURL(ctx, rawURL)
		s.countVerdict(secondary)

		return RenderReport(secondary), false
	}
}

func (s *Service) notifyDetection(rawURL string, report entities.VerdictReport) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.NotifyDetection(rawURL, report); err != nil {
		s.logger.Errorw("failed to notify detection", "url", rawURL, "error", err)
	}
}

func (s *Service) countVerdict(report entities.VerdictReport) {
	s.metrics.Tagged(map[string]string{
		"provider": report.Provider,
		"level":    report.Level.String(),
	}).Counter("provider_verdicts").Inc(1)
}

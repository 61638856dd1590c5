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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v4"
	"linksentry/domain/entities"
	"linksentry/logging"
	"linksentry/mocks"
)

const testURL = "http://example.com/landing"

var errCacheMiss = errors.New("cache miss")

type orchestratorFixture struct {
	threatList *mocks.MockThreatListScan
	reputation *mocks.MockReputationScan
	cache      *mocks.MockCache
	notifier   *mocks.MockNotifier
	service    *Service
}

func newOrchestratorFixture(t *testing.T) orchestratorFixture {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	f := orchestratorFixture{
		threatList: mocks.NewMockThreatListScan(mockCtrl),
		reputation: mocks.NewMockReputationScan(mockCtrl),
		cache:      mocks.NewMockCache(mockCtrl),
		notifier:   mocks.NewMockNotifier(mockCtrl),
	}
	f.service = NewService(f.threatList, f.reputation, f.cache, f.notifier, tally.NoopScope, 0, logging.NewDiscardLog())

	return f
}

func verdictCacheKey(url string) string {
	return verdictKeyPrefix + base64.RawURLEncoding.EncodeToString([]byte(url))
}

func safeGSBReport() entities.VerdictReport {
	return entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictSafe,
		Detail:   "No known malware, phishing, or unwanted software detected.",
	}
}

func TestPrimaryMaliciousShortCircuitsSecondary(t *testing.T) {
	f := newOrchestratorFixture(t)

	primary := entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictMalicious,
		Detail:   "Detected as: Malware.",
	}

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(primary)
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), gomock.Any()).Times(0)
	f.notifier.EXPECT().NotifyDetection(testURL, primary).Return(nil)
	f.cache.EXPECT().Set(verdictCacheKey(testURL), gomock.Any(), gomock.Any()).Return(nil)

	text := f.service.Scan(context.Background(), testURL)

	assert.Contains(t, text, "DANGER")
	assert.Contains(t, text, "Detected as: Malware.")
	assert.Contains(t, text, "DO NOT CLICK")
}

func TestPrimaryFailureIsNeverMasked(t *testing.T) {
	f := newOrchestratorFixture(t)

	primary := entities.ErrorReport("Google Safe Browsing", entities.ErrConfiguration,
		"Google Safe Browsing API key not configured. Cannot scan URL.")

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(primary)
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), gomock.Any()).Times(0)
	// A failure verdict is not cached and not notified.
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	text := f.service.Scan(context.Background(), testURL)

	assert.Contains(t, text, "API key not configured")
}

func TestBothSafeKeepsBothOpinionsInOrder(t *testing.T) {
	f := newOrchestratorFixture(t)

	secondary := entities.VerdictReport{
		Provider:      "VirusTotal",
		Level:         entities.VerdictSafe,
		Detail:        "60 engines reported this URL as harmless. No threats found.",
		ReferenceLink: "https://www.virustotal.com/gui/url/abc/detection",
	}

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(safeGSBReport())
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), testURL).Return(secondary)
	f.cache.EXPECT().Set(verdictCacheKey(testURL), gomock.Any(), gomock.Any()).Return(nil)

	text := f.service.Scan(context.Background(), testURL)

	assert.Contains(t, text, "Google Safe Browsing")
	assert.Contains(t, text, "--- VirusTotal Scan ---")
	assert.Contains(t, text, "60 engines reported this URL as harmless")
	assert.Less(t, strings.Index(text, "Google Safe Browsing"), strings.Index(text, "VirusTotal"))
}

func TestSecondaryMaliciousOverridesPrimarySafe(t *testing.T) {
	f := newOrchestratorFixture(t)

	secondary := entities.VerdictReport{
		Provider: "VirusTotal",
		Level:    entities.VerdictMalicious,
		Detail:   "3 engines flagged this URL as malicious and 0 as suspicious.",
	}

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(safeGSBReport())
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), testURL).Return(secondary)
	f.notifier.EXPECT().NotifyDetection(testURL, secondary).Return(nil)
	f.cache.EXPECT().Set(verdictCacheKey(testURL), gomock.Any(), gomock.Any()).Return(nil)

	text := f.service.Scan(context.Background(), testURL)

	// The danger overrides, the stale "safe" half never reaches the user.
	assert.Contains(t, text, "DANGER")
	assert.NotContains(t, text, "appears **safe** according to Google Safe Browsing")
}

func TestSafeThenInconclusiveIsComposedButNotCached(t *testing.T) {
	f := newOrchestratorFixture(t)

	secondary := entities.VerdictReport{
		Provider:      "VirusTotal",
		Level:         entities.VerdictInconclusive,
		Detail:        "The VirusTotal scan timed out. The report might still be processing, check it later.",
		ReferenceLink: "https://www.virustotal.com/gui/url/abc/detection",
	}

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(safeGSBReport())
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), testURL).Return(secondary)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	text := f.service.Scan(context.Background(), testURL)

	assert.Contains(t, text, "--- VirusTotal Scan ---")
	assert.Contains(t, text, "timed out")
	assert.Contains(t, text, "https://www.virustotal.com/gui/url/abc/detection")
}

func TestVerdictCachedWithConfiguredTTL(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	threatList := mocks.NewMockThreatListScan(mockCtrl)
	reputation := mocks.NewMockReputationScan(mockCtrl)
	cache := mocks.NewMockCache(mockCtrl)

	service := NewService(threatList, reputation, cache, nil, tally.NoopScope, 6*time.Hour, logging.NewDiscardLog())

	primary := entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictMalicious,
		Detail:   "Detected as: Malware.",
	}

	cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(primary)
	cache.EXPECT().Set(verdictCacheKey(testURL), gomock.Any(), 6*time.Hour).Return(nil)

	service.Scan(context.Background(), testURL)
}

func TestCacheHitSkipsProviders(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("cached verdict text", nil)
	f.threatList.EXPECT().CheckURL(gomock.Any(), gomock.Any()).Times(0)
	f.reputation.EXPECT().AnalyzeURL(gomock.Any(), gomock.Any()).Times(0)

	text := f.service.Scan(context.Background(), testURL)

	assert.Equal(t, "cached verdict text", text)
}

func TestNotificationFailureDoesNotAffectVerdict(t *testing.T) {
	f := newOrchestratorFixture(t)

	primary := entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictMalicious,
		Detail:   "Detected as: Social Engineering.",
	}

	f.cache.EXPECT().Get(verdictCacheKey(testURL)).Return("", errCacheMiss)
	f.threatList.EXPECT().CheckURL(gomock.Any(), testURL).Return(primary)
	f.notifier.EXPECT().NotifyDetection(testURL, primary).Return(errors.New("slack down"))
	f.cache.EXPECT().Set(verdictCacheKey(testURL), gomock.Any(), gomock.Any()).Return(nil)

	text := f.service.Scan(context.Background(), testURL)

	assert.Contains(t, text, "Detected as: Social Engineering.")
}

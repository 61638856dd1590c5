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

package out

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	adapterentities "linksentry/adapters/entities"
	"linksentry/common"
	"linksentry/domain/entities"
	"linksentry/logging"
)

const (
	virusTotalProvider = "VirusTotal"
	virusTotalAPIBase  = "https://www.virustotal.com/api/v3"
	virusTotalGUIBase  = "https://www.virustotal.com/gui/url/"
	virusTotalTimeout  = 45 * time.Second

	defaultPollAttempts  = 10
	defaultPollBaseDelay = 5 * time.Second
	defaultPollDelayStep = 2 * time.Second
)

// URLIdentifier is the content-derived identifier VirusTotal uses to address
// a URL without resubmission: base64url of the URL bytes, no padding.
func URLIdentifier(rawURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(rawURL))
}

// PublicReportLink points at the provider's public report page for a URL.
// It is built locally and is valid whether or not a scan ever ran.
func PublicReportLink(rawURL string) string {
	return fmt.Sprintf("%s%s/detection", virusTotalGUIBase, URLIdentifier(rawURL))
}

type analysisStatus int8

const (
	analysisQueued analysisStatus = iota
	analysisRunning
	analysisCompleted
	analysisUnknown
)

// analysisJob is the in-flight state of one submitted analysis. It lives for
// a single AnalyzeURL call and is driven only by the polling loop.
type analysisJob struct {
	id      string
	status  analysisStatus
	attempt int
}

type VirusTotalConfig struct {
	APIKey        string
	Timeout       time.Duration
	PollAttempts  int
	PollBaseDelay time.Duration
	PollDelayStep time.Duration
}

type VirusTotalScanner struct {
	apiKey        string
	client        *http.Client
	rateLimiter   common.RateLimiter
	sleeper       common.Sleeper
	pollAttempts  int
	pollBaseDelay time.Duration
	pollDelayStep time.Duration
	logger        logging.Logger
}

func NewVirusTotalScanner(cfg VirusTotalConfig, rateLimiter common.RateLimiter, sleeper common.Sleeper, logger logging.Logger) *VirusTotalScanner {
	if cfg.Timeout == 0 {
		cfg.Timeout = virusTotalTimeout
	}
	if cfg.PollAttempts == 0 {
		cfg.PollAttempts = defaultPollAttempts
	}
	if cfg.PollBaseDelay == 0 {
		cfg.PollBaseDelay = defaultPollBaseDelay
	}
	if cfg.PollDelayStep == 0 {
		cfg.PollDelayStep = defaultPollDelayStep
	}

	if cfg.APIKey == "" {
		logger.Infow("VirusTotal scanner was not properly configured, every analysis will report a configuration error")
	}

	return &VirusTotalScanner{
		apiKey:        cfg.APIKey,
		client:        &http.Client{Timeout: cfg.Timeout},
		rateLimiter:   rateLimiter,
		sleeper:       sleeper,
		pollAttempts:  cfg.PollAttempts,
		pollBaseDelay: cfg.PollBaseDelay,
		pollDelayStep: cfg.PollDelayStep,
		logger:        logger,
	}
}

func (v *VirusTotalScanner) IsAvailable() bool {
	return v.apiKey != ""
}

// AnalyzeURL runs the three-stage lookup: existing report by identifier,
// submission, then bounded polling with linearly increasing backoff.
func (v *VirusTotalScanner) AnalyzeURL(ctx context.Context, rawURL string) entities.VerdictReport {
	if v.apiKey == "" {
		return entities.ErrorReport(virusTotalProvider, entities.ErrConfiguration,
			"VirusTotal API key not configured for secondary scan.")
	}

	if !v.rateLimiter.IsRequestAllowed() {
		return entities.ErrorReport(virusTotalProvider, entities.ErrAuthorization,
			"VirusTotal request budget exhausted. Try again in a few minutes.")
	}

	reportLink := PublicReportLink(rawURL)

	report, done := v.lookupExisting(ctx, rawURL, reportLink)
	if done {
		return report
	}

	job, report, done := v.submit(ctx, rawURL, reportLink)
	if done {
		return report
	}

	return v.poll(ctx, job, reportLink)
}

// lookupExisting fetches a prior analysis by the content-derived identifier.
// done=false means "no usable report yet, go submit".
func (v *VirusTotalScanner) lookupExisting(ctx context.Context, rawURL, reportLink string) (entities.VerdictReport, bool) {
	res, err := v.get(ctx, fmt.Sprintf("%s/urls/%s", virusTotalAPIBase, URLIdentifier(rawURL)))
	if err != nil {
		return entities.ErrorReport(virusTotalProvider, entities.ErrTransport,
			"Could not connect to VirusTotal. Check connectivity and try again."), true
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var result adapterentities.VirusTotalResponse
		if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
			return entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
				"VirusTotal returned an unreadable report. Please try again later."), true
		}

		if stats := result.Data.Attributes.LastAnalysisStats; stats != nil {
			return entities.ReportFromCounts(virusTotalProvider, engineCounts(stats), reportLink), true
		}

		// Report exists but carries no statistics yet, submit a fresh scan.
		return entities.VerdictReport{}, false

	case http.StatusNotFound:
		return entities.VerdictReport{}, false

	case http.StatusUnauthorized:
		return entities.ErrorReport(virusTotalProvider, entities.ErrAuthorization,
			"VirusTotal rejected the API key."), true

	case http.StatusForbidden:
		return entities.ErrorReport(virusTotalProvider, entities.ErrAuthorization,
			"VirusTotal quota exceeded."), true

	default:
		return entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			fmt.Sprintf("VirusTotal report lookup failed with HTTP status %d.", res.StatusCode)), true
	}
}

// submit posts the raw URL for a new analysis. done=true carries a terminal
// report; otherwise the returned job is ready for polling.
func (v *VirusTotalScanner) submit(ctx context.Context, rawURL, reportLink string) (analysisJob, entities.VerdictReport, bool) {
	form := url.Values{"url": {rawURL}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/urls", virusTotalAPIBase), strings.NewReader(form.Encode()))
	if err != nil {
		return analysisJob{}, entities.ErrorReport(virusTotalProvider, entities.ErrClientRequest,
			"Could not build the VirusTotal submission for this URL."), true
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	v.setAuthHeaders(req)

	res, err := v.client.Do(req)
	if err != nil {
		return analysisJob{}, entities.ErrorReport(virusTotalProvider, entities.ErrTransport,
			"Could not connect to VirusTotal. Check connectivity and try again."), true
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest {
		return analysisJob{}, v.submissionRejected(res, reportLink), true
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return analysisJob{}, entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			fmt.Sprintf("VirusTotal submission failed with HTTP status %d.", res.StatusCode)), true
	}

	var result adapterentities.VirusTotalResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return analysisJob{}, entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			"VirusTotal returned an unreadable submission response."), true
	}

	if result.Data.ID == "" {
		return analysisJob{}, entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			"Could not initiate a VirusTotal scan: no analysis identifier returned."), true
	}

	return analysisJob{id: result.Data.ID, status: analysisQueued}, entities.VerdictReport{}, false
}

// submissionRejected maps the provider's 400 sub-errors. A malformed URL is
// definitive; a "URL already known" rejection still has a public report page
// worth pointing at.
func (v *VirusTotalScanner) submissionRejected(res *http.Response, reportLink string) entities.VerdictReport {
	var result adapterentities.VirusTotalResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil || result.Error == nil {
		return entities.ErrorReport(virusTotalProvider, entities.ErrClientRequest,
			"VirusTotal rejected the URL submission.")
	}

	switch {
	case result.Error.Code == "InvalidArgumentError" && strings.Contains(strings.ToLower(result.Error.Message), "canonicalize url"):
		report := entities.ErrorReport(virusTotalProvider, entities.ErrClientRequest,
			"VirusTotal could not process this URL format.")
		report.ReferenceLink = reportLink

		return report

	case result.Error.Code == "BadRequestError" && strings.Contains(result.Error.Message, "Wrong URL id"):
		return entities.VerdictReport{
			Provider:      virusTotalProvider,
			Level:         entities.VerdictInconclusive,
			Detail:        "VirusTotal could not initiate a new scan for this common URL. Its existing public report has the details.",
			ReferenceLink: reportLink,
		}

	default:
		return entities.ErrorReport(virusTotalProvider, entities.ErrClientRequest,
			fmt.Sprintf("Issue submitting to VirusTotal: %s", result.Error.Message))
	}
}

// poll drives the analysis job until it completes, errors out, or the
// attempt budget runs dry. Each attempt waits base+attempt*step before
// querying, a linear backoff tuned to typical provider analysis latency.
func (v *VirusTotalScanner) poll(ctx context.Context, job analysisJob, reportLink string) entities.VerdictReport {
	for job.attempt = 0; job.attempt < v.pollAttempts; job.attempt++ {
		delay := v.pollBaseDelay + time.Duration(job.attempt)*v.pollDelayStep
		if err := v.sleeper.Sleep(ctx, delay); err != nil {
			return entities.ErrorReport(virusTotalProvider, entities.ErrTransport,
				"VirusTotal scan was cancelled before it finished.")
		}

		report, done := v.pollOnce(ctx, &job, reportLink)
		if done {
			return report
		}
	}

	return stillProcessingReport("The VirusTotal scan timed out. The report might still be processing, check it later.", reportLink)
}

func (v *VirusTotalScanner) pollOnce(ctx context.Context, job *analysisJob, reportLink string) (entities.VerdictReport, bool) {
	lastAttempt := job.attempt == v.pollAttempts-1

	res, err := v.get(ctx, fmt.Sprintf("%s/analyses/%s", virusTotalAPIBase, job.id))
	if err != nil {
		return entities.ErrorReport(virusTotalProvider, entities.ErrTransport,
			"Lost the connection to VirusTotal while waiting for the scan."), true
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		// handled below

	case res.StatusCode == http.StatusNotFound:
		// Analysis not yet visible. Keep the job queued and retry.
		if lastAttempt {
			return stillProcessingReport("The VirusTotal scan was initiated but the report is still processing. Check it later.", reportLink), true
		}

		return entities.VerdictReport{}, false

	default:
		return entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			fmt.Sprintf("VirusTotal report fetch failed with HTTP status %d.", res.StatusCode)), true
	}

	var result adapterentities.VirusTotalResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			"VirusTotal returned an unreadable analysis report."), true
	}

	if result.Error != nil {
		return entities.ErrorReport(virusTotalProvider, entities.ErrProviderProtocol,
			fmt.Sprintf("Error fetching the VirusTotal report: %s", result.Error.Message)), true
	}

	switch result.Data.Attributes.Status {
	case "completed":
		job.status = analysisCompleted
		return entities.ReportFromCounts(virusTotalProvider, engineCounts(result.Data.Attributes.Stats), reportLink), true

	case "queued", "running":
		if result.Data.Attributes.Status == "running" {
			job.status = analysisRunning
		}

		if lastAttempt {
			return stillProcessingReport(
				fmt.Sprintf("The VirusTotal scan was initiated and the report is still processing (%s). Check it later.", result.Data.Attributes.Status),
				reportLink), true
		}

		return entities.VerdictReport{}, false

	default:
		job.status = analysisUnknown
		return entities.VerdictReport{
			Provider:      virusTotalProvider,
			Level:         entities.VerdictInconclusive,
			Detail:        fmt.Sprintf("The VirusTotal report has an unexpected status: %q. The full report has the details.", result.Data.Attributes.Status),
			ReferenceLink: reportLink,
		}, true
	}
}

func (v *VirusTotalScanner) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for virustotal. %w", err)
	}
	v.setAuthHeaders(req)

	return v.client.Do(req)
}

func (v *VirusTotalScanner) setAuthHeaders(req *http.Request) {
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-apikey", v.apiKey)
}

func stillProcessingReport(detail, reportLink string) entities.VerdictReport {
	return entities.VerdictReport{
		Provider:      virusTotalProvider,
		Level:         entities.VerdictInconclusive,
		Detail:        detail,
		ReferenceLink: reportLink,
	}
}

func engineCounts(stats *adapterentities.VirusTotalAnalysisStats) entities.EngineCounts {
	if stats == nil {
		return entities.EngineCounts{}
	}

	return entities.EngineCounts{
		Malicious:  stats.Malicious,
		Suspicious: stats.Suspicious,
		Harmless:   stats.Harmless,
		Undetected: stats.Undetected,
	}
}

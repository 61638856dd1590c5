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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	adapterentities "linksentry/adapters/entities"
	"linksentry/domain/entities"
	"linksentry/logging"
)

const (
	safeBrowsingProvider   = "Google Safe Browsing"
	safeBrowsingFindURL    = "https://safebrowsing.googleapis.com/v4/threatMatches:find"
	safeBrowsingTimeout    = 10 * time.Second
	safeBrowsingClientID   = "linksentry"
	safeBrowsingClientVers = "1.0.0"
)

// threatTypes is the fixed category batch sent with every lookup.
var threatTypes = []string{"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE", "POTENTIALLY_HARMFUL_APPLICATION"}

type SafeBrowsingScanner struct {
	apiKey string
	client *http.Client
	logger logging.Logger
}

func NewSafeBrowsingScanner(apiKey string, logger logging.Logger) *SafeBrowsingScanner {
	if apiKey == "" {
		logger.Infow("Safe Browsing scanner was not properly configured, every lookup will report a configuration error")
	}

	return &SafeBrowsingScanner{
		apiKey: apiKey,
		client: &http.Client{Timeout: safeBrowsingTimeout},
		logger: logger,
	}
}

func (s *SafeBrowsingScanner) IsAvailable() bool {
	return s.apiKey != ""
}

func (s *SafeBrowsingScanner) CheckURL(ctx context.Context, url string) entities.VerdictReport {
	if s.apiKey == "" {
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrConfiguration,
			"Google Safe Browsing API key not configured. Cannot scan URL.")
	}

	payload := adapterentities.SafeBrowsingRequest{
		Client: adapterentities.SafeBrowsingClientInfo{
			ClientID:      safeBrowsingClientID,
			ClientVersion: safeBrowsingClientVers,
		},
		ThreatInfo: adapterentities.SafeBrowsingThreatInfo{
			ThreatTypes:      threatTypes,
			PlatformTypes:    []string{"ANY_PLATFORM"},
			ThreatEntryTypes: []string{"URL"},
			ThreatEntries:    []adapterentities.SafeBrowsingThreatEntry{{URL: url}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrClientRequest,
			"Could not build the Safe Browsing request for this URL.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", safeBrowsingFindURL, s.apiKey), bytes.NewReader(body))
	if err != nil {
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrClientRequest,
			"Could not build the Safe Browsing request for this URL.")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrTransport,
			"Could not connect to Google Safe Browsing. Check connectivity and try again.")
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return s.verdictFromResponse(res)
	case http.StatusBadRequest:
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrClientRequest,
			"Invalid URL for Google Safe Browsing. Check the link format.")
	case http.StatusUnauthorized, http.StatusForbidden:
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrAuthorization,
			"Access denied by Google Safe Browsing. Check the API key and daily quota.")
	case http.StatusNotFound:
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrProviderProtocol,
			"Invalid Safe Browsing API endpoint. Check the scanner configuration.")
	default:
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrProviderProtocol,
			fmt.Sprintf("Google Safe Browsing scan failed with HTTP status %d. Please try again later.", res.StatusCode))
	}
}

func (s *SafeBrowsingScanner) verdictFromResponse(res *http.Response) entities.VerdictReport {
	var result adapterentities.SafeBrowsingResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		s.logger.Errorw("failed to decode safe browsing response", "error", err)
		return entities.ErrorReport(safeBrowsingProvider, entities.ErrProviderProtocol,
			"Google Safe Browsing returned an unreadable response. Please try again later.")
	}

	if len(result.Matches) == 0 {
		return entities.VerdictReport{
			Provider: safeBrowsingProvider,
			Level:    entities.VerdictSafe,
			Detail:   "No known malware, phishing, or unwanted software detected.",
		}
	}

	return entities.VerdictReport{
		Provider: safeBrowsingProvider,
		Level:    entities.VerdictMalicious,
		Detail:   fmt.Sprintf("Detected as: %s.", formatThreatTypes(result.Matches)),
	}
}

// formatThreatTypes deduplicates, sorts and humanizes the matched threat
// type names ("SOCIAL_ENGINEERING" becomes "Social Engineering").
func formatThreatTypes(matches []adapterentities.SafeBrowsingMatch) string {
	seen := make(map[string]struct{})
	for _, match := range matches {
		seen[match.ThreatType] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		words := strings.Split(strings.ToLower(strings.ReplaceAll(name, "_", " ")), " ")
		for j, word := range words {
			if word != "" {
				words[j] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		names[i] = strings.Join(words, " ")
	}

	return strings.Join(names, ", ")
}

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

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFromCounts(t *testing.T) {
	tests := []struct {
		name     string
		counts   EngineCounts
		expected Verdict
	}{
		{
			name:     "any detection wins over harmless majority",
			counts:   EngineCounts{Malicious: 2, Suspicious: 1, Harmless: 50, Undetected: 10},
			expected: VerdictMalicious,
		},
		{
			name:     "suspicious alone is malicious",
			counts:   EngineCounts{Suspicious: 1, Harmless: 80},
			expected: VerdictMalicious,
		},
		{
			name:     "harmless votes without detections",
			counts:   EngineCounts{Harmless: 60, Undetected: 5},
			expected: VerdictSafe,
		},
		{
			name:     "only undetected is inconclusive",
			counts:   EngineCounts{Undetected: 70},
			expected: VerdictInconclusive,
		},
		{
			name:     "all zero is inconclusive",
			counts:   EngineCounts{},
			expected: VerdictInconclusive,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			report := ReportFromCounts("VirusTotal", tt.counts, "https://example.com/report")

			assert.Equal(t, tt.expected, report.Level)
			assert.Equal(t, "VirusTotal", report.Provider)
			assert.Equal(t, "https://example.com/report", report.ReferenceLink)
			assert.NotEmpty(t, report.Detail)
			assert.NoError(t, report.Err)
		})
	}
}

func TestReportFromCountsKeepsStatistics(t *testing.T) {
	report := ReportFromCounts("VirusTotal", EngineCounts{Malicious: 2, Suspicious: 1, Harmless: 50, Undetected: 10}, "")

	assert.Equal(t, "2 engines flagged this URL as malicious and 1 as suspicious.", report.Detail)
	assert.Equal(t, &EngineCounts{Malicious: 2, Suspicious: 1, Harmless: 50, Undetected: 10}, report.Counts)
}

func TestErrorReportClassification(t *testing.T) {
	report := ErrorReport("Google Safe Browsing", ErrAuthorization, "Access denied.")

	assert.Equal(t, VerdictProviderError, report.Level)
	assert.ErrorIs(t, report.Err, ErrAuthorization)
	assert.Equal(t, "Access denied.", report.Detail)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "malicious", VerdictMalicious.String())
	assert.Equal(t, "safe", VerdictSafe.String())
	assert.Equal(t, "inconclusive", VerdictInconclusive.String())
	assert.Equal(t, "provider_error", VerdictProviderError.String())
}

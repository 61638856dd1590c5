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
	"testing"

	"github.com/stretchr/testify/assert"
	"linksentry/domain/entities"
)

func TestRenderMaliciousReport(t *testing.T) {
	report := entities.VerdictReport{
		Provider:      "VirusTotal",
		Level:         entities.VerdictMalicious,
		Detail:        "3 engines flagged this URL as malicious and 1 as suspicious.",
		ReferenceLink: "https://www.virustotal.com/gui/url/abc/detection",
	}

	text := RenderReport(report)

	assert.Contains(t, text, "🚨 **DANGER! This URL is highly malicious!** 🚨")
	assert.Contains(t, text, "Reported by VirusTotal.")
	assert.Contains(t, text, "🛑 **DO NOT CLICK THIS LINK!**")
	assert.Contains(t, text, "View the full report: https://www.virustotal.com/gui/url/abc/detection")
}

func TestRenderSafeReport(t *testing.T) {
	report := entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictSafe,
		Detail:   "No known malware, phishing, or unwanted software detected.",
	}

	text := RenderReport(report)

	assert.Contains(t, text, "appears **safe** according to Google Safe Browsing")
	assert.Contains(t, text, "No known malware")
	assert.NotContains(t, text, "View the full report")
}

func TestRenderProviderErrorHidesReferenceLink(t *testing.T) {
	report := entities.ErrorReport("VirusTotal", entities.ErrTransport,
		"Could not connect to VirusTotal. Check connectivity and try again.")
	report.ReferenceLink = "https://www.virustotal.com/gui/url/abc/detection"

	text := RenderReport(report)

	assert.Contains(t, text, "❌ Could not connect to VirusTotal.")
	// A failure message must not advertise a report page that may not exist.
	assert.NotContains(t, text, "View the full report")
}

func TestComposeReportsKeepsOrderAndSeparator(t *testing.T) {
	primary := entities.VerdictReport{
		Provider: "Google Safe Browsing",
		Level:    entities.VerdictSafe,
		Detail:   "No known malware, phishing, or unwanted software detected.",
	}
	secondary := entities.VerdictReport{
		Provider: "VirusTotal",
		Level:    entities.VerdictInconclusive,
		Detail:   "No engine reported a detection (70 undetected). Exercise caution with new or unknown links.",
	}

	text := ComposeReports(primary, secondary)

	assert.Contains(t, text, "--- VirusTotal Scan ---")
	assert.Contains(t, text, "Exercise caution")
	assert.Less(t, 0, len(text))
}

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
	"fmt"
	"strings"

	"linksentry/domain/entities"
)

// RenderReport turns a verdict into the chat message shown to the user.
// This is the only place report text is produced; everything upstream works
// on the structured verdict.
func RenderReport(report entities.VerdictReport) string {
	var b strings.Builder

	switch report.Level {
	case entities.VerdictMalicious:
		b.WriteString("🚨 **DANGER! This URL is highly malicious!** 🚨\n")
		b.WriteString(fmt.Sprintf("%s Reported by %s.", report.Detail, report.Provider))
		b.WriteString("\n\n🛑 **DO NOT CLICK THIS LINK!**")

	case entities.VerdictSafe:
		b.WriteString(fmt.Sprintf("✅ This URL appears **safe** according to %s.\n", report.Provider))
		b.WriteString(report.Detail)

	case entities.VerdictInconclusive:
		b.WriteString(fmt.Sprintf("ℹ️ %s", report.Detail))

	default:
		b.WriteString(fmt.Sprintf("❌ %s", report.Detail))
	}

	if report.ReferenceLink != "" && report.Level != entities.VerdictProviderError {
		b.WriteString(fmt.Sprintf("\n\nView the full report: %s", report.ReferenceLink))
	}

	return b.String()
}

// ComposeReports keeps both opinions when neither is alarming: the primary
// verdict, a separator naming the secondary provider, and its text.
func ComposeReports(primary, secondary entities.VerdictReport) string {
	return fmt.Sprintf("%s\n\n--- %s Scan ---\n%s",
		RenderReport(primary), secondary.Provider, RenderReport(secondary))
}

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

import "fmt"

type Verdict int8

const (
	VerdictProviderError Verdict = iota
	VerdictMalicious
	VerdictSafe
	VerdictInconclusive
)

func (v Verdict) String() string {
	switch v {
	case VerdictMalicious:
		return "malicious"
	case VerdictSafe:
		return "safe"
	case VerdictInconclusive:
		return "inconclusive"
	case VerdictProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// EngineCounts holds the per-engine detection statistics returned by
// providers that aggregate multiple analysis engines.
type EngineCounts struct {
	Malicious  int
	Suspicious int
	Harmless   int
	Undetected int
}

// VerdictReport is the normalized outcome of a single provider lookup.
// Control flow in the orchestrator depends only on Level; Detail and
// ReferenceLink are rendered into user text at the very end.
type VerdictReport struct {
	Provider      string
	Level         Verdict
	Detail        string
	ReferenceLink string
	Counts        *EngineCounts
	// Err classifies a ProviderError outcome; nil for the three verdicts.
	Err error
}

// ReportFromCounts maps engine statistics to a verdict. Any positive
// detection wins over any number of harmless votes: a missed threat costs
// more than an extra warning.
func ReportFromCounts(provider string, counts EngineCounts, referenceLink string) VerdictReport {
	report := VerdictReport{
		Provider:      provider,
		ReferenceLink: referenceLink,
		Counts:        &counts,
	}

	switch {
	case counts.Malicious+counts.Suspicious > 0:
		report.Level = VerdictMalicious
		report.Detail = fmt.Sprintf("%d engines flagged this URL as malicious and %d as suspicious.", counts.Malicious, counts.Suspicious)
	case counts.Harmless > 0:
		report.Level = VerdictSafe
		report.Detail = fmt.Sprintf("%d engines reported this URL as harmless. No threats found.", counts.Harmless)
	default:
		report.Level = VerdictInconclusive
		report.Detail = fmt.Sprintf("No engine reported a detection (%d undetected). Exercise caution with new or unknown links.", counts.Undetected)
	}

	return report
}

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

// Wire format of the VirusTotal v3 URL endpoints. Optional fields are
// pointers so that "statistics absent" is distinguishable from "all zero".

type VirusTotalResponse struct {
	Data  VirusTotalData   `json:"data"`
	Error *VirusTotalError `json:"error,omitempty"`
}

type VirusTotalData struct {
	ID         string               `json:"id"`
	Type       string               `json:"type,omitempty"`
	Attributes VirusTotalAttributes `json:"attributes"`
}

type VirusTotalAttributes struct {
	Status string `json:"status,omitempty"`
	// LastAnalysisStats is filled when fetching an existing URL report
	LastAnalysisStats *VirusTotalAnalysisStats `json:"last_analysis_stats,omitempty"`
	// Stats is filled by the analyses endpoint
	Stats *VirusTotalAnalysisStats `json:"stats,omitempty"`
}

type VirusTotalAnalysisStats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
}

type VirusTotalError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

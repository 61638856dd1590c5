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

// Wire format of the Safe Browsing v4 threatMatches:find endpoint.

type SafeBrowsingRequest struct {
	Client     SafeBrowsingClientInfo `json:"client"`
	ThreatInfo SafeBrowsingThreatInfo `json:"threatInfo"`
}

type SafeBrowsingClientInfo struct {
	ClientID      string `json:"clientId"`
	ClientVersion string `json:"clientVersion"`
}

type SafeBrowsingThreatInfo struct {
	ThreatTypes      []string                  `json:"threatTypes"`
	PlatformTypes    []string                  `json:"platformTypes"`
	ThreatEntryTypes []string                  `json:"threatEntryTypes"`
	ThreatEntries    []SafeBrowsingThreatEntry `json:"threatEntries"`
}

type SafeBrowsingThreatEntry struct {
	URL string `json:"url"`
}

type SafeBrowsingResponse struct {
	Matches []SafeBrowsingMatch `json:"matches"`
}

type SafeBrowsingMatch struct {
	ThreatType      string `json:"threatType"`
	PlatformType    string `json:"platformType,omitempty"`
	ThreatEntryType string `json:"threatEntryType,omitempty"`
}

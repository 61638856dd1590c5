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

// ScanRequest deliberately accepts any non-empty string: the providers have
// their own canonicalization errors, and those produce a more useful report
// than a 400 would.
type ScanRequest struct {
	URL string `json:"url" validate:"required"`
}

type ScanResponse struct {
	Report string `json:"report,omitempty"`
	Error  string `json:"error,omitempty"`
}

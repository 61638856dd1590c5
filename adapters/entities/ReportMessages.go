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

type ReportRequest struct {
	Platform   string `json:"platform" validate:"required,oneof=facebook instagram whatsapp other"`
	ProfileRef string `json:"profile_ref" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	ReporterID string `json:"reporter_id,omitempty"`
}

type ReportResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

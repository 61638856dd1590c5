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

import "time"

// FakeProfileReport is a user-submitted report about a suspected fake
// account on some platform. Reports are archived verbatim for review.
type FakeProfileReport struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	ProfileRef string    `json:"profile_ref"`
	Reason     string    `json:"reason"`
	ReporterID string    `json:"reporter_id"`
	CreatedAt  time.Time `json:"created_at"`
}

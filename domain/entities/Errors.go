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

import "errors"

// Provider failure taxonomy. Clients wrap these so callers (and tests) can
// classify a ProviderError report without parsing its message.
var (
	ErrConfiguration    = errors.New("provider credential not configured")
	ErrClientRequest    = errors.New("provider rejected the request")
	ErrAuthorization    = errors.New("provider denied access")
	ErrTransport        = errors.New("provider unreachable")
	ErrProviderProtocol = errors.New("unexpected provider response")
)

// ErrorReport converts a provider failure into a report instead of letting
// the error cross the client boundary.
func ErrorReport(provider string, err error, detail string) VerdictReport {
	return VerdictReport{
		Provider: provider,
		Level:    VerdictProviderError,
		Detail:   detail,
		Err:      err,
	}
}

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

package metrics

import (
	"io"
	"net/http"

	"github.com/uber-go/tally/v4"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewNoopScope keeps the wiring identical when metrics are disabled.
func NewNoopScope() (tally.Scope, http.Handler, io.Closer) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return tally.NoopScope, handler, nopCloser{}
}

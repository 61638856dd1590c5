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

package out

import (
	"context"
	"linksentry/domain/entities"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_url_scan.go -package=mocks -source=URLScan.go

// ThreatListScan is the fast primary lookup: one synchronous request against
// a curated threat list. It never returns an error; failures come back as a
// ProviderError report.
type ThreatListScan interface {
	IsAvailable() bool
	CheckURL(ctx context.Context, url string) entities.VerdictReport
}

// ReputationScan is the slow secondary lookup: fetch an existing analysis by
// the content-derived URL identifier, or submit the URL and poll until the
// analysis completes or the attempt budget runs out.
type ReputationScan interface {
	IsAvailable() bool
	AnalyzeURL(ctx context.Context, url string) entities.VerdictReport
}

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
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"linksentry/domain/entities"
	"linksentry/pkg/awsutils"
)

// S3ReportArchive persists fake-profile reports as one JSON object per
// report, keyed by submission date for later review batches.
type S3ReportArchive struct {
	s3     *awsutils.S3
	bucket string
}

func NewS3ReportArchive(s3 *awsutils.S3, bucket string) *S3ReportArchive {
	return &S3ReportArchive{s3: s3, bucket: bucket}
}

func (a *S3ReportArchive) Store(ctx context.Context, report entities.FakeProfileReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report %s. %w", report.ID, err)
	}

	key := fmt.Sprintf("reports/%s/%s.json", report.CreatedAt.UTC().Format("2006-01-02"), report.ID)
	if err := a.s3.Upload(ctx, bytes.NewReader(data), a.bucket, key); err != nil {
		return fmt.Errorf("failed to archive report %s. %w", report.ID, err)
	}

	return nil
}

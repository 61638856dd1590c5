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

package safety

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"linksentry/domain/entities"
	"linksentry/domain/ports/out"
	"linksentry/logging"
)

// ReportService accepts fake-profile reports, archives them for the review
// team, and pings the notification channel. Archiving is the source of
// truth; a failed notification is logged but never fails the submission.
type ReportService struct {
	archive  out.ReportArchive
	notifier out.Notifier
	logger   logging.Logger
}

func NewReportService(archive out.ReportArchive, notifier out.Notifier, logger logging.Logger) *ReportService {
	return &ReportService{archive: archive, notifier: notifier, logger: logger}
}

func (r *ReportService) Submit(ctx context.Context, platform, profileRef, reason, reporterID string) (entities.FakeProfileReport, error) {
	report := entities.FakeProfileReport{
		ID:         uuid.NewString(),
		Platform:   platform,
		ProfileRef: profileRef,
		Reason:     reason,
		ReporterID: reporterID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.archive.Store(ctx, report); err != nil {
		return entities.FakeProfileReport{}, fmt.Errorf("failed to store fake profile report. %w", err)
	}

	if r.notifier != nil {
		if err := r.notifier.NotifyFakeProfile(report); err != nil {
			r.logger.Errorw("failed to notify fake profile report", "reportId", report.ID, "error", err)
		}
	}

	r.logger.Infow("fake profile report submitted", "reportId", report.ID, "platform", platform)

	return report, nil
}

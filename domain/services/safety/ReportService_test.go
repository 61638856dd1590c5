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
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"linksentry/domain/entities"
	"linksentry/logging"
	"linksentry/mocks"
)

func newReportFixture(t *testing.T) (*mocks.MockReportArchive, *mocks.MockNotifier, *ReportService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	archive := mocks.NewMockReportArchive(mockCtrl)
	notifier := mocks.NewMockNotifier(mockCtrl)

	return archive, notifier, NewReportService(archive, notifier, logging.NewDiscardLog())
}

func TestSubmitReportArchivesAndNotifies(t *testing.T) {
	archive, notifier, service := newReportFixture(t)

	var stored entities.FakeProfileReport
	archive.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, report entities.FakeProfileReport) error {
			stored = report
			return nil
		})
	notifier.EXPECT().NotifyFakeProfile(gomock.Any()).Return(nil)

	report, err := service.Submit(context.Background(), "instagram", "@fake_account", "impersonation", "user-7")

	assert.NoError(t, err)
	_, parseErr := uuid.Parse(report.ID)
	assert.NoError(t, parseErr)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Equal(t, "instagram", report.Platform)
	assert.Equal(t, "@fake_account", report.ProfileRef)
	assert.Equal(t, "impersonation", report.Reason)
	assert.Equal(t, "user-7", report.ReporterID)
	assert.Equal(t, report, stored)
}

func TestSubmitReportFailsWhenArchiveFails(t *testing.T) {
	archive, notifier, service := newReportFixture(t)

	archive.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("bucket unavailable"))
	notifier.EXPECT().NotifyFakeProfile(gomock.Any()).Times(0)

	_, err := service.Submit(context.Background(), "facebook", "profile-url", "scamming", "")

	assert.Error(t, err)
}

func TestSubmitReportSwallowsNotificationFailure(t *testing.T) {
	archive, notifier, service := newReportFixture(t)

	archive.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().NotifyFakeProfile(gomock.Any()).Return(errors.New("slack down"))

	report, err := service.Submit(context.Background(), "whatsapp", "+5511999999999", "fraud", "user-9")

	assert.NoError(t, err)
	assert.NotEmpty(t, report.ID)
}

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

package in

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapterentities "linksentry/adapters/entities"
	"linksentry/common"
	"linksentry/domain/entities"
	sentryhttp "linksentry/http"
	"linksentry/logging"
	"linksentry/mocks"
)

func createReportApp(t *testing.T) (*mocks.MockReporter, *fiber.App) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockReporter := mocks.NewMockReporter(mockCtrl)
	reportController := NewReportController(mockReporter, logging.NewDiscardLog())

	handlers := []sentryhttp.Handler{
		{HTTPMethod: "POST", Path: "/reports", HandlerFunc: reportController.SubmitReport},
	}

	return mockReporter, common.CreateFiberAppForTest(handlers)
}

func postReport(t *testing.T, app *fiber.App, body string) (int, adapterentities.ReportResponse) {
	t.Helper()

	request := httptest.NewRequest("POST", "/v1/reports", strings.NewReader(body))
	request.Header.Add("Content-type", "application/json")

	httpResponse, err := app.Test(request, -1)
	require.NoError(t, err)
	defer httpResponse.Body.Close()

	var reportResponse adapterentities.ReportResponse
	decoder := json.NewDecoder(httpResponse.Body)
	require.NoError(t, decoder.Decode(&reportResponse))

	return httpResponse.StatusCode, reportResponse
}

func TestSubmitReportCreated(t *testing.T) {
	mockReporter, app := createReportApp(t)

	mockReporter.EXPECT().Submit(gomock.Any(), "instagram", "@fake_account", "impersonation", "user-7").
		Return(entities.FakeProfileReport{ID: "8a79b8a1-9a5f-42cf-bb6d-3d4a1f2b9c01"}, nil)

	body := `{"platform":"instagram","profile_ref":"@fake_account","reason":"impersonation","reporter_id":"user-7"}`
	status, reportResponse := postReport(t, app, body)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "8a79b8a1-9a5f-42cf-bb6d-3d4a1f2b9c01", reportResponse.ID)
	assert.Empty(t, reportResponse.Error)
}

func TestSubmitReportValidation(t *testing.T) {
	mockReporter, app := createReportApp(t)
	mockReporter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		TestName string
		Body     string
	}{
		{TestName: "unknown platform", Body: `{"platform":"myspace","profile_ref":"x","reason":"y"}`},
		{TestName: "missing profile ref", Body: `{"platform":"facebook","reason":"y"}`},
		{TestName: "missing reason", Body: `{"platform":"facebook","profile_ref":"x"}`},
		{TestName: "invalid body type", Body: "invalid json"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.TestName, func(t *testing.T) {
			status, reportResponse := postReport(t, app, test.Body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Empty(t, reportResponse.ID)
			assert.NotEmpty(t, reportResponse.Error)
		})
	}
}

func TestSubmitReportServiceFailure(t *testing.T) {
	mockReporter, app := createReportApp(t)

	mockReporter.EXPECT().Submit(gomock.Any(), "facebook", "profile-url", "scamming", "").
		Return(entities.FakeProfileReport{}, assert.AnError)

	body := `{"platform":"facebook","profile_ref":"profile-url","reason":"scamming"}`
	status, reportResponse := postReport(t, app, body)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "could not submit report", reportResponse.Error)
}

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
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"linksentry/domain/entities"
)

func TestLocalArchiveWritesReportAsJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	archive := NewLocalReportArchive(fs, "/var/reports")

	report := entities.FakeProfileReport{
		ID:         "8a79b8a1-9a5f-42cf-bb6d-3d4a1f2b9c01",
		Platform:   "instagram",
		ProfileRef: "@fake_account",
		Reason:     "impersonation",
		ReporterID: "user-7",
		CreatedAt:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	err := archive.Store(context.Background(), report)
	require.NoError(t, err)

	path := "/var/reports/2024-03-15/8a79b8a1-9a5f-42cf-bb6d-3d4a1f2b9c01.json"
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var stored entities.FakeProfileReport
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, report, stored)
}

func TestLocalArchiveGroupsReportsByDay(t *testing.T) {
	fs := afero.NewMemMapFs()
	archive := NewLocalReportArchive(fs, "reports")

	first := entities.FakeProfileReport{
		ID:        "aaaa1111-0000-4000-8000-000000000001",
		Platform:  "facebook",
		CreatedAt: time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC),
	}
	second := entities.FakeProfileReport{
		ID:        "aaaa1111-0000-4000-8000-000000000002",
		Platform:  "facebook",
		CreatedAt: time.Date(2024, 3, 16, 0, 1, 0, 0, time.UTC),
	}

	require.NoError(t, archive.Store(context.Background(), first))
	require.NoError(t, archive.Store(context.Background(), second))

	firstExists, _ := afero.Exists(fs, "reports/2024-03-15/aaaa1111-0000-4000-8000-000000000001.json")
	secondExists, _ := afero.Exists(fs, "reports/2024-03-16/aaaa1111-0000-4000-8000-000000000002.json")
	assert.True(t, firstExists)
	assert.True(t, secondExists)
}

func TestLocalArchiveFailsOnReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	archive := NewLocalReportArchive(fs, "reports")

	report := entities.FakeProfileReport{
		ID:        "aaaa1111-0000-4000-8000-000000000003",
		CreatedAt: time.Now().UTC(),
	}

	err := archive.Store(context.Background(), report)

	assert.Error(t, err)
}

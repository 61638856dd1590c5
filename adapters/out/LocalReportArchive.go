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
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"linksentry/domain/entities"
)

const defaultDirPermission = 0755

// LocalReportArchive is the filesystem fallback for deployments without an
// object store. Backed by afero so tests can run against a memory fs.
type LocalReportArchive struct {
	fs      afero.Fs
	baseDir string
}

func NewLocalReportArchive(fs afero.Fs, baseDir string) *LocalReportArchive {
	return &LocalReportArchive{fs: fs, baseDir: baseDir}
}

func (a *LocalReportArchive) Store(ctx context.Context, report entities.FakeProfileReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report %s. %w", report.ID, err)
	}

	dir := filepath.Join(a.baseDir, report.CreatedAt.UTC().Format("2006-01-02"))
	if err := a.fs.MkdirAll(dir, defaultDirPermission); err != nil {
		return fmt.Errorf("failed to create archive directory %s. %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.json", report.ID))
	if err := afero.WriteFile(a.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to archive report %s. %w", report.ID, err)
	}

	return nil
}

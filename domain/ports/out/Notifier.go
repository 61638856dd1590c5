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

import "linksentry/domain/entities"

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_notifier.go -package=mocks -source=Notifier.go

// Notifier pushes noteworthy events to the security channel. Notification
// failures are logged and swallowed; they never affect the user-facing flow.
type Notifier interface {
	NotifyDetection(url string, report entities.VerdictReport) error
	NotifyFakeProfile(report entities.FakeProfileReport) error
}

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
	"fmt"

	"github.com/slack-go/slack"
	"linksentry/domain/entities"
)

const notifierUsername = "linksentry"

// SlackNotifier pushes detections and fake-profile reports to the security
// team channel through an incoming webhook.
type SlackNotifier struct {
	webhook   string
	channelID string
}

func NewSlackNotifier(webhook, channelID string) *SlackNotifier {
	return &SlackNotifier{webhook: webhook, channelID: channelID}
}

func (s *SlackNotifier) NotifyDetection(url string, report entities.VerdictReport) error {
	message := fmt.Sprintf("Malicious URL reported by %s\nURL: %s\nDetail: %s", report.Provider, url, report.Detail)
	if report.ReferenceLink != "" {
		message = fmt.Sprintf("%s\nReport: %s", message, report.ReferenceLink)
	}

	return s.send(message)
}

func (s *SlackNotifier) NotifyFakeProfile(report entities.FakeProfileReport) error {
	message := fmt.Sprintf("New fake profile report %s\nPlatform: %s\nProfile: %s\nReason: %s",
		report.ID, report.Platform, report.ProfileRef, report.Reason)

	return s.send(message)
}

func (s *SlackNotifier) send(message string) error {
	msg := slack.WebhookMessage{
		Username: notifierUsername,
		Channel:  s.channelID,
		Text:     message,
	}

	return slack.PostWebhook(s.webhook, &msg)
}

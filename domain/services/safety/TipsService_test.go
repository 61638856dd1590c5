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
	"github.com/stretchr/testify/assert"
	"linksentry/domain/entities"
	"linksentry/logging"
	"linksentry/mocks"
)

func privacyDocument() entities.TipsDocument {
	return entities.TipsDocument{
		Tips:           "Use strong passwords and two-factor authentication.",
		Facebook:       "Review your Facebook privacy checkup.",
		Instagram:      "Set your Instagram account to private.",
		Whatsapp:       "Enable two-step verification in WhatsApp.",
		Passwords:      "Never reuse a password across sites.",
		AppPermissions: "Audit app permissions monthly.",
	}
}

func newTipsFixture(t *testing.T) (*mocks.MockContentStore, *TipsService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	content := mocks.NewMockContentStore(mockCtrl)

	return content, NewTipsService(content, logging.NewDiscardLog())
}

func TestPrivacyTipsVariants(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		expected string
	}{
		{name: "general by default", variant: "", expected: "Use strong passwords"},
		{name: "general explicitly", variant: VariantGeneral, expected: "Use strong passwords"},
		{name: "facebook", variant: VariantFacebook, expected: "Facebook privacy checkup"},
		{name: "instagram", variant: VariantInstagram, expected: "account to private"},
		{name: "whatsapp", variant: VariantWhatsapp, expected: "two-step verification"},
		{name: "passwords", variant: VariantPasswords, expected: "Never reuse a password"},
		{name: "app permissions", variant: VariantAppPermissions, expected: "Audit app permissions"},
		{name: "unknown variant falls back to general", variant: "tiktok", expected: "Use strong passwords"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			content, service := newTipsFixture(t)
			content.EXPECT().GetTips(gomock.Any(), "privacy_tips").Return(privacyDocument(), nil)

			text := service.Tips(context.Background(), TopicPrivacy, tt.variant)

			assert.Contains(t, text, tt.expected)
		})
	}
}

func TestFakeProfileTips(t *testing.T) {
	content, service := newTipsFixture(t)
	content.EXPECT().GetTips(gomock.Any(), "fake_profile_tips").Return(
		entities.TipsDocument{Tips: "Check the account age and photo history."}, nil)

	text := service.Tips(context.Background(), TopicFakeProfile, "")

	assert.Contains(t, text, "Spotting fake profiles is key!")
	assert.Contains(t, text, "Check the account age and photo history.")
}

func TestScamTips(t *testing.T) {
	content, service := newTipsFixture(t)
	content.EXPECT().GetTips(gomock.Any(), "scam_tips").Return(
		entities.TipsDocument{Tips: "If it sounds too good to be true, it is."}, nil)

	text := service.Tips(context.Background(), TopicScam, "")

	assert.Contains(t, text, "Scams are tricky.")
	assert.Contains(t, text, "too good to be true")
}

func TestMissingContentDegradesToApology(t *testing.T) {
	content, service := newTipsFixture(t)
	content.EXPECT().GetTips(gomock.Any(), "privacy_tips").Return(entities.TipsDocument{}, errors.New("redis down"))

	text := service.Tips(context.Background(), TopicPrivacy, "")

	assert.Equal(t, tipsUnavailable, text)
}

func TestEmptySectionDegradesToApology(t *testing.T) {
	content, service := newTipsFixture(t)
	content.EXPECT().GetTips(gomock.Any(), "privacy_tips").Return(entities.TipsDocument{Tips: "general only"}, nil)

	text := service.Tips(context.Background(), TopicPrivacy, VariantFacebook)

	assert.Equal(t, tipsUnavailable, text)
}

func TestUnknownTopic(t *testing.T) {
	content, service := newTipsFixture(t)
	content.EXPECT().GetTips(gomock.Any(), "gardening").Return(entities.TipsDocument{Tips: "water plants"}, nil)

	text := service.Tips(context.Background(), "gardening", "")

	assert.Contains(t, text, "I don't have tips on that topic yet.")
}

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

	"linksentry/domain/entities"
	"linksentry/domain/ports/out"
	"linksentry/logging"
)

const (
	TopicPrivacy     = "privacy"
	TopicFakeProfile = "fake_profile"
	TopicScam        = "scam"

	VariantGeneral        = "general"
	VariantFacebook       = "facebook"
	VariantInstagram      = "instagram"
	VariantWhatsapp       = "whatsapp"
	VariantPasswords      = "passwords"
	VariantAppPermissions = "app_permissions"

	tipsUnavailable = "Sorry, I couldn't find detailed tips on that right now. Please try again later. 😔"
)

// TipsService answers the canned safety-tips requests from the content
// store. A missing or broken document degrades to an apology, never an error.
type TipsService struct {
	content out.ContentStore
	logger  logging.Logger
}

func NewTipsService(content out.ContentStore, logger logging.Logger) *TipsService {
	return &TipsService{content: content, logger: logger}
}

// Tips returns the text for a topic. For the privacy topic, variant selects
// a platform-specific section; an empty variant returns the general tips.
func (s *TipsService) Tips(ctx context.Context, topic, variant string) string {
	document, err := s.content.GetTips(ctx, topicDocumentID(topic))
	if err != nil {
		s.logger.Errorw("failed to fetch tips document", "topic", topic, "error", err)
		return tipsUnavailable
	}

	switch topic {
	case TopicPrivacy:
		return privacyTips(document, variant)

	case TopicFakeProfile:
		if document.Tips == "" {
			return tipsUnavailable
		}
		return fmt.Sprintf("Spotting fake profiles is key! Here are some things to look for: 🕵️\n\n%s", document.Tips)

	case TopicScam:
		if document.Tips == "" {
			return tipsUnavailable
		}
		return fmt.Sprintf("Scams are tricky. Here's what you need to know: 🚨\n\n%s", document.Tips)

	default:
		return "I don't have tips on that topic yet. Try 'privacy', 'fake_profile', or 'scam'."
	}
}

func privacyTips(document entities.TipsDocument, variant string) string {
	var section, label string

	switch variant {
	case "", VariantGeneral:
		section, label = document.Tips, "general privacy"
	case VariantFacebook:
		section, label = document.Facebook, "Facebook"
	case VariantInstagram:
		section, label = document.Instagram, "Instagram"
	case VariantWhatsapp:
		section, label = document.Whatsapp, "WhatsApp"
	case VariantPasswords:
		section, label = document.Passwords, "password"
	case VariantAppPermissions:
		section, label = document.AppPermissions, "app permission"
	default:
		// Unknown variants fall back to the general section instead of
		// failing the conversation.
		section, label = document.Tips, "general privacy"
	}

	if section == "" {
		return tipsUnavailable
	}

	return fmt.Sprintf("Here are some %s tips to keep you safe: 🔒\n\n%s", label, section)
}

func topicDocumentID(topic string) string {
	switch topic {
	case TopicPrivacy:
		return "privacy_tips"
	case TopicFakeProfile:
		return "fake_profile_tips"
	case TopicScam:
		return "scam_tips"
	default:
		return topic
	}
}

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

package entities

// TipsDocument is one safety-tips entry of the content store. Platform
// specific fields are optional; only the privacy document fills them.
type TipsDocument struct {
	Tips           string `json:"tips"`
	Facebook       string `json:"facebook_tips,omitempty"`
	Instagram      string `json:"instagram_tips,omitempty"`
	Whatsapp       string `json:"whatsapp_tips,omitempty"`
	Passwords      string `json:"password_tips,omitempty"`
	AppPermissions string `json:"app_permission_tips,omitempty"`
}

type QuizQuestion struct {
	ID            string            `json:"question_id"`
	Text          string            `json:"question_text"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option"`
	Explanation   string            `json:"explanation,omitempty"`
}

type QuizDocument struct {
	Topic     string         `json:"topic"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

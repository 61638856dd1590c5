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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 3000
	defaultMaxRequestSize = 1048576

	defaultVirusTotalMaxRPM     = 4
	defaultVirusTotalMaxRPH     = 20
	defaultPollAttempts         = 10
	defaultPollBaseDelaySeconds = 5
	defaultPollDelayStepSeconds = 2

	defaultCacheTTLHours = 24
)

type AppConfig struct {
	Scanner      Scanner
	Redis        Redis
	Notification Notification
	Archive      Archive
	HTTPServer   HTTPServer
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Metrics           bool
	MaxRequestSize    int
	Port              int
}

type Scanner struct {
	SafeBrowsing  SafeBrowsing
	Virustotal    VirusTotal
	CacheTTLHours int
	DebugLog      bool
}

type SafeBrowsing struct {
	APIkey string
}

type VirusTotal struct {
	APIkey               string
	MaxRPM               int
	MaxRPH               int
	PollAttempts         int
	PollBaseDelaySeconds int
	PollDelayStepSeconds int
}

type Redis struct {
	URL      string
	Password string
	UseTLS   bool
}

type Notification struct {
	Slack Slack
}

type Slack struct {
	ChannelID string
	Webhook   string
}

// Archive selects where fake profile reports are persisted. Backend is
// either "s3" or "local". Endpoint and static credentials are only used
// against local stand-ins like MinIO.
type Archive struct {
	Backend   string
	Bucket    string
	Directory string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Scanner: Scanner{
			Virustotal: VirusTotal{
				MaxRPM:               defaultVirusTotalMaxRPM,
				MaxRPH:               defaultVirusTotalMaxRPH,
				PollAttempts:         defaultPollAttempts,
				PollBaseDelaySeconds: defaultPollBaseDelaySeconds,
				PollDelayStepSeconds: defaultPollDelayStepSeconds,
			},
			CacheTTLHours: defaultCacheTTLHours,
		},
		Archive: Archive{
			Backend:   "local",
			Directory: "/app/data/reports",
			Region:    "us-east-1",
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Redis.URL == "" {
		return fmt.Errorf("no Redis URL specified")
	}

	if config.Archive.Backend != "s3" && config.Archive.Backend != "local" {
		return fmt.Errorf("unknown archive backend %q", config.Archive.Backend)
	}

	if config.Archive.Backend == "s3" && config.Archive.Bucket == "" {
		return fmt.Errorf("no archive bucket specified")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/data/")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// The whole configuration can come from the environment, so a missing
	// config file is not an error.
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))

	// Accept the provider key names the deployment secrets already use.
	_ = v.BindEnv("scanner/safebrowsing/apikey", "SCANNER_SAFEBROWSING_APIKEY", "GOOGLE_SAFE_BROWSE_API_KEY")
	_ = v.BindEnv("scanner/virustotal/apikey", "SCANNER_VIRUSTOTAL_APIKEY", "VIRUSTOTAL_API_KEY")

	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}

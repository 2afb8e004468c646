/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "time"

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AppConfig struct {
	LoadingScreenDelayMs int `yaml:"loading_screen_delay_ms"`
	PostSwipeDelayMs     int `yaml:"post_swipe_delay_ms"`
}

type TelegramConfig struct {
	BotToken        string `yaml:"bot_token"`
	InitDataTTLMins int    `yaml:"init_data_ttl_mins"`
}

// DevUserConfig is the placeholder identity used when the host platform
// supplies no user (standalone/dev mode).
type DevUserConfig struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	Username  string `yaml:"username"`
}

type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Log      LogConfig      `yaml:"log"`
	App      AppConfig      `yaml:"app"`
	Telegram TelegramConfig `yaml:"telegram"`
	DevUser  DevUserConfig  `yaml:"dev_user"`
}

// LoadingScreenDelay returns the fixed time the loading screen stays visible
// before the onboarding flow starts in standalone mode.
func (c *Config) LoadingScreenDelay() time.Duration {
	return time.Duration(c.App.LoadingScreenDelayMs) * time.Millisecond
}

// PostSwipeDelay returns the pause between a completed swipe and fetching
// the next candidate.
func (c *Config) PostSwipeDelay() time.Duration {
	return time.Duration(c.App.PostSwipeDelayMs) * time.Millisecond
}

// InitDataTTL returns how long a Telegram init data payload is accepted
// after its auth date. Zero disables the expiry check.
func (c *Config) InitDataTTL() time.Duration {
	return time.Duration(c.Telegram.InitDataTTLMins) * time.Minute
}

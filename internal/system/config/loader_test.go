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

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "12345:secret")
	path := writeConfigFile(t, `
backend:
  base_url: https://backend.test

log:
  log_level: debug

app:
  loading_screen_delay_ms: 100
  post_swipe_delay_ms: 50

telegram:
  bot_token: ${TEST_BOT_TOKEN}
  init_data_ttl_mins: 30
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://backend.test", cfg.Backend.BaseURL)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	assert.Equal(t, "12345:secret", cfg.Telegram.BotToken)
	assert.Equal(t, 100*time.Millisecond, cfg.LoadingScreenDelay())
	assert.Equal(t, 50*time.Millisecond, cfg.PostSwipeDelay())
	assert.Equal(t, 30*time.Minute, cfg.InitDataTTL())
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
backend:
  base_url: https://backend.test
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://backend.test", cfg.Backend.BaseURL)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.Equal(t, 1500, cfg.App.LoadingScreenDelayMs)
	assert.Equal(t, int64(123456789), cfg.DevUser.ID)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "backend: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	appConfig = nil

	cfg := GetConfig()

	assert.Equal(t, "https://qe-flame.vercel.app", cfg.Backend.BaseURL)
	assert.Equal(t, "Тест", cfg.DevUser.FirstName)
	assert.Equal(t, "test_user", cfg.DevUser.Username)
}

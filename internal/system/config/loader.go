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

	"gopkg.in/yaml.v2"
)

var appConfig *Config

// LoadConfig reads the deployment file, expands ${ENV_VAR} references and
// sets the package-level configuration.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	config := defaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, err
	}

	appConfig = config
	return appConfig, nil
}

// GetConfig returns the loaded configuration, falling back to defaults when
// LoadConfig was never called (tests, standalone runs without a file).
func GetConfig() *Config {
	if appConfig == nil {
		appConfig = defaultConfig()
	}
	return appConfig
}

func defaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "https://qe-flame.vercel.app",
		},
		Log: LogConfig{
			LogLevel: "info",
		},
		App: AppConfig{
			LoadingScreenDelayMs: 1500,
			PostSwipeDelayMs:     500,
		},
		DevUser: DevUserConfig{
			ID:        123456789,
			FirstName: "Тест",
			Username:  "test_user",
		},
	}
}

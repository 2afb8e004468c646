/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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

package host

import (
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"github.com/lidestt/qe/internal/system/config"
	"github.com/lidestt/qe/internal/system/log"
)

// TelegramWebApp is the Host backed by the Telegram Mini App init data
// payload. The payload signature is validated against the bot token when one
// is configured; without a token the payload is trusted as-is (dev setups).
type TelegramWebApp struct {
	identity    *Identity
	hasIdentity bool
}

// NewTelegramWebApp parses the raw init data supplied by the Telegram
// WebView. An empty, invalid or unverifiable payload yields a host without
// an identity; the controller then falls back to the onboarding path.
func NewTelegramWebApp(rawInitData string, cfg *config.Config) *TelegramWebApp {
	logger := log.GetLogger()

	if rawInitData == "" {
		logger.Info("Telegram host started without init data")
		return &TelegramWebApp{}
	}

	if cfg.Telegram.BotToken != "" {
		if err := initdata.Validate(rawInitData, cfg.Telegram.BotToken, cfg.InitDataTTL()); err != nil {
			logger.Warn("Telegram init data failed validation", log.Error(err))
			return &TelegramWebApp{}
		}
	} else {
		logger.Warn("No bot token configured, skipping init data signature validation")
	}

	data, err := initdata.Parse(rawInitData)
	if err != nil {
		logger.Warn("Failed to parse Telegram init data", log.Error(err))
		return &TelegramWebApp{}
	}
	if data.User.ID == 0 {
		logger.Info("Telegram init data carries no user")
		return &TelegramWebApp{}
	}

	identity := Identity{
		ID:        data.User.ID,
		FirstName: data.User.FirstName,
		Username:  data.User.Username,
	}
	logger.Info("Telegram user resolved",
		log.Int64("telegramId", identity.ID),
		log.String("username", identity.Username))

	return &TelegramWebApp{
		identity:    &identity,
		hasIdentity: true,
	}
}

func (t *TelegramWebApp) User() (Identity, bool) {
	if !t.hasIdentity {
		return Identity{}, false
	}
	return *t.identity, true
}

// Ready, Expand and EnableClosingConfirmation map to Telegram.WebApp calls
// inside a real WebView. Outside one they only leave a trace in the log.
func (t *TelegramWebApp) Ready() {
	log.GetLogger().Debug("Host lifecycle: ready")
}

func (t *TelegramWebApp) Expand() {
	log.GetLogger().Debug("Host lifecycle: expand")
}

func (t *TelegramWebApp) EnableClosingConfirmation() {
	log.GetLogger().Debug("Host lifecycle: closing confirmation enabled")
}

// Standalone is the Host used when the process runs outside Telegram
// entirely. It never supplies an identity.
type Standalone struct{}

func (Standalone) User() (Identity, bool) { return Identity{}, false }

func (Standalone) Ready() {}

func (Standalone) Expand() {}

func (Standalone) EnableClosingConfirmation() {}

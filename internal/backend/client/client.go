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

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/lidestt/qe/internal/backend/model"
	"github.com/lidestt/qe/internal/system/config"
	"github.com/lidestt/qe/internal/system/constants"
	errors2 "github.com/lidestt/qe/internal/system/errors"
	"github.com/lidestt/qe/internal/system/log"
)

// Client issues requests against the MeetApp backend API. Every call is
// independent and fire-once: no retries, no timeouts, no de-duplication.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client against the configured backend origin.
func New(cfg *config.Config) *Client {
	baseURL := strings.TrimRight(cfg.Backend.BaseURL, "/")
	log.GetLogger().Info("Creating backend client", log.String("baseURL", baseURL))

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// request performs the call and decodes the JSON response into out when out
// is non-nil. Non-success statuses and transport failures are both
// normalized into *errors.RequestError.
func (c *Client) request(method, endpoint string, body io.Reader, contentType string, out interface{}) error {
	logger := log.GetLogger()
	requestID := uuid.New().String()

	req, err := http.NewRequest(method, c.BaseURL+endpoint, body)
	if err != nil {
		return errors2.FromTransport(err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(constants.RequestIDHeader, requestID)

	logger.Debug("Backend request",
		log.String("method", method),
		log.String("endpoint", endpoint),
		log.String("requestId", requestID))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug("Backend request failed", log.String("requestId", requestID), log.Error(err))
		return errors2.FromTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors2.FromTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := errors2.FromResponse(resp.StatusCode, respBody)
		logger.Debug("Backend returned error status",
			log.String("requestId", requestID),
			log.Int("status", resp.StatusCode),
			log.String("message", reqErr.Message))
		return reqErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors2.FromTransport(err)
	}
	return nil
}

// requestJSON marshals payload as the request body. A nil payload sends no
// body.
func (c *Client) requestJSON(method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors2.FromTransport(err)
		}
		body = bytes.NewReader(raw)
	}
	return c.request(method, endpoint, body, "application/json", out)
}

// GetUser fetches the profile registered for the given Telegram identity.
func (c *Client) GetUser(telegramID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	endpoint := fmt.Sprintf("/api/user/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateUser registers a new profile.
func (c *Client) CreateUser(req model.CreateUserRequest) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.requestJSON(http.MethodPost, "/api/user", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUser applies a partial profile edit.
func (c *Client) UpdateUser(telegramID int64, req model.UpdateUserRequest) (*model.UserProfile, error) {
	var profile model.UserProfile
	endpoint := fmt.Sprintf("/api/user/%d", telegramID)
	if err := c.requestJSON(http.MethodPut, endpoint, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadPhoto sends a photo as the multipart file field "photo".
func (c *Client) UploadPhoto(telegramID int64, filename string, photo io.Reader) (map[string]interface{}, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		return nil, errors2.FromTransport(err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return nil, errors2.FromTransport(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors2.FromTransport(err)
	}

	var result map[string]interface{}
	endpoint := fmt.Sprintf("/api/user/%d/photo", telegramID)
	if err := c.request(http.MethodPost, endpoint, &buf, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// NextProfile fetches the next candidate for the swipe feed. The response is
// either a profile or the end-of-queue sentinel.
func (c *Client) NextProfile(telegramID int64) (*model.CandidateProfile, error) {
	var candidate model.CandidateProfile
	endpoint := fmt.Sprintf("/api/profiles/next/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Swipe submits a like/dislike decision against the target user.
func (c *Client) Swipe(telegramID, targetUserID int64, isLike bool) (*model.SwipeResult, error) {
	var result model.SwipeResult
	endpoint := fmt.Sprintf("/api/swipe?telegram_id=%d", telegramID)
	payload := model.SwipeRequest{
		TargetUserID: targetUserID,
		IsLike:       isLike,
	}
	if err := c.requestJSON(http.MethodPost, endpoint, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Matches fetches the mutual-match list.
func (c *Client) Matches(telegramID int64) (*model.MatchList, error) {
	var matches model.MatchList
	endpoint := fmt.Sprintf("/api/matches/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &matches); err != nil {
		return nil, err
	}
	return &matches, nil
}

// Visitors fetches the profile-visitor list. The response schema is owned by
// the backend and passed through untyped.
func (c *Client) Visitors(telegramID int64) ([]map[string]interface{}, error) {
	var visitors []map[string]interface{}
	endpoint := fmt.Sprintf("/api/visitors/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &visitors); err != nil {
		return nil, err
	}
	return visitors, nil
}

// Conversations fetches the conversation list, untyped like Visitors.
func (c *Client) Conversations(telegramID int64) ([]map[string]interface{}, error) {
	var conversations []map[string]interface{}
	endpoint := fmt.Sprintf("/api/conversations/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// SendMessage posts a message into a conversation.
func (c *Client) SendMessage(conversationID int64, message string) (map[string]interface{}, error) {
	var result map[string]interface{}
	endpoint := fmt.Sprintf("/api/messages/%d", conversationID)
	payload := model.MessageRequest{Message: message}
	if err := c.requestJSON(http.MethodPost, endpoint, payload, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetStats fetches the aggregate counters for the current user.
func (c *Client) GetStats(telegramID int64) (*model.Stats, error) {
	var stats model.Stats
	endpoint := fmt.Sprintf("/api/stats/%d", telegramID)
	if err := c.requestJSON(http.MethodGet, endpoint, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

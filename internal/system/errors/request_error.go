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

package errors

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// RequestError is the single structured failure kind produced by the backend
// client. It covers both non-2xx HTTP responses and transport-level failures.
// Error() returns exactly the human-readable message so that callers can
// surface it to the user unchanged.
type RequestError struct {
	Message    string
	StatusCode int   // 0 for transport-level failures
	Err        error // underlying cause, nil for plain HTTP error responses
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a RequestError with an explicit message and cause.
func NewRequestError(message string, cause error) *RequestError {
	return &RequestError{
		Message: message,
		Err:     cause,
	}
}

// FromResponse normalizes a non-success HTTP response into a RequestError.
// A JSON error body carrying a "detail" field supplies the message; an
// unparsable or detail-less body falls back to a message naming the status.
func FromResponse(statusCode int, body []byte) *RequestError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &RequestError{
			Message:    payload.Detail,
			StatusCode: statusCode,
		}
	}
	return &RequestError{
		Message:    fmt.Sprintf("HTTP error %d", statusCode),
		StatusCode: statusCode,
	}
}

// FromTransport normalizes a transport-level failure (connection refused,
// malformed response body and the like) into a RequestError carrying the
// cause's message.
func FromTransport(cause error) *RequestError {
	return &RequestError{
		Message: cause.Error(),
		Err:     pkgerrors.WithStack(cause),
	}
}

// AsRequestError reports whether err is (or wraps) a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if pkgerrors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsSwipeLimit reports whether err describes the daily swipe quota being
// exhausted. The backend signals this through the error detail text, so the
// check is a substring match on the message.
func IsSwipeLimit(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "limit")
}

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
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   string
	}{
		{
			name:       "detail field supplies the message",
			statusCode: 404,
			body:       `{"detail":"User not found"}`,
			expected:   "User not found",
		},
		{
			name:       "empty detail falls back to status",
			statusCode: 400,
			body:       `{"detail":""}`,
			expected:   "HTTP error 400",
		},
		{
			name:       "unparsable body falls back to status",
			statusCode: 500,
			body:       "<html>Internal Server Error</html>",
			expected:   "HTTP error 500",
		},
		{
			name:       "empty body falls back to status",
			statusCode: 502,
			body:       "",
			expected:   "HTTP error 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResponse(tt.statusCode, []byte(tt.body))
			if err.Error() != tt.expected {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.expected)
			}
			if err.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestFromTransportCarriesCauseMessage(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := FromTransport(cause)

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if err.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", err.StatusCode)
	}
	if pkgerrors.Cause(err.Err) != cause {
		t.Error("expected the original cause to be preserved")
	}
}

func TestAsRequestError(t *testing.T) {
	inner := FromResponse(404, []byte(`{"detail":"not found"}`))
	wrapped := pkgerrors.Wrap(inner, "loading profile")

	reqErr, ok := AsRequestError(wrapped)
	if !ok {
		t.Fatal("expected AsRequestError to match through wrapping")
	}
	if reqErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", reqErr.StatusCode)
	}

	if _, ok := AsRequestError(fmt.Errorf("plain")); ok {
		t.Error("plain errors must not match")
	}
	if _, ok := AsRequestError(nil); ok {
		t.Error("nil must not match")
	}
}

func TestIsSwipeLimit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "quota detail",
			err:      FromResponse(429, []byte(`{"detail":"Daily swipe limit reached"}`)),
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      FromResponse(500, []byte("oops")),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSwipeLimit(tt.err); got != tt.expected {
				t.Errorf("IsSwipeLimit() = %v, want %v", got, tt.expected)
			}
		})
	}
}

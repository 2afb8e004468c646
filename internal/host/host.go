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

package host

// Identity is the platform-supplied user handle. It is provided once at
// startup and keys every backend call for the rest of the session.
type Identity struct {
	ID        int64
	FirstName string
	Username  string
}

// Host is the platform the client runs inside. The lifecycle hooks are
// opaque calls with no return contract; implementations outside a real
// Telegram WebView treat them as no-ops.
type Host interface {
	// User returns the platform identity, or false when the platform
	// supplied none.
	User() (Identity, bool)
	Ready()
	Expand()
	EnableClosingConfirmation()
}

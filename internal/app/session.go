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

package app

import (
	"github.com/lidestt/qe/internal/backend/model"
	"github.com/lidestt/qe/internal/host"
)

// Session is the state owned by the controller for the lifetime of the
// process: the platform identity, the registered profile (if any), the
// candidate currently on the card and the active screen. Exactly one screen
// is active at a time; Candidate is nil until the first successful fetch and
// again after the queue is exhausted.
type Session struct {
	Identity  host.Identity
	Profile   *model.UserProfile
	Candidate *model.CandidateProfile
	Screen    string
}

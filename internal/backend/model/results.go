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

package model

// SwipeResult is the outcome of a swipe decision.
type SwipeResult struct {
	Success    bool `json:"success"`
	IsMatch    bool `json:"is_match"`
	SwipesLeft int  `json:"swipes_left"`
}

// Stats holds the aggregate counters for the current user.
type Stats struct {
	LikesReceived int `json:"likes_received"`
	MatchesCount  int `json:"matches_count"`
	ProfileVisits int `json:"profile_visits"`
	SwipesToday   int `json:"swipes_today"`
	SwipesLimit   int `json:"swipes_limit"`
}

// MatchSummary is one entry of the matches list.
type MatchSummary struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	City     string   `json:"city"`
	PhotoIDs []string `json:"photo_ids,omitempty"`
}

// MatchList is the response of the matches endpoint.
type MatchList struct {
	Matches []MatchSummary `json:"matches"`
}

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

// UserProfile is the persisted server-side record for a registered user,
// keyed by the Telegram identity. Optional attributes are pointers so that a
// field absent from a response is distinguishable from a zero value; the
// renderer relies on that distinction.
type UserProfile struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	ShowGender       string   `json:"show_gender,omitempty"`
	Country          *string  `json:"country,omitempty"`
	City             string   `json:"city"`
	Height           *int     `json:"height,omitempty"`
	Weight           *int     `json:"weight,omitempty"`
	Zodiac           *string  `json:"zodiac,omitempty"`
	MBTI             *string  `json:"mbti,omitempty"`
	Subculture       *string  `json:"subculture,omitempty"`
	MonthlyIncome    *int     `json:"monthly_income,omitempty"`
	RelationshipGoal *string  `json:"relationship_goal,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	PhotoIDs         []string `json:"photo_ids,omitempty"`
	IsPremium        bool     `json:"is_premium,omitempty"`
	SwipesLeft       *int     `json:"swipes_left,omitempty"`
}

// CandidateProfile is the profile shown for a swipe decision. On an
// exhausted queue the backend returns only the Message sentinel instead of
// profile fields.
type CandidateProfile struct {
	UserProfile
	Message string `json:"message,omitempty"`
}

// Exhausted reports whether the response is the end-of-queue sentinel.
func (c *CandidateProfile) Exhausted() bool {
	return c.Message != ""
}

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

import (
	"fmt"

	"github.com/lidestt/qe/internal/system/constants"
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	TelegramID       int64    `json:"telegram_id"`
	Username         string   `json:"username,omitempty"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	ShowGender       string   `json:"show_gender"`
	Country          string   `json:"country"`
	City             string   `json:"city"`
	Height           *int     `json:"height,omitempty"`
	Weight           *int     `json:"weight,omitempty"`
	Zodiac           *string  `json:"zodiac,omitempty"`
	MBTI             *string  `json:"mbti,omitempty"`
	Subculture       *string  `json:"subculture,omitempty"`
	MonthlyIncome    *int     `json:"monthly_income,omitempty"`
	RelationshipGoal *string  `json:"relationship_goal,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	Interests        []string `json:"interests"`
	FavoriteArtists  []string `json:"favorite_artists,omitempty"`
}

// Validate checks the optional picker fields against their catalogs. The
// required-field predicate lives with the registration form; this guards the
// payload against values no picker would produce.
func (r CreateUserRequest) Validate() []string {
	var errs []string

	if r.Zodiac != nil && !inCatalog(constants.ZodiacSigns, *r.Zodiac) {
		errs = append(errs, fmt.Sprintf("unknown zodiac sign %q", *r.Zodiac))
	}
	if r.MBTI != nil && !inCatalog(constants.MBTITypes, *r.MBTI) {
		errs = append(errs, fmt.Sprintf("unknown MBTI type %q", *r.MBTI))
	}
	if r.Subculture != nil && !inCatalog(constants.Subcultures, *r.Subculture) {
		errs = append(errs, fmt.Sprintf("unknown subculture %q", *r.Subculture))
	}
	if r.RelationshipGoal != nil && !inCatalog(constants.RelationshipGoals, *r.RelationshipGoal) {
		errs = append(errs, fmt.Sprintf("unknown relationship goal %q", *r.RelationshipGoal))
	}
	for _, interest := range r.Interests {
		if !inCatalog(constants.Interests, interest) {
			errs = append(errs, fmt.Sprintf("unknown interest %q", interest))
		}
	}

	return errs
}

func inCatalog(catalog []string, value string) bool {
	for _, v := range catalog {
		if v == value {
			return true
		}
	}
	return false
}

// UpdateUserRequest is the partial-edit payload. Only non-nil fields are
// sent; the backend applies them field by field.
type UpdateUserRequest struct {
	Name             *string  `json:"name,omitempty"`
	Age              *int     `json:"age,omitempty"`
	City             *string  `json:"city,omitempty"`
	Height           *int     `json:"height,omitempty"`
	Weight           *int     `json:"weight,omitempty"`
	Zodiac           *string  `json:"zodiac,omitempty"`
	MBTI             *string  `json:"mbti,omitempty"`
	Subculture       *string  `json:"subculture,omitempty"`
	MonthlyIncome    *int     `json:"monthly_income,omitempty"`
	RelationshipGoal *string  `json:"relationship_goal,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	FavoriteArtists  []string `json:"favorite_artists,omitempty"`
}

// SwipeRequest is the body of a swipe decision.
type SwipeRequest struct {
	TargetUserID int64 `json:"target_user_id"`
	IsLike       bool  `json:"is_like"`
}

// MessageRequest is the body of a conversation message.
type MessageRequest struct {
	Message string `json:"message"`
}

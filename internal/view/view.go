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

package view

// Region names a single writable slot of the presentation surface. Each
// region is written by exactly one controller code path per field.
type Region string

// Candidate card regions.
const (
	RegionProfileName     Region = "profileName"
	RegionProfileLocation Region = "profileLocation"
	RegionProfileHeight   Region = "profileHeight"
	RegionProfileWeight   Region = "profileWeight"
	RegionProfileIncome   Region = "profileIncome"
	RegionZodiacBadge     Region = "zodiacBadge"
	RegionMBTIBadge       Region = "mbtiBadge"
	RegionSubculture      Region = "profileSubculture"
	RegionGoal            Region = "profileGoal"
	RegionProfileBio      Region = "profileBio"
	RegionSwipeCount      Region = "swipeCount"
)

// Badge and own-profile counter regions.
const (
	RegionLikesBadge     Region = "likesBadge"
	RegionMatchesBadge   Region = "matchesBadge"
	RegionVisitorsBadge  Region = "visitorsBadge"
	RegionMyLikesCount   Region = "myLikesCount"
	RegionMyVisitsCount  Region = "myVisitsCount"
	RegionMyMatchesCount Region = "myMatchesCount"
)

// Own-profile screen regions.
const (
	RegionMyProfileName     Region = "myProfileName"
	RegionMyProfileLocation Region = "myProfileLocation"
)

// View is the rendering surface the controller writes to. Implementations
// own how regions, screens and modals are presented; the controller only
// names them.
type View interface {
	// SetText replaces the content of a region.
	SetText(region Region, text string)
	// SetInterests replaces the interest-tag display. A nil or empty slice
	// clears it.
	SetInterests(interests []string)
	// ShowScreen makes the named screen the single active one.
	ShowScreen(screen string)
	// ShowAlert presents a blocking informational message.
	ShowAlert(message string)
	// Confirm asks the user a yes/no question and blocks for the answer.
	Confirm(message string) bool
	// ShowMatchNotification presents the mutual-match overlay.
	ShowMatchNotification(text string)
	// HideMatchNotification dismisses the mutual-match overlay.
	HideMatchNotification()
	// SetSubmitEnabled toggles the registration submit control.
	SetSubmitEnabled(enabled bool)
}

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

package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lidestt/qe/internal/backend/model"
	"github.com/lidestt/qe/internal/host"
	"github.com/lidestt/qe/internal/system/config"
	"github.com/lidestt/qe/internal/system/constants"
	errors2 "github.com/lidestt/qe/internal/system/errors"
	"github.com/lidestt/qe/internal/system/log"
	"github.com/lidestt/qe/internal/view"
)

// Backend is the subset of the API client the controller drives.
type Backend interface {
	GetUser(telegramID int64) (*model.UserProfile, error)
	CreateUser(req model.CreateUserRequest) (*model.UserProfile, error)
	NextProfile(telegramID int64) (*model.CandidateProfile, error)
	Swipe(telegramID, targetUserID int64, isLike bool) (*model.SwipeResult, error)
	Matches(telegramID int64) (*model.MatchList, error)
	GetStats(telegramID int64) (*model.Stats, error)
}

// Controller owns the session state and mediates between the host platform,
// the view surface and the backend. All methods run on the single event
// loop; network calls suspend only the handler that issued them.
type Controller struct {
	api     Backend
	view    view.View
	host    host.Host
	cfg     *config.Config
	logger  *log.Logger
	session Session
	form    RegistrationForm

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewController wires a controller over the given collaborators.
func NewController(api Backend, v view.View, h host.Host, cfg *config.Config) *Controller {
	return &Controller{
		api:    api,
		view:   v,
		host:   h,
		cfg:    cfg,
		logger: log.GetLogger(),
		sleep:  time.Sleep,
	}
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	return c.session
}

// Start runs the startup protocol: host lifecycle hooks, identity lookup,
// then either the registration check or the standalone onboarding path.
func (c *Controller) Start() {
	c.host.Ready()
	c.host.Expand()
	c.host.EnableClosingConfirmation()

	c.showScreen(constants.ScreenLoading)

	identity, ok := c.host.User()
	if !ok {
		c.startStandalone()
		return
	}

	c.session.Identity = identity
	c.logger.Info("Host identity received", log.Int64("telegramId", identity.ID))
	c.checkRegistration()
}

// startStandalone synthesizes the dev placeholder identity after the fixed
// loading-screen delay and enters onboarding.
func (c *Controller) startStandalone() {
	c.sleep(c.cfg.LoadingScreenDelay())

	c.session.Identity = host.Identity{
		ID:        c.cfg.DevUser.ID,
		FirstName: c.cfg.DevUser.FirstName,
		Username:  c.cfg.DevUser.Username,
	}
	c.logger.Info("No host identity, using dev placeholder",
		log.Int64("telegramId", c.session.Identity.ID))
	c.showScreen(constants.ScreenRules)
}

// checkRegistration asks the backend whether the identity already has a
// profile. Any failure routes to onboarding; registration can be redone.
func (c *Controller) checkRegistration() {
	profile, err := c.api.GetUser(c.session.Identity.ID)
	if err != nil {
		c.logger.Info("User not registered", log.Error(err))
		c.showScreen(constants.ScreenRules)
		return
	}

	c.session.Profile = profile
	c.showMainApp()
}

// showMainApp enters the main screen and eagerly loads the first candidate
// and the counters.
func (c *Controller) showMainApp() {
	c.showScreen(constants.ScreenMain)
	c.LoadNextProfile()
	c.UpdateStats()
}

func (c *Controller) showScreen(screen string) {
	c.session.Screen = screen
	c.view.ShowScreen(screen)
}

// AcceptRules advances from the rules screen into the registration form.
func (c *Controller) AcceptRules() {
	c.showScreen(constants.ScreenRegistration)
	c.revalidateForm()
}

// Form field setters. Each change re-evaluates the submit predicate.

func (c *Controller) SetName(name string) {
	c.form.Name = name
	c.revalidateForm()
}

func (c *Controller) SetAge(age int) {
	c.form.Age = age
	c.revalidateForm()
}

func (c *Controller) SetGender(gender string) {
	c.form.Gender = gender
	c.revalidateForm()
}

func (c *Controller) SetShowGender(showGender string) {
	c.form.ShowGender = showGender
	c.revalidateForm()
}

func (c *Controller) SetCountry(country string) {
	c.form.Country = country
	c.revalidateForm()
}

func (c *Controller) SetCity(city string) {
	c.form.City = city
	c.revalidateForm()
}

func (c *Controller) revalidateForm() {
	c.view.SetSubmitEnabled(c.form.Valid())
}

// SubmitRegistration assembles the creation payload from the identity and
// the form, creates the profile and advances to the main screen. On failure
// the user is told and the screen stays put so the submit can be retried.
func (c *Controller) SubmitRegistration() {
	if !c.form.Valid() {
		c.logger.Warn("Submit requested with invalid form")
		return
	}

	req := model.CreateUserRequest{
		TelegramID: c.session.Identity.ID,
		Username:   c.session.Identity.Username,
		Name:       c.form.Name,
		Age:        c.form.Age,
		Gender:     c.form.Gender,
		ShowGender: c.form.ShowGender,
		Country:    c.form.Country,
		City:       c.form.City,
		Interests:  []string{},
	}
	if errs := req.Validate(); len(errs) > 0 {
		c.logger.Warn("Registration payload rejected", log.Any("errors", errs))
		c.view.ShowAlert(constants.MsgRegistrationFailed)
		return
	}

	profile, err := c.api.CreateUser(req)
	if err != nil {
		c.logger.Error("Failed to create user", log.Error(err))
		c.view.ShowAlert(constants.MsgRegistrationFailed)
		return
	}

	c.logger.Info("User created", log.Int64("userId", profile.ID))
	c.session.Profile = profile
	c.showMainApp()
}

// LoadNextProfile fetches one candidate and renders it. The end-of-queue
// sentinel and a fetch failure both render the same placeholder; the two
// conditions are not distinguishable to the user.
func (c *Controller) LoadNextProfile() {
	candidate, err := c.api.NextProfile(c.session.Identity.ID)
	if err != nil {
		c.logger.Error("Failed to load candidate", log.Error(err))
		c.showNoProfiles()
		return
	}
	if candidate.Exhausted() {
		c.showNoProfiles()
		return
	}

	c.session.Candidate = candidate
	c.renderCandidate(candidate)
}

// renderCandidate writes the card regions. Required fields are always
// written; optional fields only when present, which can leave a previous
// candidate's values visible. Kept as-is: observable shipped behavior.
func (c *Controller) renderCandidate(candidate *model.CandidateProfile) {
	c.view.SetText(view.RegionProfileName,
		fmt.Sprintf("%s, %d", candidate.Name, candidate.Age))
	c.view.SetText(view.RegionProfileLocation,
		locationText(candidate.City, candidate.Country))

	if candidate.Height != nil {
		c.view.SetText(view.RegionProfileHeight, strconv.Itoa(*candidate.Height))
	}
	if candidate.Weight != nil {
		c.view.SetText(view.RegionProfileWeight, strconv.Itoa(*candidate.Weight))
	}
	if candidate.MonthlyIncome != nil {
		c.view.SetText(view.RegionProfileIncome, FormatIncome(*candidate.MonthlyIncome))
	}
	if candidate.Zodiac != nil {
		c.view.SetText(view.RegionZodiacBadge,
			fmt.Sprintf("%s %s", ZodiacSymbol(*candidate.Zodiac), *candidate.Zodiac))
	}
	if candidate.MBTI != nil {
		c.view.SetText(view.RegionMBTIBadge, *candidate.MBTI)
	}
	if candidate.Subculture != nil {
		c.view.SetText(view.RegionSubculture, *candidate.Subculture)
	}
	if candidate.RelationshipGoal != nil {
		c.view.SetText(view.RegionGoal, *candidate.RelationshipGoal)
	}
	if candidate.Bio != nil {
		c.view.SetText(view.RegionProfileBio, *candidate.Bio)
	}

	c.view.SetInterests(candidate.Interests)

	if candidate.SwipesLeft != nil {
		c.view.SetText(view.RegionSwipeCount, strconv.Itoa(*candidate.SwipesLeft))
	}
}

func (c *Controller) showNoProfiles() {
	c.session.Candidate = nil
	c.view.SetText(view.RegionProfileName, constants.MsgNoMoreProfiles)
	c.view.SetText(view.RegionProfileBio, constants.MsgNoMoreProfilesHint)
	c.view.SetInterests(nil)
}

// HandleSwipe submits a like/dislike for the current candidate. Without a
// candidate it is a no-op. The delayed follow-up fetch runs inside this
// handler, so a second swipe cannot interleave with it.
func (c *Controller) HandleSwipe(isLike bool) {
	candidate := c.session.Candidate
	if candidate == nil {
		return
	}

	result, err := c.api.Swipe(c.session.Identity.ID, candidate.ID, isLike)
	if err != nil {
		c.logger.Error("Swipe failed", log.Error(err))
		if errors2.IsSwipeLimit(err) {
			c.view.ShowAlert(constants.MsgSwipeLimitReached)
		}
		return
	}

	c.view.SetText(view.RegionSwipeCount, strconv.Itoa(result.SwipesLeft))
	if result.IsMatch {
		c.view.ShowMatchNotification(fmt.Sprintf("Вы понравились %s", candidate.Name))
	}

	c.sleep(c.cfg.PostSwipeDelay())
	c.LoadNextProfile()
}

// ContinueAfterMatch dismisses the mutual-match overlay.
func (c *Controller) ContinueAfterMatch() {
	c.view.HideMatchNotification()
}

// SendMatchMessage is the chat entry point from the match overlay; chat is
// not shipped yet.
func (c *Controller) SendMatchMessage() {
	c.view.ShowAlert(constants.MsgChatComingSoon)
	c.view.HideMatchNotification()
}

// UpdateStats refetches the counters and fans them out over the badge and
// profile-screen regions. Failure leaves the previous values visible.
func (c *Controller) UpdateStats() {
	stats, err := c.api.GetStats(c.session.Identity.ID)
	if err != nil {
		c.logger.Error("Failed to load stats", log.Error(err))
		return
	}

	c.view.SetText(view.RegionLikesBadge, strconv.Itoa(stats.LikesReceived))
	c.view.SetText(view.RegionMatchesBadge, strconv.Itoa(stats.MatchesCount))
	c.view.SetText(view.RegionVisitorsBadge, strconv.Itoa(stats.ProfileVisits))

	c.view.SetText(view.RegionMyLikesCount, strconv.Itoa(stats.LikesReceived))
	c.view.SetText(view.RegionMyVisitsCount, strconv.Itoa(stats.ProfileVisits))
	c.view.SetText(view.RegionMyMatchesCount, strconv.Itoa(stats.MatchesCount))
}

func (c *Controller) showLikes() {
	c.view.ShowAlert(constants.MsgLikesUnderDevelopment)
}

func (c *Controller) showMatchesSummary() {
	matches, err := c.api.Matches(c.session.Identity.ID)
	if err != nil {
		c.logger.Error("Failed to load matches", log.Error(err))
		return
	}
	c.view.ShowAlert(fmt.Sprintf("У вас %d мэтчей", len(matches.Matches)))
}

// ShowProfileScreen renders the cached own profile and activates the
// profile screen.
func (c *Controller) ShowProfileScreen() {
	if profile := c.session.Profile; profile != nil {
		c.view.SetText(view.RegionMyProfileName,
			fmt.Sprintf("%s, %d", profile.Name, profile.Age))
		c.view.SetText(view.RegionMyProfileLocation,
			locationText(profile.City, profile.Country))
	}
	c.showScreen(constants.ScreenProfile)
}

func (c *Controller) showEditProfile() {
	c.view.ShowAlert(constants.MsgEditUnderDevelopment)
}

func (c *Controller) showPremium() {
	c.view.ShowAlert(constants.MsgPremiumFeatures)
}

// logout clears the session after confirmation and reruns the startup
// protocol, the reload analogue of the web client.
func (c *Controller) logout() {
	if !c.view.Confirm(constants.MsgLogoutConfirm) {
		return
	}

	c.logger.Info("Logging out", log.Int64("telegramId", c.session.Identity.ID))
	c.session = Session{}
	c.form.reset()
	c.Start()
}

func locationText(city string, country *string) string {
	if country != nil && *country != "" {
		return fmt.Sprintf("%s, %s", city, *country)
	}
	return city
}

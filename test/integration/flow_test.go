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

package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidestt/qe/internal/app"
	"github.com/lidestt/qe/internal/backend/client"
	"github.com/lidestt/qe/internal/host"
	"github.com/lidestt/qe/internal/system/config"
	"github.com/lidestt/qe/internal/system/log"
	"github.com/lidestt/qe/internal/view"
)

func TestMain(m *testing.M) {
	_ = log.Init("debug")
	os.Exit(m.Run())
}

// fakeBackend is an in-process stand-in for the MeetApp API. It keeps just
// enough state to drive the registration and swipe journey end to end.
type fakeBackend struct {
	mu         sync.Mutex
	users      map[int64]map[string]interface{}
	candidates []map[string]interface{}
	swipesLeft int
	matchOn    int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:      map[int64]map[string]interface{}{},
		swipesLeft: 60,
	}
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, user := range f.users {
			writeJSON(w, http.StatusOK, user)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found"})
	})

	mux.HandleFunc("POST /api/user", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		telegramID := int64(payload["telegram_id"].(float64))
		payload["id"] = 10
		f.users[telegramID] = payload
		writeJSON(w, http.StatusOK, payload)
	})

	mux.HandleFunc("GET /api/profiles/next/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if len(f.candidates) == 0 {
			writeJSON(w, http.StatusOK, map[string]string{"message": "No more profiles available"})
			return
		}
		next := f.candidates[0]
		f.candidates = f.candidates[1:]
		next["swipes_left"] = f.swipesLeft
		writeJSON(w, http.StatusOK, next)
	})

	mux.HandleFunc("POST /api/swipe", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			TargetUserID int64 `json:"target_user_id"`
			IsLike       bool  `json:"is_like"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.swipesLeft == 0 {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"detail": "Daily swipe limit reached"})
			return
		}
		f.swipesLeft--
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":     true,
			"is_match":    payload.IsLike && payload.TargetUserID == f.matchOn,
			"swipes_left": f.swipesLeft,
		})
	})

	mux.HandleFunc("GET /api/matches/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matches": []map[string]interface{}{
				{"id": 7, "name": "Алиса", "age": 23, "city": "Москва"},
			},
		})
	})

	mux.HandleFunc("GET /api/stats/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"likes_received": 12,
			"matches_count":  3,
			"profile_visits": 40,
			"swipes_today":   60 - f.swipesLeft,
			"swipes_limit":   60,
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func testEnvironment(t *testing.T, backend *fakeBackend, input string) (*app.Controller, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Backend: config.BackendConfig{BaseURL: server.URL},
		Log:     config.LogConfig{LogLevel: "debug"},
		DevUser: config.DevUserConfig{
			ID:        123456789,
			FirstName: "Тест",
			Username:  "test_user",
		},
	}

	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(input))
	consoleView := view.NewConsole(&out, scanner)
	controller := app.NewController(client.New(cfg), consoleView, host.Standalone{}, cfg)
	return controller, &out
}

func TestFullRegistrationAndSwipeJourney(t *testing.T) {
	backend := newFakeBackend()
	backend.matchOn = 7
	backend.candidates = []map[string]interface{}{
		{
			"id": 7, "name": "Алиса", "age": 23, "city": "Москва",
			"country": "Россия", "height": 168, "monthly_income": 1500,
			"zodiac": "Лев", "interests": []string{"Аниме", "Кино"},
		},
		{
			"id": 8, "name": "Вика", "age": 30, "city": "Тверь",
		},
	}

	controller, out := testEnvironment(t, backend, "")

	// Standalone startup: no host identity, dev placeholder, rules screen.
	controller.Start()
	session := controller.Session()
	assert.Equal(t, int64(123456789), session.Identity.ID)
	assert.Contains(t, out.String(), "=== rules ===")

	// Registration.
	controller.AcceptRules()
	controller.SetName("Тест")
	controller.SetAge(25)
	controller.SetGender("male")
	controller.SetShowGender("female")
	controller.SetCountry("Россия")
	controller.SetCity("Москва")
	controller.SubmitRegistration()

	session = controller.Session()
	require.NotNil(t, session.Profile)
	assert.Equal(t, int64(10), session.Profile.ID)
	assert.Contains(t, out.String(), "=== main ===")

	// The first candidate is on the card with formatted derived fields.
	output := out.String()
	assert.Contains(t, output, "Алиса, 23")
	assert.Contains(t, output, "Москва, Россия")
	assert.Contains(t, output, "2K ₽")
	assert.Contains(t, output, "♌ Лев")
	assert.Contains(t, output, "Аниме · Кино")

	// A like on the match candidate raises the notification and advances the
	// feed to the next candidate in the same handler.
	controller.HandleSwipe(true)
	output = out.String()
	assert.Contains(t, output, "Вы понравились Алиса")
	assert.Contains(t, output, "Вика, 30")

	session = controller.Session()
	require.NotNil(t, session.Candidate)
	assert.Equal(t, "Вика", session.Candidate.Name)

	// Dismissing the overlay.
	controller.ContinueAfterMatch()

	// The queue runs out on the next swipe.
	controller.HandleSwipe(false)
	output = out.String()
	assert.Contains(t, output, "Анкет больше нет")
	assert.Nil(t, controller.Session().Candidate)

	// With no candidate a swipe is a no-op; the backend saw exactly two.
	before := backend.swipesLeft
	controller.HandleSwipe(true)
	assert.Equal(t, before, backend.swipesLeft)
}

func TestExistingUserSkipsRegistration(t *testing.T) {
	backend := newFakeBackend()
	backend.users[123456789] = map[string]interface{}{
		"id": 10, "telegram_id": 123456789, "name": "Катя", "age": 22, "city": "Казань",
	}

	controller, out := testEnvironment(t, backend, "")

	// Standalone still synthesizes the placeholder identity, but the backend
	// already knows it, so the app skips straight to the main screen.
	controller.Start()

	require.NotNil(t, controller.Session().Profile)
	assert.Equal(t, "Катя", controller.Session().Profile.Name)
	output := out.String()
	assert.Contains(t, output, "=== main ===")
	assert.NotContains(t, output, "=== registration ===")
}

func TestSwipeLimitSurfacesQuotaAlert(t *testing.T) {
	backend := newFakeBackend()
	backend.swipesLeft = 0
	backend.candidates = []map[string]interface{}{
		{"id": 7, "name": "Алиса", "age": 23, "city": "Москва"},
	}

	controller, out := testEnvironment(t, backend, "")
	controller.Start()
	controller.ShowSection("feed")

	controller.HandleSwipe(true)

	output := out.String()
	assert.Contains(t, output, "Достигнут дневной лимит свайпов")
	// The candidate stays on the card for a later retry.
	require.NotNil(t, controller.Session().Candidate)
	assert.Equal(t, "Алиса", controller.Session().Candidate.Name)
}

func TestStatsFanOutAndMatchesSummary(t *testing.T) {
	backend := newFakeBackend()
	controller, out := testEnvironment(t, backend, "")
	controller.Start()

	controller.UpdateStats()
	output := out.String()
	assert.Contains(t, output, "likesBadge:")
	assert.Contains(t, output, "12")
	assert.Contains(t, output, "40")

	controller.ShowSection("matches")
	assert.Contains(t, out.String(), fmt.Sprintf("У вас %d мэтчей", 1))
}

func TestLogoutConfirmationRestartsSession(t *testing.T) {
	backend := newFakeBackend()
	controller, out := testEnvironment(t, backend, "y\n")
	controller.Start()

	controller.HandleMenuAction("logout")

	output := out.String()
	assert.Contains(t, output, "Вы уверены")
	// Startup ran again after the reset.
	assert.GreaterOrEqual(t, strings.Count(output, "=== rules ==="), 2)
	assert.Nil(t, controller.Session().Profile)
}

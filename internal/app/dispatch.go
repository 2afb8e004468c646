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
	"fmt"

	"github.com/lidestt/qe/internal/system/constants"
	"github.com/lidestt/qe/internal/system/log"
)

// UI intents reach the controller through these lookup tables, keeping the
// controller independent of any concrete rendering surface.

var sectionHandlers = map[string]func(*Controller){
	constants.SectionFeed:    (*Controller).LoadNextProfile,
	constants.SectionLikes:   (*Controller).showLikes,
	constants.SectionMatches: (*Controller).showMatchesSummary,
	constants.SectionProfile: (*Controller).ShowProfileScreen,
}

var menuHandlers = map[string]func(*Controller){
	constants.MenuMyProfile:   (*Controller).ShowProfileScreen,
	constants.MenuEditProfile: (*Controller).showEditProfile,
	constants.MenuBuyPremium:  (*Controller).showPremium,
	constants.MenuLogout:      (*Controller).logout,
}

// ShowSection dispatches a bottom-navigation switch. Unknown sections are
// logged and ignored.
func (c *Controller) ShowSection(section string) {
	handler, ok := sectionHandlers[section]
	if !ok {
		c.logger.Warn("Unknown section", log.String("section", section))
		return
	}
	handler(c)
}

// HandleMenuAction dispatches a side-menu action. Unknown actions show the
// generic under-development alert.
func (c *Controller) HandleMenuAction(action string) {
	handler, ok := menuHandlers[action]
	if !ok {
		c.view.ShowAlert(fmt.Sprintf("Функция \"%s\" в разработке", action))
		return
	}
	handler(c)
}

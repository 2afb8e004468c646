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

import "strings"

// RegistrationForm holds the single-step registration fields. Validity is
// re-evaluated on every change; the submit control is enabled only while
// Valid() holds.
type RegistrationForm struct {
	Name       string
	Age        int
	Gender     string
	ShowGender string
	Country    string
	City       string
}

// Valid reports whether every field satisfies the submit predicate:
// name length ≥ 2, age in [18,100], both gender selections made, country
// chosen, city length ≥ 2. Lengths count runes, the form is Cyrillic.
func (f *RegistrationForm) Valid() bool {
	name := strings.TrimSpace(f.Name)
	city := strings.TrimSpace(f.City)

	return len([]rune(name)) >= 2 &&
		f.Age >= 18 && f.Age <= 100 &&
		f.Gender != "" &&
		f.ShowGender != "" &&
		f.Country != "" &&
		len([]rune(city)) >= 2
}

// reset clears the form, used on logout.
func (f *RegistrationForm) reset() {
	*f = RegistrationForm{}
}

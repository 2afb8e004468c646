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
	"math"
	"time"
)

// FormatIncome renders a monthly income in rubles: millions with one
// decimal, thousands rounded to whole K, small amounts verbatim.
func FormatIncome(income int) string {
	if income >= 1000000 {
		return fmt.Sprintf("%.1fM ₽", float64(income)/1000000)
	}
	if income >= 1000 {
		return fmt.Sprintf("%dK ₽", int(math.Round(float64(income)/1000)))
	}
	return fmt.Sprintf("%d ₽", income)
}

// FormatCount abbreviates a plain counter the same way but without the
// currency suffix and with one decimal for thousands.
func FormatCount(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

var zodiacSymbols = map[string]string{
	"Овен":     "♈",
	"Телец":    "♉",
	"Близнецы": "♊",
	"Рак":      "♋",
	"Лев":      "♌",
	"Дева":     "♍",
	"Весы":     "♎",
	"Скорпион": "♏",
	"Стрелец":  "♐",
	"Козерог":  "♑",
	"Водолей":  "♒",
	"Рыбы":     "♓",
}

// ZodiacSymbol maps a zodiac sign name to its symbol. Unrecognized signs
// fall back to the Aries symbol; known quirk, kept for parity with the
// shipped behavior.
func ZodiacSymbol(sign string) string {
	if symbol, ok := zodiacSymbols[sign]; ok {
		return symbol
	}
	return "♈"
}

// FormatRelativeTime renders how long ago t happened relative to now:
// minutes within the hour, hours within the day, "Вчера" for exactly one
// elapsed day, day counts beyond that.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 60:
		return fmt.Sprintf("%d мин назад", minutes)
	case hours < 24:
		return fmt.Sprintf("%d ч назад", hours)
	case days == 1:
		return "Вчера"
	default:
		return fmt.Sprintf("%d дн назад", days)
	}
}

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

package constants

// Screen identifiers. Exactly one screen is active at a time.
const (
	ScreenLoading      = "loading"
	ScreenRules        = "rules"
	ScreenRegistration = "registration"
	ScreenMain         = "main"
	ScreenProfile      = "profile"
)

// Bottom-navigation section identifiers.
const (
	SectionFeed    = "feed"
	SectionLikes   = "likes"
	SectionMatches = "matches"
	SectionProfile = "profile"
)

// Side-menu action identifiers.
const (
	MenuMyProfile   = "myProfile"
	MenuEditProfile = "editProfile"
	MenuBuyPremium  = "buyPremium"
	MenuLogout      = "logout"
)

// RequestIDHeader carries the correlation id attached to every outbound
// backend call.
const RequestIDHeader = "X-Request-Id"

// DefaultSwipeLimit is the daily swipe quota for non-premium accounts.
const DefaultSwipeLimit = 60

// User-facing message texts. The product surface is Russian.
const (
	MsgNoMoreProfiles        = "Анкет больше нет"
	MsgNoMoreProfilesHint    = "Заходите позже или измените фильтры поиска."
	MsgRegistrationFailed    = "Ошибка при создании профиля. Попробуйте еще раз."
	MsgSwipeLimitReached     = "Достигнут дневной лимит свайпов. Купите Премиум для безлимитного доступа."
	MsgLikesUnderDevelopment = "Раздел \"Лайки\" в разработке"
	MsgEditUnderDevelopment  = "Редактирование профиля в разработке"
	MsgChatComingSoon        = "Функция чата будет доступна в следующем обновлении!"
	MsgLogoutConfirm         = "Вы уверены, что хотите выйти?"
	MsgPremiumFeatures       = "Премиум функции:\n• Безлимитные свайпы\n• Видим, кто лайкнул\n• Приоритет в ленте\n• Расширенные фильтры"
)

// Profile attribute catalogs. Pickers in the client offer these values and
// create/update payloads are validated against them.
var (
	Interests = []string{
		"CS:GO", "Minecraft", "Программирование", "Аниме", "Музыка", "Спорт",
		"Кино", "Путешествия", "Книги", "Фотография", "Готовка", "Искусство",
		"Наука", "Танцы", "Игры", "Кофе", "Технологии", "Дизайн",
		"Балинсиага", "Brawl Stars", "Deadlock", "DIY", "Dota 2", "FL Studio",
		"Fortnite", "Hello Kitty", "K-pop", "LoL", "Looksmaxxing", "MLBB",
	}

	Subcultures = []string{
		"Не указывать", "Альтушка", "Анимешник", "Гот", "Гранж", "Гяру",
		"Джирай кей", "Дрилл", "Дрип", "Крипли няши", "Кэжуал", "Металлист",
		"Мори кей", "Неформал", "Нормис", "Ниша", "Панк", "Репер",
		"Скейтер", "Скинхед", "Скуф", "Фембой", "Фрик", "Хиппи", "Эмо",
	}

	ZodiacSigns = []string{
		"Овен", "Телец", "Близнецы", "Рак", "Лев", "Дева",
		"Весы", "Скорпион", "Стрелец", "Козерог", "Водолей", "Рыбы",
	}

	MBTITypes = []string{
		"ISTJ", "ISFJ", "INFJ", "INTJ", "ISTP", "ISFP",
		"INFP", "INTP", "ESTP", "ESFP", "ENFP", "ENTP",
		"ESTJ", "ESFJ", "ENFJ", "ENTJ",
	}

	RelationshipGoals = []string{
		"Дружба", "Отношения", "Свидания", "Флирт",
	}
)

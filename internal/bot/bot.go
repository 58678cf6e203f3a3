package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/nutrition"
	"github.com/AsyaBav/DietPlanner/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotApp — основная структура бота
type BotApp struct {
	API *tgbotapi.BotAPI

	Admins []int64

	userService         *service.UserService
	diaryService        *service.DiaryService
	waterService        *service.WaterService
	recipeService       *service.RecipeService
	plannerService      *service.PlannerService
	cartService         *service.CartService
	weightService       *service.WeightService
	articleService      *service.ArticleService
	consultationService *service.ConsultationService
	nutritionClient     *nutrition.Client

	// Состояния многошаговых диалогов
	userStates map[int64]*UserState
	callbacks  map[string]func(*tgbotapi.CallbackQuery)
}

// UserState хранит состояние диалога с пользователем
type UserState struct {
	Action   string
	Step     int
	EntityID uint
	TempData map[string]interface{}
}

// Services — зависимости бота
type Services struct {
	User         *service.UserService
	Diary        *service.DiaryService
	Water        *service.WaterService
	Recipe       *service.RecipeService
	Planner      *service.PlannerService
	Cart         *service.CartService
	Weight       *service.WeightService
	Article      *service.ArticleService
	Consultation *service.ConsultationService
	Nutrition    *nutrition.Client
}

// Конструктор бота
func NewBotApp(token string, services Services, adminIDs []int64) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	bot := &BotApp{
		API:                 botAPI,
		Admins:              adminIDs,
		userService:         services.User,
		diaryService:        services.Diary,
		waterService:        services.Water,
		recipeService:       services.Recipe,
		plannerService:      services.Planner,
		cartService:         services.Cart,
		weightService:       services.Weight,
		articleService:      services.Article,
		consultationService: services.Consultation,
		nutritionClient:     services.Nutrition,
		userStates:          make(map[int64]*UserState),
		callbacks:           make(map[string]func(*tgbotapi.CallbackQuery)),
	}

	bot.registerCallbacks()
	return bot, nil
}

// Запуск бота
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	log.Println("🤖 Bot started")

	for update := range updates {
		// Обработка CallbackQuery
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		// Обработка команд
		if update.Message.IsCommand() {
			b.handleCommand(update)
			continue
		}

		// Обработка обычных сообщений
		b.handleRegularMessage(update)
	}
}

// Команды
func (b *BotApp) handleCommand(update tgbotapi.Update) {
	cmd := update.Message.Command()
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	switch cmd {
	case "start":
		delete(b.userStates, userID)
		user, err := b.userService.GetUserByTelegramID(userID)
		if err != nil {
			b.sendText(chatID, "❌ Ошибка авторизации")
			return
		}
		if user == nil || !user.RegistrationComplete {
			b.startRegistration(chatID, userID)
			return
		}
		b.sendText(chatID, "С возвращением, "+user.Name+"! 👋")
		b.showMainMenu(chatID)

	case "menu":
		b.showMainMenu(chatID)

	case "help":
		b.sendText(chatID, `ℹ️ *Команды бота:*

/start — начать работу и пройти регистрацию
/menu — главное меню
/help — эта справка

Все разделы доступны через кнопки главного меню 👇`)

	case "stats":
		if !b.isAdmin(userID) {
			b.sendText(chatID, "⛔ Доступ запрещен")
			return
		}
		b.showBotStats(chatID)

	default:
		b.sendText(chatID, "Неизвестная команда. Используйте /help")
	}
}

// Проверка админа
func (b *BotApp) isAdmin(userID int64) bool {
	for _, id := range b.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// Сводка для администратора
func (b *BotApp) showBotStats(chatID int64) {
	users, err := b.userService.CountUsers()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении статистики: "+err.Error())
		return
	}
	entries, err := b.diaryService.CountEntriesByDate(today())
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении статистики: "+err.Error())
		return
	}

	b.sendText(chatID, fmt.Sprintf(`⚙️ *Статистика бота*

👥 Пользователей: %d
📖 Записей в дневниках сегодня: %d`, users, entries))
}

// Обычные сообщения: сначала активные диалоги, затем кнопки меню
func (b *BotApp) handleRegularMessage(update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	text := update.Message.Text

	if state, ok := b.userStates[userID]; ok {
		b.handleUserActions(chatID, userID, state, text)
		return
	}

	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при обращении к базе данных")
		return
	}
	if user == nil || !user.RegistrationComplete {
		b.startRegistration(chatID, userID)
		return
	}

	switch text {
	case "👤 Профиль":
		b.showProfile(chatID, userID)
	case "📖 Мой дневник":
		b.showDiary(chatID, userID, today())
	case "🍽 Рацион":
		b.showPlan(chatID, userID, today())
	case "💧 Трекер воды":
		b.showWaterTracker(chatID, userID)
	case "📊 Статистика":
		b.showStatistics(chatID, userID)
	case "🍳 Рецепты":
		b.showRecipesMenu(chatID)
	case "🩺 Консультация с диетологом":
		b.showConsultation(chatID)
	case "🛒 Продуктовая корзина":
		b.showCart(chatID, userID)
	case "📚 Статьи":
		b.showArticleTopics(chatID)
	case "📈 Отчет":
		b.showWeightReport(chatID, userID)
	default:
		b.sendText(chatID, "Выберите раздел в меню ниже 👇")
		b.showMainMenu(chatID)
	}
}

// Диалоги по шагам
func (b *BotApp) handleUserActions(chatID, userID int64, state *UserState, text string) {
	switch state.Action {
	case "register":
		b.handleRegistrationStep(chatID, userID, state, text)
	case "add_food":
		b.handleAddFoodStep(chatID, userID, state, text)
	case "edit_weight":
		b.handleEditWeight(chatID, userID, text)
	case "water_custom":
		b.handleWaterCustom(chatID, userID, text)
	case "water_goal":
		b.handleWaterGoalInput(chatID, userID, text)
	case "create_recipe":
		b.handleCreateRecipeStep(chatID, userID, state, text)
	case "search_recipe":
		b.handleRecipeSearch(chatID, userID, text)
	case "cart_manual":
		b.handleCartManualInput(chatID, userID, text)
	case "enter_weight":
		b.handleEnterWeight(chatID, userID, text)
	default:
		delete(b.userStates, userID)
		b.showMainMenu(chatID)
	}
}

// Callback обработка: сначала точные совпадения, затем по префиксу
func (b *BotApp) handleCallback(callback *tgbotapi.CallbackQuery) {
	data := callback.Data

	// Отвечаем на callback, чтобы убрать "часики"
	b.answerCallback(callback.ID, "")

	if handler, ok := b.callbacks[data]; ok {
		handler(callback)
		return
	}

	switch {
	case strings.HasPrefix(data, "gender:"),
		strings.HasPrefix(data, "activity:"),
		strings.HasPrefix(data, "goal:"):
		b.handleRegistrationCallback(callback)
	case strings.HasPrefix(data, "date:"):
		b.handleDiaryDateCallback(callback)
	case strings.HasPrefix(data, "clear_diary:"):
		b.handleClearDiary(callback)
	case strings.HasPrefix(data, "meal_type:"):
		b.handleMealTypeCallback(callback)
	case strings.HasPrefix(data, "recent_food:"):
		b.handleRecentFoodCallback(callback)
	case strings.HasPrefix(data, "food_pick:"):
		b.handleFoodPickCallback(callback)
	case strings.HasPrefix(data, "water_add:"):
		b.handleWaterAddCallback(callback)
	case strings.HasPrefix(data, "water_goal_set:"):
		b.handleWaterGoalSetCallback(callback)
	case strings.HasPrefix(data, "plan_date:"):
		b.handlePlanDateCallback(callback)
	case strings.HasPrefix(data, "plan:"):
		b.handlePlanCallback(callback)
	case strings.HasPrefix(data, "plan_meal:"):
		b.handlePlanMealCallback(callback)
	case strings.HasPrefix(data, "plan_recipe:"):
		b.handlePlanRecipeCallback(callback)
	case strings.HasPrefix(data, "view_recipe:"):
		b.handleViewRecipe(callback)
	case strings.HasPrefix(data, "toggle_favorite:"):
		b.handleToggleFavorite(callback)
	case strings.HasPrefix(data, "delete_recipe:"):
		b.handleDeleteRecipe(callback)
	case strings.HasPrefix(data, "recipe_to_diary:"):
		b.handleRecipeToDiary(callback)
	case strings.HasPrefix(data, "recipe_meal:"):
		b.handleRecipeMealCallback(callback)
	case strings.HasPrefix(data, "cart:"):
		b.handleCartCallback(callback)
	case strings.HasPrefix(data, "weight:"):
		b.handleWeightCallback(callback)
	case strings.HasPrefix(data, "articles:"):
		b.handleArticlesCallback(callback)
	case strings.HasPrefix(data, "consultation:"):
		b.handleConsultationCallback(callback)
	default:
		log.Printf("[callback] unknown data: %s", data)
	}
}

// Точные callback-и без параметров
func (b *BotApp) registerCallbacks() {
	b.callbacks["add_food"] = b.handleAddFoodCallback
	b.callbacks["water_custom"] = func(c *tgbotapi.CallbackQuery) {
		b.userStates[c.From.ID] = &UserState{Action: "water_custom"}
		b.sendText(c.Message.Chat.ID, "Введите количество воды в мл:")
	}
	b.callbacks["water_goal"] = func(c *tgbotapi.CallbackQuery) {
		b.showWaterGoalMenu(c.Message.Chat.ID)
	}
	b.callbacks["water_stats"] = func(c *tgbotapi.CallbackQuery) {
		b.showWaterStats(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:list"] = func(c *tgbotapi.CallbackQuery) {
		b.showRecipeList(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:favorites"] = func(c *tgbotapi.CallbackQuery) {
		b.showFavoriteRecipes(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:search"] = func(c *tgbotapi.CallbackQuery) {
		b.userStates[c.From.ID] = &UserState{Action: "search_recipe"}
		b.sendText(c.Message.Chat.ID, "🔍 Введите название рецепта:")
	}
	b.callbacks["recipe:create"] = func(c *tgbotapi.CallbackQuery) {
		b.startCreateRecipe(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:generate"] = func(c *tgbotapi.CallbackQuery) {
		b.generateRecipe(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:save"] = func(c *tgbotapi.CallbackQuery) {
		b.saveGeneratedRecipe(c.Message.Chat.ID, c.From.ID)
	}
	b.callbacks["recipe:cancel"] = func(c *tgbotapi.CallbackQuery) {
		delete(b.userStates, c.From.ID)
		b.showRecipesMenu(c.Message.Chat.ID)
	}
	b.callbacks["recipe:back"] = func(c *tgbotapi.CallbackQuery) {
		b.showRecipesMenu(c.Message.Chat.ID)
	}
	b.callbacks["profile:edit_weight"] = func(c *tgbotapi.CallbackQuery) {
		b.userStates[c.From.ID] = &UserState{Action: "edit_weight"}
		b.sendText(c.Message.Chat.ID, "⚖️ Введите новый вес в кг:")
	}
	b.callbacks["profile:edit_goal"] = func(c *tgbotapi.CallbackQuery) {
		b.showGoalSelection(c.Message.Chat.ID, c.From.ID)
	}
}

// ==================== Вспомогательные функции ====================

// Отправка сообщений
func (b *BotApp) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := b.API.Send(msg); err != nil {
		log.Printf("[sendText] ERROR: %v", err)

		// Если Markdown вызывает ошибку, пробуем отправить без него
		msg2 := tgbotapi.NewMessage(chatID, text)
		msg2.ParseMode = ""
		if _, err2 := b.API.Send(msg2); err2 != nil {
			log.Printf("[sendText] ERROR without Markdown: %v", err2)
		}
	}
}

func (b *BotApp) sendTextWithKeyboard(chatID int64, text string, rows [][]tgbotapi.InlineKeyboardButton) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	msg.ParseMode = "Markdown"

	if _, err := b.API.Send(msg); err != nil {
		log.Printf("[sendTextWithKeyboard] ERROR: %v", err)

		msg2 := tgbotapi.NewMessage(chatID, text)
		msg2.ReplyMarkup = keyboard
		msg2.ParseMode = ""
		b.API.Send(msg2)
	}
}

func (b *BotApp) editMessage(chatID int64, messageID int, text string, rows [][]tgbotapi.InlineKeyboardButton) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	editMsg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	editMsg.ParseMode = "Markdown"
	b.API.Send(editMsg)
}

func (b *BotApp) answerCallback(callbackID string, text string) {
	b.API.Request(tgbotapi.NewCallback(callbackID, text))
}

// splitMessage режет длинный текст на части не больше limit символов,
// по возможности на границе абзаца. Telegram не принимает сообщения
// длиннее 4096 символов.
func splitMessage(text string, limit int) []string {
	var parts []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, strings.TrimRight(string(runes[:cut]), "\n"))
		for cut < len(runes) && runes[cut] == '\n' {
			cut++
		}
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// Главное меню
func (b *BotApp) showMainMenu(chatID int64) {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("👤 Профиль"),
			tgbotapi.NewKeyboardButton("📖 Мой дневник"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🍽 Рацион"),
			tgbotapi.NewKeyboardButton("💧 Трекер воды"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📊 Статистика"),
			tgbotapi.NewKeyboardButton("🍳 Рецепты"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🩺 Консультация с диетологом"),
			tgbotapi.NewKeyboardButton("🛒 Продуктовая корзина"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📚 Статьи"),
			tgbotapi.NewKeyboardButton("📈 Отчет"),
		),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	msg := tgbotapi.NewMessage(chatID, "🏠 Главное меню")
	msg.ReplyMarkup = keyboard
	b.API.Send(msg)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ParseAdminIDs разбирает список идентификаторов через запятую
func ParseAdminIDs(ids string) []int64 {
	var result []int64
	if ids == "" {
		return result
	}
	for _, s := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Порядок вариантов для inline-кнопок: в callback уходит индекс,
// потому что сами названия не влезают в лимит callback data
var activityOrder = []string{
	"Сидячий образ жизни",
	"Легкая активность (1-2 тренировки в неделю)",
	"Средняя активность (3-5 тренировок)",
	"Высокая активность (6-7 тренировок)",
	"Атлет (ежедневные интенсивные тренировки)",
}

var goalOrder = []string{
	"🔻 Похудение",
	"🔺 Набор веса",
	"🔄 Поддержание текущего веса",
}

// Шаги регистрации
const (
	regStepName = iota
	regStepAge
	regStepGender
	regStepHeight
	regStepWeight
	regStepActivity
	regStepGoal
)

func (b *BotApp) startRegistration(chatID, userID int64) {
	b.userStates[userID] = &UserState{
		Action:   "register",
		Step:     regStepName,
		TempData: make(map[string]interface{}),
	}
	b.sendText(chatID, `👋 *Добро пожаловать в DietPlanner!*

Я помогу вести дневник питания, планировать рацион и следить за прогрессом.

Для начала давайте познакомимся. Как вас зовут?`)
}

// Текстовые шаги анкеты
func (b *BotApp) handleRegistrationStep(chatID, userID int64, state *UserState, text string) {
	switch state.Step {
	case regStepName:
		name := strings.TrimSpace(text)
		if name == "" || len([]rune(name)) > 50 {
			b.sendText(chatID, "⚠️ Имя должно быть не длиннее 50 символов. Попробуйте еще раз:")
			return
		}
		state.TempData["name"] = name
		state.Step = regStepAge
		b.sendText(chatID, "Сколько вам лет?")

	case regStepAge:
		age, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || age < 12 || age > 120 {
			b.sendText(chatID, "⚠️ Введите возраст от 12 до 120 лет:")
			return
		}
		state.TempData["age"] = age
		state.Step = regStepGender
		b.sendTextWithKeyboard(chatID, "Укажите пол:", [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("👨 Мужчина", "gender:Мужчина"),
				tgbotapi.NewInlineKeyboardButtonData("👩 Женщина", "gender:Женщина"),
			),
		})

	case regStepHeight:
		height, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || height < 100 || height > 250 {
			b.sendText(chatID, "⚠️ Введите рост от 100 до 250 см:")
			return
		}
		state.TempData["height"] = height
		state.Step = regStepWeight
		b.sendText(chatID, "Ваш вес (кг)?")

	case regStepWeight:
		weight, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(text), ",", ".", 1), 64)
		if err != nil || weight < 30 || weight > 300 {
			b.sendText(chatID, "⚠️ Введите вес от 30 до 300 кг:")
			return
		}
		state.TempData["weight"] = weight
		state.Step = regStepActivity
		b.sendTextWithKeyboard(chatID, "Какой у вас уровень активности?", activityKeyboard())

	default:
		// Шаги с inline-кнопками не принимают текст
		b.sendText(chatID, "Выберите вариант с помощью кнопок выше 👆")
	}
}

// Кнопочные шаги анкеты
func (b *BotApp) handleRegistrationCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	// Смена цели из профиля идет без общего состояния регистрации
	if strings.HasPrefix(data, "goal:") {
		if state, ok := b.userStates[userID]; !ok || state.Action != "register" {
			b.handleGoalChange(callback)
			return
		}
	}

	state, ok := b.userStates[userID]
	if !ok || state.Action != "register" {
		return
	}

	switch {
	case strings.HasPrefix(data, "gender:") && state.Step == regStepGender:
		state.TempData["gender"] = strings.TrimPrefix(data, "gender:")
		state.Step = regStepHeight
		b.sendText(chatID, "Ваш рост (см)?")

	case strings.HasPrefix(data, "activity:") && state.Step == regStepActivity:
		idx, err := strconv.Atoi(strings.TrimPrefix(data, "activity:"))
		if err != nil || idx < 0 || idx >= len(activityOrder) {
			return
		}
		state.TempData["activity"] = activityOrder[idx]
		state.Step = regStepGoal
		b.sendTextWithKeyboard(chatID, "Какая у вас цель?", goalKeyboard())

	case strings.HasPrefix(data, "goal:") && state.Step == regStepGoal:
		idx, err := strconv.Atoi(strings.TrimPrefix(data, "goal:"))
		if err != nil || idx < 0 || idx >= len(goalOrder) {
			return
		}
		b.finishRegistration(chatID, userID, state, goalOrder[idx])
	}
}

func (b *BotApp) finishRegistration(chatID, userID int64, state *UserState, goal string) {
	dto := service.RegisterUserDTO{
		TelegramID:    userID,
		Name:          state.TempData["name"].(string),
		Age:           state.TempData["age"].(int),
		Gender:        state.TempData["gender"].(string),
		Height:        state.TempData["height"].(float64),
		Weight:        state.TempData["weight"].(float64),
		ActivityLevel: state.TempData["activity"].(string),
		Goal:          goal,
	}

	user, err := b.userService.RegisterUser(dto)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)

	// Базовые рецепты, чтобы генератор рациона сразу работал
	if err := b.recipeService.SeedBaseRecipes(userID); err != nil {
		utils.Log.Error("не удалось добавить базовые рецепты: " + err.Error())
	}

	b.sendText(chatID, fmt.Sprintf(`✅ *Регистрация завершена!*

%s

Теперь вам доступны дневник питания, планирование рациона и все остальные разделы 👇`, profileSummary(user)))
	b.showMainMenu(chatID)
}

// ==================== Профиль ====================

func (b *BotApp) showProfile(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Изменить вес", "profile:edit_weight"),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Изменить цель", "profile:edit_goal"),
		),
	}
	b.sendTextWithKeyboard(chatID, "👤 *Ваш профиль*\n\n"+profileSummary(user), rows)
}

func profileSummary(user *models.User) string {
	bmi := utils.CalculateBMI(user.Weight, user.Height)

	return fmt.Sprintf(`Имя: %s
Возраст: %d
Пол: %s
Рост: %.0f см
Вес: %.1f кг

ИМТ: %.1f — %s

Цель: %s
Активность: %s

🎯 *Дневные цели:*
Калории: %.0f ккал
Белки: %d г | Жиры: %d г | Углеводы: %d г
Вода: %d мл`,
		user.Name, user.Age, user.Gender, user.Height, user.Weight,
		bmi, utils.GetBMICategory(bmi),
		user.Goal, user.ActivityLevel,
		user.GoalCalories, user.Protein, user.Fat, user.Carbs, user.WaterGoal)
}

func (b *BotApp) handleEditWeight(chatID, userID int64, text string) {
	weight, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(text), ",", ".", 1), 64)
	if err != nil {
		b.sendText(chatID, "⚠️ Введите вес числом, например 72.5:")
		return
	}

	user, err := b.userService.UpdateWeight(userID, weight)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)

	// Замер попадает и в историю веса
	if _, err := b.weightService.RecordWeight(userID, weight); err != nil {
		utils.Log.Error("не удалось сохранить замер веса: " + err.Error())
	}

	b.sendText(chatID, fmt.Sprintf(`✅ Вес обновлен: %.1f кг

Цели пересчитаны:
Калории: %.0f ккал
Белки: %d г | Жиры: %d г | Углеводы: %d г`,
		user.Weight, user.GoalCalories, user.Protein, user.Fat, user.Carbs))
}

func (b *BotApp) showGoalSelection(chatID, userID int64) {
	b.sendTextWithKeyboard(chatID, "🎯 Выберите новую цель:", goalKeyboard())
}

func (b *BotApp) handleGoalChange(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	idx, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "goal:"))
	if err != nil || idx < 0 || idx >= len(goalOrder) {
		return
	}

	user, err := b.userService.UpdateGoal(userID, goalOrder[idx])
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	b.sendText(chatID, fmt.Sprintf(`✅ Цель обновлена: %s

Калории: %.0f ккал
Белки: %d г | Жиры: %d г | Углеводы: %d г`,
		user.Goal, user.GoalCalories, user.Protein, user.Fat, user.Carbs))
}

func activityKeyboard() [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, name := range activityOrder {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, fmt.Sprintf("activity:%d", i)),
		))
	}
	return rows
}

func goalKeyboard() [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, name := range goalOrder {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, fmt.Sprintf("goal:%d", i)),
		))
	}
	return rows
}

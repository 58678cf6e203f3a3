package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/nutrition"
	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Дневник питания ====================

func (b *BotApp) showDiary(chatID, userID int64, date string) {
	text, rows, err := b.buildDiaryView(userID, date)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении дневника: "+err.Error())
		return
	}
	b.sendTextWithKeyboard(chatID, text, rows)
}

func (b *BotApp) buildDiaryView(userID int64, date string) (string, [][]tgbotapi.InlineKeyboardButton, error) {
	entries, err := b.diaryService.GetDailyEntries(userID, date)
	if err != nil {
		return "", nil, err
	}
	totals, err := b.diaryService.GetDailyTotals(userID, date)
	if err != nil {
		return "", nil, err
	}
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 *Дневник питания — %s*\n", utils.FormatDate(date)))

	if len(entries) == 0 {
		sb.WriteString("\nЗаписей пока нет. Добавьте первый продукт 👇\n")
	} else {
		for _, mealType := range utils.MealTypes {
			var lines []string
			for _, e := range entries {
				if e.MealType == mealType {
					line := fmt.Sprintf("• %s — %.0f ккал", e.FoodName, e.Calories)
					if e.Weight > 0 {
						line = fmt.Sprintf("• %s (%.0f г) — %.0f ккал", e.FoodName, e.Weight, e.Calories)
					}
					lines = append(lines, line)
				}
			}
			if len(lines) > 0 {
				sb.WriteString(fmt.Sprintf("\n*%s:*\n%s\n", mealType, strings.Join(lines, "\n")))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\n📊 *Итого:* %.0f ккал\nБ: %.1f г | Ж: %.1f г | У: %.1f г",
		totals.Calories, totals.Protein, totals.Fat, totals.Carbs))

	if user != nil && user.GoalCalories > 0 {
		percent := utils.GetProgressPercentage(totals.Calories, user.GoalCalories)
		sb.WriteString(fmt.Sprintf("\n\n🎯 Цель: %.0f ккал — выполнено %d%%", user.GoalCalories, percent))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️", "date:prev:"+date),
			tgbotapi.NewInlineKeyboardButtonData("📅 Сегодня", "date:today"),
			tgbotapi.NewInlineKeyboardButtonData("➡️", "date:next:"+date),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить продукт", "add_food"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить день", "clear_diary:"+date),
		),
	}

	return sb.String(), rows, nil
}

// Навигация по датам
func (b *BotApp) handleDiaryDateCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	date := today()
	switch {
	case strings.HasPrefix(data, "date:prev:"):
		date = shiftDate(strings.TrimPrefix(data, "date:prev:"), -1)
	case strings.HasPrefix(data, "date:next:"):
		date = shiftDate(strings.TrimPrefix(data, "date:next:"), 1)
	}

	text, rows, err := b.buildDiaryView(userID, date)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении дневника: "+err.Error())
		return
	}
	b.editMessage(chatID, callback.Message.MessageID, text, rows)
}

func shiftDate(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return today()
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

func (b *BotApp) handleClearDiary(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	date := strings.TrimPrefix(callback.Data, "clear_diary:")

	if err := b.diaryService.ClearDay(userID, date); err != nil {
		b.sendText(chatID, "❌ Ошибка при очистке дневника: "+err.Error())
		return
	}

	text, rows, err := b.buildDiaryView(userID, date)
	if err != nil {
		return
	}
	b.editMessage(chatID, callback.Message.MessageID, text, rows)
}

// ==================== Добавление продукта ====================

func (b *BotApp) handleAddFoodCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, mealType := range utils.MealTypes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mealType, fmt.Sprintf("meal_type:%d", i)),
		))
	}
	b.sendTextWithKeyboard(chatID, "🍽 В какой прием пищи добавить продукт?", rows)
}

func (b *BotApp) handleMealTypeCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	idx, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "meal_type:"))
	if err != nil || idx < 0 || idx >= len(utils.MealTypes) {
		return
	}

	b.userStates[userID] = &UserState{
		Action:   "add_food",
		TempData: map[string]interface{}{"meal": utils.MealTypes[idx]},
	}

	// Недавние продукты для быстрого добавления
	var rows [][]tgbotapi.InlineKeyboardButton
	if recent, err := b.diaryService.GetRecentFoods(userID, 5); err == nil {
		for _, e := range recent {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("%s — %.0f ккал", e.FoodName, e.Calories),
					fmt.Sprintf("recent_food:%d", e.ID),
				),
			))
		}
	}

	text := "Введите продукт, например: _200 г гречки_ или _яблоко и банан_"
	if len(rows) > 0 {
		text += "\n\nИли выберите из недавних 👇"
		b.sendTextWithKeyboard(chatID, text, rows)
		return
	}
	b.sendText(chatID, text)
}

func (b *BotApp) handleAddFoodStep(chatID, userID int64, state *UserState, text string) {
	meal, _ := state.TempData["meal"].(string)
	if meal == "" {
		meal = "Перекус"
	}

	switch state.Step {
	case 0:
		query := strings.TrimSpace(text)
		if query == "" {
			b.sendText(chatID, "⚠️ Введите название продукта:")
			return
		}

		// Сначала ищем варианты в Nutritionix, чтобы пользователь выбрал нужный
		foods, err := b.nutritionClient.SearchFood(query, 5)
		if err == nil && len(foods) > 0 {
			state.TempData["query"] = query
			state.TempData["foods"] = foods

			var rows [][]tgbotapi.InlineKeyboardButton
			for i, f := range foods {
				title := f.FoodName
				if f.BrandName != "" {
					title += " (" + f.BrandName + ")"
				}
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(title, fmt.Sprintf("food_pick:%d", i)),
				))
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➕ Добавить как ввели", "food_pick:text"),
			))
			b.sendTextWithKeyboard(chatID, "🔎 Вот что нашлось. Выберите вариант:", rows)
			return
		}

		// Поиск не помог — пробуем распознать весь текст целиком
		b.addFoodFromText(chatID, userID, meal, query, state)

	case 1:
		fields := strings.Fields(text)
		if len(fields) != 4 {
			b.sendText(chatID, "⚠️ Нужно 4 числа через пробел: калории белки жиры углеводы")
			return
		}

		values := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.Replace(f, ",", ".", 1), 64)
			if err != nil || v < 0 {
				b.sendText(chatID, "⚠️ Все значения должны быть неотрицательными числами")
				return
			}
			values[i] = v
		}

		name, _ := state.TempData["name"].(string)
		entry, err := b.diaryService.AddEntry(service.AddFoodEntryDTO{
			UserID:   userID,
			MealType: meal,
			FoodName: name,
			Calories: values[0],
			Protein:  values[1],
			Fat:      values[2],
			Carbs:    values[3],
		})
		if err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		delete(b.userStates, userID)
		b.sendText(chatID, fmt.Sprintf("✅ %s добавлен в %s (%.0f ккал)",
			entry.FoodName, strings.ToLower(meal), entry.Calories))
		b.showDiary(chatID, userID, today())
	}
}

// Выбор конкретного варианта из результатов поиска
func (b *BotApp) handleFoodPickCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	state, ok := b.userStates[userID]
	if !ok || state.Action != "add_food" {
		return
	}
	meal, _ := state.TempData["meal"].(string)
	if meal == "" {
		meal = "Перекус"
	}

	arg := strings.TrimPrefix(callback.Data, "food_pick:")
	if arg == "text" {
		query, _ := state.TempData["query"].(string)
		b.addFoodFromText(chatID, userID, meal, query, state)
		return
	}

	idx, err := strconv.Atoi(arg)
	foods, haveFoods := state.TempData["foods"].([]nutrition.Food)
	if err != nil || !haveFoods || idx < 0 || idx >= len(foods) {
		return
	}
	food := foods[idx]

	var nutrients *nutrition.Nutrients
	if food.FoodType == "branded" && food.NixItemID != "" {
		nutrients, err = b.nutritionClient.GetBrandedFoodInfo(food.NixItemID)
	} else {
		nutrients, err = b.nutritionClient.GetFoodNutrients(food.FoodName)
	}
	if err != nil || nutrients == nil {
		b.sendText(chatID, "❌ Не удалось получить данные о продукте, выберите другой вариант")
		return
	}

	b.saveDiaryEntry(chatID, userID, meal, nutrients)
}

// Распознавание свободного текста ("200 г гречки", "яблоко и банан") целиком
func (b *BotApp) addFoodFromText(chatID, userID int64, meal, query string, state *UserState) {
	nutrients, err := b.nutritionClient.GetNutrientsFromText(query)
	if err == nil && nutrients != nil {
		b.saveDiaryEntry(chatID, userID, meal, nutrients)
		return
	}

	// Не распознали — просим ввести КБЖУ вручную
	state.TempData["name"] = query
	state.Step = 1
	b.sendText(chatID, `Не удалось найти продукт в базе 😔

Введите КБЖУ вручную через пробел:
_калории белки жиры углеводы_
Например: `+"`250 20 10 15`")
}

func (b *BotApp) saveDiaryEntry(chatID, userID int64, meal string, nutrients *nutrition.Nutrients) {
	entry, err := b.diaryService.AddEntry(service.AddFoodEntryDTO{
		UserID:   userID,
		MealType: meal,
		FoodName: nutrients.FoodName,
		Calories: nutrients.Calories,
		Protein:  nutrients.Protein,
		Fat:      nutrients.Fat,
		Carbs:    nutrients.Carbs,
		Weight:   nutrients.ServingWeightGrams,
	})
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	delete(b.userStates, userID)
	b.sendText(chatID, fmt.Sprintf(`✅ Добавлено в %s:

🍎 %s
Калории: %.0f ккал
Б: %.1f г | Ж: %.1f г | У: %.1f г`,
		strings.ToLower(meal), entry.FoodName, entry.Calories, entry.Protein, entry.Fat, entry.Carbs))
	b.showDiary(chatID, userID, today())
}

// Быстрое добавление недавнего продукта
func (b *BotApp) handleRecentFoodCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	id, err := strconv.ParseUint(strings.TrimPrefix(callback.Data, "recent_food:"), 10, 32)
	if err != nil {
		return
	}

	source, err := b.diaryService.GetEntryByID(uint(id))
	if err != nil || source == nil {
		b.sendText(chatID, "❌ Продукт не найден")
		return
	}

	meal := source.MealType
	if state, ok := b.userStates[userID]; ok {
		if m, ok := state.TempData["meal"].(string); ok && m != "" {
			meal = m
		}
		delete(b.userStates, userID)
	}

	entry, err := b.diaryService.AddEntry(service.AddFoodEntryDTO{
		UserID:   userID,
		MealType: meal,
		FoodName: source.FoodName,
		Calories: source.Calories,
		Protein:  source.Protein,
		Fat:      source.Fat,
		Carbs:    source.Carbs,
		Weight:   source.Weight,
	})
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	b.sendText(chatID, fmt.Sprintf("✅ %s добавлен (%.0f ккал)", entry.FoodName, entry.Calories))
	b.showDiary(chatID, userID, today())
}

package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Рацион (план питания) ====================

func (b *BotApp) showPlan(chatID, userID int64, date string) {
	text, rows, err := b.buildPlanView(userID, date)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении рациона: "+err.Error())
		return
	}
	b.sendTextWithKeyboard(chatID, text, rows)
}

func (b *BotApp) buildPlanView(userID int64, date string) (string, [][]tgbotapi.InlineKeyboardButton, error) {
	plan, err := b.plannerService.GetDailyPlan(userID, date)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🍽 *Рацион на %s*\n", utils.FormatDate(date)))

	if len(plan) == 0 {
		sb.WriteString("\nПлан на этот день пуст. Сгенерируйте рацион или добавьте рецепты вручную 👇")
	} else {
		byMeal := make(map[string]string)
		for _, entry := range plan {
			byMeal[entry.MealType] = fmt.Sprintf("%s — %.0f ккал (Б: %.0f, Ж: %.0f, У: %.0f)",
				entry.Recipe.Name, entry.Recipe.Calories,
				entry.Recipe.Protein, entry.Recipe.Fat, entry.Recipe.Carbs)
		}
		for _, mealType := range utils.MealTypes {
			if line, ok := byMeal[mealType]; ok {
				sb.WriteString(fmt.Sprintf("\n*%s:*\n%s\n", mealType, line))
			}
		}

		totals := b.plannerService.PlanTotals(plan)
		sb.WriteString(fmt.Sprintf("\n📊 *Итого:* %.0f ккал\nБ: %.0f г | Ж: %.0f г | У: %.0f г",
			totals.Calories, totals.Protein, totals.Fat, totals.Carbs))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️", "plan_date:prev:"+date),
			tgbotapi.NewInlineKeyboardButtonData("📅 Сегодня", "plan_date:today"),
			tgbotapi.NewInlineKeyboardButtonData("➡️", "plan_date:next:"+date),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Сгенерировать", "plan:generate:"+date),
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить рецепт", "plan:add:"+date),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Перенести в дневник", "plan:to_diary:"+date),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить", "plan:clear:"+date),
		),
	}

	return sb.String(), rows, nil
}

func (b *BotApp) handlePlanDateCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	date := today()
	switch {
	case strings.HasPrefix(data, "plan_date:prev:"):
		date = shiftDate(strings.TrimPrefix(data, "plan_date:prev:"), -1)
	case strings.HasPrefix(data, "plan_date:next:"):
		date = shiftDate(strings.TrimPrefix(data, "plan_date:next:"), 1)
	}

	text, rows, err := b.buildPlanView(userID, date)
	if err != nil {
		return
	}
	b.editMessage(chatID, callback.Message.MessageID, text, rows)
}

func (b *BotApp) handlePlanCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "plan:generate:"):
		b.generatePlan(chatID, userID, strings.TrimPrefix(data, "plan:generate:"))
	case strings.HasPrefix(data, "plan:add:"):
		b.showPlanMealSelection(chatID, strings.TrimPrefix(data, "plan:add:"))
	case strings.HasPrefix(data, "plan:to_diary:"):
		b.planToDiary(chatID, userID, strings.TrimPrefix(data, "plan:to_diary:"))
	case strings.HasPrefix(data, "plan:clear:"):
		date := strings.TrimPrefix(data, "plan:clear:")
		if err := b.plannerService.ClearPlan(userID, date); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		b.showPlan(chatID, userID, date)
	}
}

// Генерация рациона под цели пользователя
func (b *BotApp) generatePlan(chatID, userID int64, date string) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	_, err = b.plannerService.GenerateDailyPlan(userID, date, service.NutritionTargets{
		Calories: user.GoalCalories,
		Protein:  float64(user.Protein),
		Fat:      float64(user.Fat),
		Carbs:    float64(user.Carbs),
	})
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	b.sendText(chatID, "✅ Рацион подобран под ваши цели!")
	b.showPlan(chatID, userID, date)
}

// Перенос блюд плана в дневник питания
func (b *BotApp) planToDiary(chatID, userID int64, date string) {
	plan, err := b.plannerService.GetDailyPlan(userID, date)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	if len(plan) == 0 {
		b.sendText(chatID, "План на этот день пуст")
		return
	}

	for _, entry := range plan {
		_, err := b.diaryService.AddEntry(service.AddFoodEntryDTO{
			UserID:   userID,
			Date:     date,
			MealType: entry.MealType,
			FoodName: entry.Recipe.Name,
			Calories: entry.Recipe.Calories,
			Protein:  entry.Recipe.Protein,
			Fat:      entry.Recipe.Fat,
			Carbs:    entry.Recipe.Carbs,
		})
		if err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
	}

	b.sendText(chatID, fmt.Sprintf("✅ %d блюд перенесено в дневник", len(plan)))
	b.showDiary(chatID, userID, date)
}

// Выбор приема пищи для добавления рецепта
func (b *BotApp) showPlanMealSelection(chatID int64, date string) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, mealType := range utils.MealTypes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mealType, fmt.Sprintf("plan_meal:%s:%d", date, i)),
		))
	}
	b.sendTextWithKeyboard(chatID, "🍽 В какой прием пищи добавить рецепт?", rows)
}

func (b *BotApp) handlePlanMealCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	// plan_meal:<date>:<mealIdx>
	parts := strings.Split(strings.TrimPrefix(callback.Data, "plan_meal:"), ":")
	if len(parts) != 2 {
		return
	}
	date := parts[0]
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx >= len(utils.MealTypes) {
		return
	}

	recipes, err := b.recipeService.ListRecipes(userID)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	if len(recipes) == 0 {
		b.sendText(chatID, "У вас пока нет рецептов. Создайте их в разделе 🍳 Рецепты")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range recipes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s — %.0f ккал", r.Name, r.Calories),
				fmt.Sprintf("plan_recipe:%s:%d:%d", date, idx, r.ID),
			),
		))
	}
	b.sendTextWithKeyboard(chatID, fmt.Sprintf("Выберите рецепт на %s:",
		strings.ToLower(utils.MealTypes[idx])), rows)
}

func (b *BotApp) handlePlanRecipeCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	// plan_recipe:<date>:<mealIdx>:<recipeID>
	parts := strings.Split(strings.TrimPrefix(callback.Data, "plan_recipe:"), ":")
	if len(parts) != 3 {
		return
	}
	date := parts[0]
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx >= len(utils.MealTypes) {
		return
	}
	recipeID, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return
	}

	if err := b.plannerService.AddRecipeToPlan(userID, date, utils.MealTypes[idx], uint(recipeID)); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	b.showPlan(chatID, userID, date)
}
